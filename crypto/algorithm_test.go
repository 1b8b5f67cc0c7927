package crypto

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"caesar", Caesar},
		{"Ceaser", Caesar},
		{"1", Caesar},
		{"monoalphabetic", Monoalphabetic},
		{"2", Monoalphabetic},
		{"playfair", Playfair},
		{"3", Playfair},
		{"vigenere", Vigenere},
		{"polyalphabetic", Vigenere},
		{"4", Vigenere},
		{" rail-fence ", RailFence},
		{"5", RailFence},
		{"COLUMNAR", Columnar},
		{"6", Columnar},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if err != nil {
				t.Fatalf("ParseAlgorithm: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	for _, bad := range []string{"", "0", "7", "enigma"} {
		if _, err := ParseAlgorithm(bad); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("input %q: expected ErrUnknownAlgorithm, got %v", bad, err)
		}
	}
}

func TestAlgorithmNamesRoundTrip(t *testing.T) {
	for _, alg := range Algorithms() {
		parsed, err := ParseAlgorithm(alg.String())
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", alg.String(), err)
		}
		if parsed != alg {
			t.Errorf("expected %v, got %v", alg, parsed)
		}
		if alg.DisplayName() == "" {
			t.Errorf("%v has no display name", alg)
		}
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	var alg Algorithm
	if _, err := alg.Encrypt("text", "3"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := alg.Decrypt("text", "3"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestExampleKeysAreValid(t *testing.T) {
	for _, alg := range Algorithms() {
		if _, err := alg.Encrypt("example", alg.ExampleKey()); err != nil {
			t.Errorf("%v: example key rejected: %v", alg, err)
		}
	}
}

var roundTripTexts = []string{
	"",
	"a",
	"Hello, World!",
	"The quick brown fox jumps over the lazy dog.",
	"  leading and trailing  ",
	"MiXeD CaSe 123 with_digits & symbols?",
	"naïve café, 東京",
}

func TestRoundTrip(t *testing.T) {
	keys := map[Algorithm][]string{
		Caesar:         {"0", "3", "25", "100"},
		Monoalphabetic: {reversedAlphabet, "QWERTYUIOPASDFGHJKLZXCVBNM"},
		Vigenere:       {"LEMON", "a", "KeyWord"},
		RailFence:      {"1", "2", "3", "7", "26"},
		Columnar:       {"HACK", "AABB", "z", "zebras", "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"},
	}

	for alg, ks := range keys {
		for _, key := range ks {
			for _, text := range roundTripTexts {
				name := fmt.Sprintf("%v/%s/%q", alg, key, text)
				t.Run(name, func(t *testing.T) {
					enc, err := alg.Encrypt(text, key)
					if err != nil {
						t.Fatalf("encrypt failed: %v", err)
					}
					dec, err := alg.Decrypt(enc, key)
					if err != nil {
						t.Fatalf("decrypt failed: %v", err)
					}
					if dec != text {
						t.Errorf("expected %q, got %q", text, dec)
					}
				})
			}
		}
	}
}

func TestEmptyTextStillValidatesKey(t *testing.T) {
	for _, alg := range Algorithms() {
		out, err := alg.Encrypt("", "")
		if !errors.Is(err, ErrInvalidKeyFormat) {
			t.Errorf("%v: expected ErrInvalidKeyFormat for empty key, got %v", alg, err)
		}
		if out != "" {
			t.Errorf("%v: expected no output, got %q", alg, out)
		}

		out, err = alg.Encrypt("", alg.ExampleKey())
		if err != nil || out != "" {
			t.Errorf("%v: expected empty output without error, got %q, %v", alg, out, err)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers*len(Algorithms()))

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := fmt.Sprintf("message number %d, sent in parallel", i)
			for _, alg := range Algorithms() {
				enc, err := alg.Encrypt(text, alg.ExampleKey())
				if err != nil {
					errs <- err
					continue
				}
				again, err := alg.Encrypt(text, alg.ExampleKey())
				if err != nil {
					errs <- err
					continue
				}
				if enc != again {
					errs <- fmt.Errorf("%v: output differs between calls", alg)
				}
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
