package crypto

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported ciphers. The numeric values
// match the selector ids used by the web front end.
type Algorithm int

const (
	Caesar Algorithm = iota + 1
	Monoalphabetic
	Playfair
	Vigenere
	RailFence
	Columnar
)

// KeyKind describes what shape of key an algorithm expects.
type KeyKind string

const (
	KeyNumeric      KeyKind = "numeric"
	KeySubstitution KeyKind = "substitution"
	KeyAlphabetic   KeyKind = "alphabetic"
)

// Algorithms lists every supported cipher in selector order.
func Algorithms() []Algorithm {
	return []Algorithm{Caesar, Monoalphabetic, Playfair, Vigenere, RailFence, Columnar}
}

// ParseAlgorithm accepts a canonical name, a common alias or a selector id.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "caesar", "ceaser", "1":
		return Caesar, nil
	case "monoalphabetic", "substitution", "2":
		return Monoalphabetic, nil
	case "playfair", "3":
		return Playfair, nil
	case "vigenere", "vigenère", "polyalphabetic", "4":
		return Vigenere, nil
	case "railfence", "rail_fence", "rail-fence", "rail fence", "5":
		return RailFence, nil
	case "columnar", "6":
		return Columnar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) String() string {
	switch a {
	case Caesar:
		return "caesar"
	case Monoalphabetic:
		return "monoalphabetic"
	case Playfair:
		return "playfair"
	case Vigenere:
		return "vigenere"
	case RailFence:
		return "railfence"
	case Columnar:
		return "columnar"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) DisplayName() string {
	switch a {
	case Caesar:
		return "Caesar"
	case Monoalphabetic:
		return "Monoalphabetic"
	case Playfair:
		return "Playfair"
	case Vigenere:
		return "Polyalphabetic (Vigenère)"
	case RailFence:
		return "Rail Fence"
	case Columnar:
		return "Columnar"
	}
	return a.String()
}

func (a Algorithm) KeyKind() KeyKind {
	switch a {
	case Caesar, RailFence:
		return KeyNumeric
	case Monoalphabetic:
		return KeySubstitution
	}
	return KeyAlphabetic
}

// ExampleKey is a valid sample key, suitable as an input placeholder.
func (a Algorithm) ExampleKey() string {
	switch a {
	case Caesar, RailFence:
		return "3"
	case Monoalphabetic:
		return "zyxwvutsrqponmlkjihgfedcba"
	case Columnar:
		return "HACK"
	case Vigenere, Playfair:
		return "MONARCHY"
	}
	return ""
}

func (a Algorithm) Encrypt(text, key string) (string, error) {
	switch a {
	case Caesar:
		return CaesarEncrypt(text, key)
	case Monoalphabetic:
		return MonoalphabeticEncrypt(text, key)
	case Playfair:
		return PlayfairEncrypt(text, key)
	case Vigenere:
		return VigenereEncrypt(text, key)
	case RailFence:
		return RailFenceEncrypt(text, key)
	case Columnar:
		return ColumnarEncrypt(text, key)
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
}

func (a Algorithm) Decrypt(text, key string) (string, error) {
	switch a {
	case Caesar:
		return CaesarDecrypt(text, key)
	case Monoalphabetic:
		return MonoalphabeticDecrypt(text, key)
	case Playfair:
		return PlayfairDecrypt(text, key)
	case Vigenere:
		return VigenereDecrypt(text, key)
	case RailFence:
		return RailFenceDecrypt(text, key)
	case Columnar:
		return ColumnarDecrypt(text, key)
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
}
