// Package crypto implements the classical substitution and transposition
// ciphers: Caesar, monoalphabetic, Vigenère, Playfair, rail fence and columnar.
package crypto

import "strings"

// VigenereEncrypt shifts each letter by the matching key letter. The key
// position only advances on letters, so punctuation and spaces never consume
// key material.
func VigenereEncrypt(text, key string) (string, error) {
	key, err := parseAlphabetKey(Vigenere, key)
	if err != nil {
		return "", err
	}
	return vigenereShift(text, key, 1), nil
}

func VigenereDecrypt(text, key string) (string, error) {
	key, err := parseAlphabetKey(Vigenere, key)
	if err != nil {
		return "", err
	}
	return vigenereShift(text, key, -1), nil
}

func vigenereShift(text, key string, direction int) string {
	shifts := make([]int, len(key))
	for i, r := range key {
		shifts[i] = letterIndex(r)
	}

	var b strings.Builder
	b.Grow(len(text))
	keyIndex := 0
	for _, r := range text {
		if !isLetter(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(shiftLetter(r, direction*shifts[keyIndex]))
		keyIndex = (keyIndex + 1) % len(shifts)
	}
	return b.String()
}
