package crypto

import "strings"

// substitution maps plain letter i to forward[i]. inverse is only filled when
// the key is a true permutation of the alphabet.
type substitution struct {
	forward   [alphabetSize]rune
	inverse   [alphabetSize]rune
	duplicate rune
}

func newSubstitution(key string) *substitution {
	s := &substitution{}
	var seen [alphabetSize]bool
	for i, r := range key {
		s.forward[i] = toLower(r)
		idx := letterIndex(r)
		if seen[idx] {
			if s.duplicate == 0 {
				s.duplicate = toLower(r)
			}
			continue
		}
		seen[idx] = true
		s.inverse[idx] = rune('a' + i)
	}
	return s
}

func (s *substitution) apply(text string, table *[alphabetSize]rune) string {
	return strings.Map(func(r rune) rune {
		if !isLetter(r) {
			return r
		}
		return matchCase(table[letterIndex(r)], r)
	}, text)
}

// MonoalphabeticEncrypt substitutes each letter with the key letter at the
// same alphabet position, keeping the case of the input.
func MonoalphabeticEncrypt(text, key string) (string, error) {
	key, err := parseSubstitutionKey(Monoalphabetic, key)
	if err != nil {
		return "", err
	}
	s := newSubstitution(key)
	return s.apply(text, &s.forward), nil
}

// MonoalphabeticDecrypt reverses MonoalphabeticEncrypt. Keys that repeat a
// letter have no inverse and fail with ErrAmbiguousKey.
func MonoalphabeticDecrypt(text, key string) (string, error) {
	key, err := parseSubstitutionKey(Monoalphabetic, key)
	if err != nil {
		return "", err
	}
	s := newSubstitution(key)
	if s.duplicate != 0 {
		return "", keyError(Monoalphabetic, ErrAmbiguousKey, "letter %q appears more than once", s.duplicate)
	}
	return s.apply(text, &s.inverse), nil
}
