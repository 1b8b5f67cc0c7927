package crypto

import (
	"strings"
	"unicode"
)

const alphabetSize = 26

// Only ASCII letters take part in the ciphers; every other rune is passed
// through untouched.

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isLetter(r rune) bool {
	return isUpper(r) || isLower(r)
}

// letterIndex returns the 0-25 position of a letter regardless of case.
func letterIndex(r rune) int {
	if isUpper(r) {
		return int(r - 'A')
	}
	return int(r - 'a')
}

func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

func toUpper(r rune) rune {
	if isLower(r) {
		return r - ('a' - 'A')
	}
	return r
}

// matchCase returns r in the same case as like.
func matchCase(r, like rune) rune {
	if isUpper(like) {
		return toUpper(r)
	}
	return toLower(r)
}

// shiftLetter rotates a letter inside its own case ring. Negative shifts wrap.
func shiftLetter(r rune, shift int) rune {
	base := 'a'
	if isUpper(r) {
		base = 'A'
	}
	idx := ((int(r-base)+shift)%alphabetSize + alphabetSize) % alphabetSize
	return base + rune(idx)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}
