package crypto

import "strings"

// CaesarEncrypt shifts every letter forward by the numeric key.
func CaesarEncrypt(text, key string) (string, error) {
	shift, err := parseNumericKey(Caesar, key)
	if err != nil {
		return "", err
	}
	return caesarShift(text, shift), nil
}

// CaesarDecrypt shifts every letter back by the numeric key.
func CaesarDecrypt(text, key string) (string, error) {
	shift, err := parseNumericKey(Caesar, key)
	if err != nil {
		return "", err
	}
	return caesarShift(text, -shift), nil
}

func caesarShift(text string, shift int) string {
	return strings.Map(func(r rune) rune {
		if isLetter(r) {
			return shiftLetter(r, shift)
		}
		return r
	}, text)
}
