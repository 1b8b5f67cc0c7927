package crypto

// parseNumericKey validates a digits-only key and reduces it into [0,25].
// The reduction runs digit by digit so long inputs never overflow.
func parseNumericKey(alg Algorithm, key string) (int, error) {
	key = stripSpace(key)
	if key == "" {
		return 0, keyError(alg, ErrInvalidKeyFormat, "key is empty")
	}

	n := 0
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, keyError(alg, ErrInvalidKeyFormat, "key must be numeric, got %q", r)
		}
		n = (n*10 + int(r-'0')) % alphabetSize
	}
	return n, nil
}

// parseAlphabetKey validates a free-length, letters-only key.
func parseAlphabetKey(alg Algorithm, key string) (string, error) {
	key = stripSpace(key)
	if key == "" {
		return "", keyError(alg, ErrInvalidKeyFormat, "key is empty")
	}
	if !isAlphabetic(key) {
		return "", keyError(alg, ErrInvalidKeyFormat, "key must contain letters only")
	}
	return key, nil
}

// parseSubstitutionKey validates a 26-letter substitution alphabet.
func parseSubstitutionKey(alg Algorithm, key string) (string, error) {
	key, err := parseAlphabetKey(alg, key)
	if err != nil {
		return "", err
	}
	if len(key) != alphabetSize {
		return "", keyError(alg, ErrInvalidKeyLength, "key must be %d letters, got %d", alphabetSize, len(key))
	}
	return key, nil
}
