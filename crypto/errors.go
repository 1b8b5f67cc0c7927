package crypto

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKeyFormat = errors.New("invalid key format")
	ErrInvalidKeyLength = errors.New("invalid key length")
	ErrAmbiguousKey     = errors.New("ambiguous key")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// KeyError reports a key rejected by an algorithm before any text was touched.
type KeyError struct {
	Algorithm Algorithm
	Reason    string
	Err       error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Algorithm, e.Err, e.Reason)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

func keyError(alg Algorithm, err error, format string, args ...any) error {
	return &KeyError{
		Algorithm: alg,
		Reason:    fmt.Sprintf(format, args...),
		Err:       err,
	}
}
