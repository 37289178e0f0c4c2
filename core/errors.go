package core

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable indicates the persistence backend behind the memory
// store could not be reached. It is never retried internally; callers
// apply their own backoff or serve from cache.
var ErrStoreUnavailable = errors.New("memory store unavailable")

// ErrEmbeddingUnavailable indicates the embedding backend failed. The
// orchestrator treats it as non-fatal: records are appended with a nil
// vector, degrading similarity retrieval but never scoring or difficulty.
var ErrEmbeddingUnavailable = errors.New("embedding unavailable")

// ValidationError rejects malformed input at the store boundary before
// anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
