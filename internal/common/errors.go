// Package common contains shared constants and sentinel errors used across
// cipherdir components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Key material errors. Both are fatal to the decryption subsystem:
	// without a usable private key no confidential field can be recovered.
	ErrMalformedKey = errors.New("malformed private key PEM")
	ErrKeyImport    = errors.New("key import failed")

	// Per-field errors. Scoped to a single ciphertext; they never abort
	// sibling fields or records.
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrDecryption      = errors.New("decryption failed")

	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
