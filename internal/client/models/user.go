// Package models defines the user record types exchanged with the directory
// service and their decrypted counterparts.
package models

import "fmt"

// Confidential field names. The schema is fixed and known in advance; every
// record carries exactly these four fields.
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldRole  = "role"
)

// ConfidentialFields lists the schema in display order.
var ConfidentialFields = []string{FieldID, FieldName, FieldEmail, FieldRole}

// EncryptedUser is one record as returned by the directory service: every
// field is a base64-encoded RSA-OAEP ciphertext. Immutable once received.
type EncryptedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PlaintextUser is the decrypted form of one EncryptedUser. It lives for a
// single display refresh and is never persisted.
type PlaintextUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// FieldError records the failure of a single field decryption. Index is the
// record's position in the fetched collection, so the consumer can tell
// which rows of the rendered table are incomplete.
type FieldError struct {
	Index int
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("record %d, field %q: %v", e.Index, e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}
