// Package client implements the transport layer of the cipherdir CLI.
//
// # Overview
//
// The Client interface abstracts the directory service API; HTTPClient is
// the JSON-over-HTTP implementation. Responses carry user records whose
// fields are base64 RSA-OAEP ciphertexts; nothing in this package decrypts
// them.
//
// The package also owns the local cache database bootstrap (InitDatabase),
// which persists the last fetched encrypted collection for offline listings.
package client
