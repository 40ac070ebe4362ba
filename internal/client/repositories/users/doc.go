// Package users provides the client-side persistence layer for the
// encrypted-record cache.
//
// The cache mirrors the last successful fetch from the directory service.
// Each refresh replaces the whole collection inside one transaction, keyed
// by position so the original element order survives a round-trip through
// the database. Records are stored in their encrypted form only; decrypted
// values are never persisted.
package users
