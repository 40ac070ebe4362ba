package cryptox

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/ddanshin/cipherdir/internal/common"
)

// DecryptField recovers the plaintext of one base64-encoded confidential
// field ciphertext.
//
// Failure modes:
//   - common.ErrInvalidEncoding: the ciphertext is not valid base64, or the
//     decrypted bytes are not valid UTF-8.
//   - common.ErrDecryption: the cryptographic operation failed (wrong key,
//     corrupted ciphertext, wrong padding).
//
// The key is read-only and safe for concurrent use.
func DecryptField(key *DecryptionKey, ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad base64 ciphertext: %v", common.ErrInvalidEncoding, err)
	}

	plaintext, err := key.decrypt(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: decrypted bytes are not valid UTF-8", common.ErrInvalidEncoding)
	}

	return string(plaintext), nil
}

func (k *DecryptionKey) decrypt(ciphertext []byte) ([]byte, error) {
	switch k.alg.Scheme {
	case RSAOAEPSHA256.Scheme:
		return rsa.DecryptOAEP(k.alg.Hash.New(), rand.Reader, k.priv, ciphertext, nil)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", k.alg.Scheme)
	}
}
