// Package keyring holds the process-wide decryption key handle.
//
// The private key PEM comes from configuration, never changes, and is
// expensive to re-import per field decryption. Keyring imports it once on
// first use and hands out the same read-only handle to every caller.
package keyring

import (
	"sync"

	"github.com/ddanshin/cipherdir/internal/common"
	"github.com/ddanshin/cipherdir/internal/cryptox"
)

// Keyring owns one private key's PEM material and the lazily imported
// decryption handle derived from it. Safe for concurrent use.
type Keyring struct {
	pem []byte
	alg cryptox.Algorithm

	once sync.Once
	key  *cryptox.DecryptionKey
	err  error
}

// New copies pemText into a Keyring bound to the given algorithm profile.
// No parsing happens until Key is first called.
func New(pemText []byte, alg cryptox.Algorithm) *Keyring {
	buf := make([]byte, len(pemText))
	copy(buf, pemText)
	return &Keyring{pem: buf, alg: alg}
}

// Key returns the imported decryption handle, importing it on first call.
// A failed import (common.ErrMalformedKey or common.ErrKeyImport) is sticky:
// every subsequent call returns the same error.
func (r *Keyring) Key() (*cryptox.DecryptionKey, error) {
	r.once.Do(func() {
		der, err := cryptox.DecodePEMKey(r.pem)
		if err != nil {
			r.err = err
			return
		}
		r.key, r.err = cryptox.ImportDecryptionKey(der, r.alg)
		common.WipeByteArray(der)
	})
	return r.key, r.err
}

// Close wipes the stored PEM material. The already imported handle, if any,
// stays usable; Close only removes the re-importable text form from memory.
func (r *Keyring) Close() {
	common.WipeByteArray(r.pem)
	r.pem = nil
}
