// Package cryptox implements the confidential-field decryption primitives:
// PEM decoding of the private key, key import bound to a fixed algorithm
// profile, and per-field ciphertext decryption.
package cryptox

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/ddanshin/cipherdir/internal/common"
)

// Algorithm identifies the asymmetric scheme and digest a decryption key is
// bound to.
type Algorithm struct {
	Scheme string
	Hash   crypto.Hash
}

// RSAOAEPSHA256 is the profile the directory service encrypts record fields
// under.
var RSAOAEPSHA256 = Algorithm{Scheme: "RSA-OAEP", Hash: crypto.SHA256}

func (a Algorithm) String() string {
	return fmt.Sprintf("%s/%s", a.Scheme, a.Hash)
}

// DecryptionKey is an imported private key usable only for decryption under
// its bound algorithm profile. The underlying key is unexported and the type
// offers no way to extract or serialize it.
type DecryptionKey struct {
	priv *rsa.PrivateKey
	alg  Algorithm
}

// Algorithm returns the profile the key is bound to.
func (k *DecryptionKey) Algorithm() Algorithm {
	return k.alg
}

// DecodePEMKey strips the PEM envelope and whitespace from a private key
// block and returns the raw DER bytes. It fails with common.ErrMalformedKey
// if the text contains no decodable PEM block or the block is empty.
func DecodePEMKey(pemText []byte) ([]byte, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", common.ErrMalformedKey)
	}
	if len(block.Bytes) == 0 {
		return nil, fmt.Errorf("%w: empty PEM payload", common.ErrMalformedKey)
	}
	return block.Bytes, nil
}

// ImportDecryptionKey parses PKCS#8 DER key material and binds it to the
// given algorithm profile. Key bytes that are not a PKCS#8 RSA private key
// fail with common.ErrKeyImport, as does an unsupported profile.
func ImportDecryptionKey(der []byte, alg Algorithm) (*DecryptionKey, error) {
	if alg.Scheme != RSAOAEPSHA256.Scheme {
		return nil, fmt.Errorf("%w: unsupported scheme %q", common.ErrKeyImport, alg.Scheme)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKeyImport, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key (%T)", common.ErrKeyImport, parsed)
	}

	return &DecryptionKey{priv: priv, alg: alg}, nil
}
