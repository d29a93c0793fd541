package sign

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/go-faster/errors"

	"github.com/alapierre/go-narvi-client/narvi/keys"
)

// ErrNoPrivateKey signals a Signer constructed without a key. Requests must
// never go out unsigned, so this aborts the call chain instead of being
// folded into a normalized result.
var ErrNoPrivateKey = errors.New("no RSA private key configured")

// Signer produces request signatures for the Narvi protocol. The key is
// loaded once and never mutated, so a single Signer is safe for concurrent
// use.
type Signer struct {
	key *rsa.PrivateKey
}

func New(key *rsa.PrivateKey) *Signer {
	return &Signer{key: key}
}

// NewFromFile loads the private key from a PEM file. Password may be nil for
// unencrypted keys.
func NewFromFile(path string, password []byte) (*Signer, error) {
	key, err := keys.LoadRSAPrivateKeyFromFile(path, password)
	if err != nil {
		return nil, errors.Wrap(err, "load signing key")
	}
	return &Signer{key: key}, nil
}

// Sign builds the canonical request descriptor and signs it.
//
// The descriptor is url + upper-cased method + requestID + canonical query +
// canonical payload, concatenated without delimiters. The descriptor is
// SHA-256 hashed, and that digest is then fed to the RSA SHA-256 signing
// primitive, which hashes it again internally. The double hash is part of
// the wire protocol: collapsing it to a single hash makes the platform
// reject every request.
func (s *Signer) Sign(url, method, requestID string, query, payload any) (string, error) {
	if s.key == nil {
		return "", ErrNoPrivateKey
	}

	canonicalQuery, err := CanonicalJSON(query)
	if err != nil {
		return "", errors.Wrap(err, "canonicalize query params")
	}

	canonicalPayload, err := CanonicalJSON(payload)
	if err != nil {
		return "", errors.Wrap(err, "canonicalize payload")
	}

	descriptor := url + strings.ToUpper(method) + requestID + canonicalQuery + canonicalPayload

	digest := sha256.Sum256([]byte(descriptor))
	hashed := sha256.Sum256(digest[:])

	signature, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, hashed[:])
	if err != nil {
		return "", errors.Wrap(err, "rsa sign")
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}

// Public returns the public half of the signing key, for verification in
// tests and diagnostics.
func (s *Signer) Public() *rsa.PublicKey {
	if s.key == nil {
		return nil
	}
	return &s.key.PublicKey
}
