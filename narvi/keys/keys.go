package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	"github.com/go-faster/errors"
	"github.com/youmark/pkcs8"
)

// LoadRSAPrivateKeyFromFile reads a PEM file and returns the first RSA
// private key found in it. Supported block types: RSA PRIVATE KEY (PKCS#1),
// PRIVATE KEY (PKCS#8) and ENCRYPTED PRIVATE KEY (PKCS#8, password required).
func LoadRSAPrivateKeyFromFile(path string, password []byte) (*rsa.PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read key file")
	}
	return LoadRSAPrivateKeyFromPEM(b, password)
}

// LoadRSAPrivateKeyFromPEM scans PEM blocks and returns the first RSA key.
func LoadRSAPrivateKeyFromPEM(pemBytes []byte, password []byte) (*rsa.PrivateKey, error) {
	for len(pemBytes) > 0 {
		var block *pem.Block
		block, pemBytes = pem.Decode(pemBytes)
		if block == nil {
			break
		}

		switch block.Type {
		case "RSA PRIVATE KEY":
			key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
			if err != nil {
				return nil, errors.Wrap(err, "parse PKCS#1 private key")
			}
			return key, nil

		case "PRIVATE KEY":
			keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
			if err != nil {
				return nil, errors.Wrap(err, "parse PKCS#8 private key")
			}
			if key, ok := keyAny.(*rsa.PrivateKey); ok {
				return key, nil
			}
			return nil, errors.Errorf("unsupported key type in PKCS#8: %T (expected RSA)", keyAny)

		case "ENCRYPTED PRIVATE KEY":
			if len(password) == 0 {
				return nil, errors.New("password is required for ENCRYPTED PRIVATE KEY")
			}
			keyAny, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
			if err != nil {
				return nil, errors.Wrap(err, "decrypt PKCS#8 encrypted private key")
			}
			if key, ok := keyAny.(*rsa.PrivateKey); ok {
				return key, nil
			}
			return nil, errors.Errorf("unsupported key type in encrypted PKCS#8: %T (expected RSA)", keyAny)
		}
	}

	return nil, errors.New("no private key block found in PEM")
}
