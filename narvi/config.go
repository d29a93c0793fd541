package narvi

import (
	"fmt"
	"os"

	"github.com/alapierre/go-narvi-client/narvi/sign"
	"github.com/alapierre/go-narvi-client/narvi/util"
)

// Config is built once at process start and injected into the client. The
// signer holds the loaded private key as read-only state; construction fails
// loudly when the key cannot be read, so no unsigned request can ever go out.
type Config struct {
	Env      Environment
	APIKeyID string
	Signer   *sign.Signer
}

// ConfigFromEnv assembles a Config from NARVI_API_KEY_ID, NARVI_PRIVATE_KEY
// (path to a PEM file), optional NARVI_KEY_PASSWORD and NARVI_ENV (sandbox
// when unset).
func ConfigFromEnv() (Config, error) {

	apiKeyID, ok := os.LookupEnv("NARVI_API_KEY_ID")
	if !ok || apiKeyID == "" {
		return Config{}, ErrNoAPIKeyID
	}

	keyPath, ok := os.LookupEnv("NARVI_PRIVATE_KEY")
	if !ok || keyPath == "" {
		return Config{}, fmt.Errorf("NARVI_PRIVATE_KEY environment variable is not set")
	}

	var password []byte
	if p := util.GetEnvOrDefault("NARVI_KEY_PASSWORD", ""); p != "" {
		password = []byte(p)
	}

	signer, err := sign.NewFromFile(keyPath, password)
	if err != nil {
		return Config{}, fmt.Errorf("load private key from %s: %w", keyPath, err)
	}

	var env Environment
	if err := env.UnmarshalText([]byte(util.GetEnvOrDefault("NARVI_ENV", "sandbox"))); err != nil {
		return Config{}, err
	}

	return Config{
		Env:      env,
		APIKeyID: apiKeyID,
		Signer:   signer,
	}, nil
}

func (c Config) validate() error {
	if c.APIKeyID == "" {
		return ErrNoAPIKeyID
	}
	if c.Signer == nil {
		return sign.ErrNoPrivateKey
	}
	return nil
}
