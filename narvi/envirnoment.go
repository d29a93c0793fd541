package narvi

import (
	"fmt"
	"strings"
)

type Environment int

const (
	Sandbox Environment = iota
	Prod
)

// BaseURL returns the REST base for account and transaction endpoints.
func (e Environment) BaseURL() string {
	switch e {
	case Prod:
		return "https://api.narvi.com/api/rest/v1.0"
	case Sandbox:
		return "https://api.sandbox.narvi.com/api/rest/v1.0"
	}
	panic("Invalid environment")
}

// BaasURL returns the base for entity and account provisioning endpoints.
// Paths under /baas/ are resolved against this host.
func (e Environment) BaasURL() string {
	switch e {
	case Prod:
		return "https://api.narvi.com/api"
	case Sandbox:
		return "https://api.sandbox.narvi.com/api"
	}
	panic("Invalid environment")
}

func (e Environment) Name() string {
	switch e {
	case Prod:
		return "prod"
	case Sandbox:
		return "sandbox"
	}
	panic("Invalid environment")
}

func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "prod":
		*e = Prod
	case "sandbox":
		*e = Sandbox
	default:
		return fmt.Errorf("invalid NARVI_ENV: %q (allowed: prod, sandbox)", val)
	}
	return nil
}
