package narvi

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "narvi")

var (
	// ErrNoAPIKeyID means requests cannot be attributed; fail before sending.
	ErrNoAPIKeyID = errors.New("narvi API key id is not configured")
	// ErrUnsupportedApplicationType rejects provisioning for application
	// types the orchestrator does not know. No remote call is made.
	ErrUnsupportedApplicationType = errors.New("unsupported application type")
)
