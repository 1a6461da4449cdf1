package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports a missing credential. It is returned before
// any request is sent.
type ConfigurationError struct {
	Service string
}

func (e *ConfigurationError) Error() string {
	return e.Service + " API key not configured"
}

// TransportError reports a failed exchange with a remote service. StatusCode
// is zero when no response was received.
type TransportError struct {
	Service string

	StatusCode int
	Message    string

	Err error
}

func (e *TransportError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Service)
	sb.WriteString(" API error")

	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": %d", e.StatusCode)
	}

	message := e.Message

	if message == "" && e.Err != nil {
		message = e.Err.Error()
	}

	if message != "" {
		if e.StatusCode != 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(": ")
		}

		sb.WriteString(message)
	}

	return sb.String()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}
