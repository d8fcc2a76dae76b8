package sideswipe

import (
	"errors"
	"fmt"
)

// ErrActivationInFlight indicates an action button ignored an activation
// because its previous handler has not settled yet. This is normal flow
// control under rapid repeated taps, not a failure.
var ErrActivationInFlight = errors.New("action activation already in flight")

// ConfigurationError represents a caller error in a row or action
// configuration: a custom descriptor missing required attributes, a missing
// handler, or an unbuildable row. These are surfaced at construction time
// rather than papered over with fallback visuals.
type ConfigurationError struct {
	Op  string // Operation that rejected the configuration (e.g. "validate", "new_row")
	Err error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sideswipe: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sideswipe: %s", e.Op)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}
