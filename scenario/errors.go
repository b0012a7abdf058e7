package scenario

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a scenario that violates an invariant. It is
// never retried; the run has to stop before the first step.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (ce *ConfigurationError) Error() string {
	return fmt.Sprintf("scenario configuration: %s: %s", ce.Field, ce.Reason)
}

func configErrorf(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsConfigurationError reports whether err, or anything it wraps or joins,
// is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
