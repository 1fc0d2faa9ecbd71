package backoff

import (
	"strconv"
)

// ConfigError reports a simulation parameter outside its valid range. It is
// returned before any random draw is consumed.
type ConfigError struct {
	Param string
	Value int
	Min   int
}

func (e *ConfigError) Error() string {
	return "invalid " + e.Param + " " + strconv.Itoa(e.Value) + ": must be at least " + strconv.Itoa(e.Min)
}

// AtLeast returns a *ConfigError if v is below min.
func AtLeast(param string, v, min int) error {
	if v < min {
		return &ConfigError{param, v, min}
	}
	return nil
}

func validate(param string, v int) error {
	return AtLeast(param, v, 1)
}
