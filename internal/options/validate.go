// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"

	"github.com/erraggy/wordagg/aggerrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return fmt.Errorf("%s", noSourceMsg)
	}
	if sourceCount > 1 {
		return fmt.Errorf("%s", multiSourceMsg)
	}

	return nil
}

// ValidateNonNegative returns a ConfigError naming option when v < 0.
func ValidateNonNegative(option string, v int) error {
	if v < 0 {
		return &aggerrors.ConfigError{Option: option, Value: v, Message: "cannot be negative"}
	}
	return nil
}

// ValidateNonEmpty returns a ConfigError naming option when v is empty.
func ValidateNonEmpty(option, v string) error {
	if v == "" {
		return &aggerrors.ConfigError{Option: option, Message: "cannot be empty"}
	}
	return nil
}
