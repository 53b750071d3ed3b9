// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"
)

// WrapValidationError wraps a validation error in the given domain sentinel so
// callers can match it with errors.Is.
func WrapValidationError(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", sentinel, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
