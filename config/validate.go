// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every section against its struct tags and returns all
// violations in one ErrInvalidConfig error.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	return nil
}

// formatValidationError renders validator errors as "Section.Field: reason"
// lines joined by "; ".
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		param := e.Param()

		var msg string
		switch e.Tag() {
		case "required", "required_if", "required_unless":
			msg = "field is required"
		case "min", "gte":
			msg = "must be at least " + param
		case "max", "lte":
			msg = "must not exceed " + param
		case "oneof":
			msg = "must be one of [" + param + "]"
		default:
			msg = fmt.Sprintf("validation failed (%s)", e.Tag())
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s (got %v)", field, msg, e.Value()))
	}

	return strings.Join(msgs, "; ")
}
