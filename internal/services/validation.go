package services

import (
	"errors"
	"fmt"

	"warmleggs/internal/models"

	"github.com/go-playground/validator/v10"
)

// asValidationError converts validator output into a models.ValidationError
// carrying every violated field, so callers see the full list of problems
// in one response instead of one at a time.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = fmt.Sprintf("failed on the '%s' tag", e.Tag())
	}
	return &models.ValidationError{Fields: fields}
}
