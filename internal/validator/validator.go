// Package validator wraps go-playground/validator for request structs.
package validator

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest validates a request struct against its `validate` tags
// and converts failures into a marked validation error with per-field
// details.
func ValidateRequest(req interface{}) error {
	err := instance().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ierr.WithError(err).
			WithHint("Invalid request").
			Mark(ierr.ErrValidation)
	}

	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return ierr.NewError("request validation failed").
		WithHint("One or more fields are missing or invalid").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
