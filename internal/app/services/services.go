package services

import (
	"github.com/go-playground/validator/v10"

	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
)

// newValidator builds the validator used at the façade boundary. It reads
// the same `binding` tags gin uses, so a request rejected here would also
// have been rejected at bind time.
func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// checkRequest validates a request DTO and converts the failure into the
// application validation error. Façades call this before touching the
// store; invalid input never reaches a table.
func checkRequest(v *validator.Validate, req interface{}) error {
	if err := v.Struct(req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}
