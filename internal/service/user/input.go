package user

import (
	"net/mail"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Email    string
	FullName string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil || len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.FullName == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	} else if len(i.FullName) > 200 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
