package auth

import "github.com/lumohq/lumo-backend/internal/domain"

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 255 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the credential change operation.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}

	if i.NewPassword == "" {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "required"})
	} else if len(i.NewPassword) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "must be at least 8 characters"})
	} else if len(i.NewPassword) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
