package content

import (
	"strings"

	"github.com/lumohq/lumo-backend/internal/domain"
)

const maxTitleLength = 200

// CreateModuleInput carries the fields for a new content module.
type CreateModuleInput struct {
	Title       string
	Description *string
	Tags        []string
}

// Validate checks the input fields.
func (in CreateModuleInput) Validate() error {
	var fields []domain.FieldError

	title := strings.TrimSpace(in.Title)
	if title == "" {
		fields = append(fields, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if len(title) > maxTitleLength {
		fields = append(fields, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Errors: fields}
	}
	return nil
}
