package settings

import (
	"net/mail"
	"strings"

	"github.com/lumohq/lumo-backend/internal/domain"
)

const (
	maxNameLength  = 255
	maxFieldLength = 512
)

// UpdateSettingsInput holds the partial settings update. A nil field is
// not touched; a non-nil empty string clears the stored value. Name is the
// exception: it can never be cleared, so an empty Name is dropped.
type UpdateSettingsInput struct {
	Name           *string
	Description    *string
	Website        *string
	ContactEmail   *string
	ContactPhone   *string
	Address        *string
	LogoURL        *string
	PrimaryColor   *string
	SecondaryColor *string
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && len(*i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.ContactEmail != nil && *i.ContactEmail != "" {
		if _, err := mail.ParseAddress(*i.ContactEmail); err != nil {
			errs = append(errs, domain.FieldError{Field: "contactEmail", Message: "invalid email address"})
		}
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"description", i.Description},
		{"website", i.Website},
		{"contactPhone", i.ContactPhone},
		{"address", i.Address},
		{"logoUrl", i.LogoURL},
	} {
		if f.value != nil && len(*f.value) > maxFieldLength {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "too long"})
		}
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"primaryColor", i.PrimaryColor},
		{"secondaryColor", i.SecondaryColor},
	} {
		if f.value != nil && *f.value != "" && !isHexColor(*f.value) {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be a hex color like #1a2b3c"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toPatch converts the input to the storage patch. An empty Name means
// "not provided" because the tenant record always needs a name.
func (i UpdateSettingsInput) toPatch() domain.SettingsPatch {
	patch := domain.SettingsPatch{
		Description:    i.Description,
		Website:        i.Website,
		ContactEmail:   i.ContactEmail,
		ContactPhone:   i.ContactPhone,
		Address:        i.Address,
		LogoURL:        i.LogoURL,
		PrimaryColor:   i.PrimaryColor,
		SecondaryColor: i.SecondaryColor,
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) != "" {
		trimmed := strings.TrimSpace(*i.Name)
		patch.Name = &trimmed
	}
	return patch
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
