package service

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/docvault/docvault-ui/internal/errors"
)

// fileNumberPattern matches the characters the backend accepts in file numbers.
var fileNumberPattern = regexp.MustCompile(`^[A-Za-z0-9\-_+]+$`)

// newValidator builds the shared struct validator with the custom file_number tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("file_number", func(fl validator.FieldLevel) bool {
		return fileNumberPattern.MatchString(fl.Field().String())
	})
	return v
}

// validationError converts a validator error into the application error taxonomy,
// keeping the first offending field for form feedback.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.ValidationField(fe.Field(), validationMessage(fe))
	}
	return apperrors.Validation("invalid input")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "file_number":
		return "may only contain letters, digits, '-', '_' and '+'"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "oneof":
		return "has an unsupported value"
	default:
		return "is invalid"
	}
}
