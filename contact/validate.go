package contact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/take-two/storefront/models"
)

// FieldError reports which contact field failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var (
	validate = validator.New()
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateMessage checks that all three fields are present and that the
// email is a plausible local@domain address. No external call happens until
// this passes.
func ValidateMessage(msg models.ContactMessage) error {
	if err := validate.Struct(msg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := strings.ToLower(errs[0].Field())
			return &FieldError{Field: field, Reason: "is required"}
		}
		return &FieldError{Field: "message", Reason: "is required"}
	}
	if !emailRe.MatchString(msg.Email) {
		return &FieldError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}
