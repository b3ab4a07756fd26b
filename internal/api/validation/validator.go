package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexvelboy/contact-api/internal/relay"
)

// emailRegex is deliberately permissive: a non-whitespace local part, an
// @, and a domain containing a dot. Stricter checks reject real addresses
// more often than they stop abuse.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// New returns a validator with the custom contact rules registered
func New() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("contact_email", validateContactEmail)
	return v
}

// validateContactEmail checks the relay's email shape
func validateContactEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail reports whether the address matches the relay's email shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// CheckSubmission validates a submission. It returns the required fields
// that are missing, in declaration order, and whether a present email has
// an invalid shape.
func CheckSubmission(v *validator.Validate, sub relay.Submission) (missing []string, invalidEmail bool) {
	err := v.Struct(sub)
	if err == nil {
		return nil, false
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// A non-validation error can only mean the Submission type and
		// its tags disagree; treat everything as missing.
		return []string{"name", "email", "message"}, false
	}

	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			missing = append(missing, strings.ToLower(e.Field()))
		case "contact_email":
			invalidEmail = true
		}
	}
	return missing, invalidEmail
}

// RequiredFieldsMessage builds the client-facing message enumerating the
// missing required fields, e.g. "Email and message are required."
func RequiredFieldsMessage(missing []string) string {
	if len(missing) == 0 {
		return ""
	}

	verb := "is"
	if len(missing) > 1 {
		verb = "are"
	}

	var list string
	switch len(missing) {
	case 1:
		list = missing[0]
	case 2:
		list = missing[0] + " and " + missing[1]
	default:
		list = strings.Join(missing[:len(missing)-1], ", ") + " and " + missing[len(missing)-1]
	}

	return strings.ToUpper(list[:1]) + list[1:] + " " + verb + " required."
}
