// Package relay implements the contact-submission relay: it validates a
// form submission, sends the admin notification email, and best-effort
// sends the auto-reply receipt.
package relay

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Submission represents a contact form submission. Website is the hidden
// honeypot field; legitimate clients always submit it empty.
type Submission struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,contact_email"`
	Message     string `json:"message" validate:"required"`
	Website     string `json:"website"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
}

// ParseSubmission normalizes a request body into a Submission. The body
// may be a JSON object or a JSON string containing JSON. Malformed input
// yields an empty Submission, never an error, so a garbage body fails
// required-field validation instead of surfacing a parse error.
func ParseSubmission(data []byte) Submission {
	obj := normalizeBody(data)
	return Submission{
		Name:        stringField(obj, "name"),
		Email:       stringField(obj, "email"),
		Message:     stringField(obj, "message"),
		Website:     stringField(obj, "website"),
		ProjectType: stringField(obj, "projectType"),
		Budget:      stringField(obj, "budget"),
	}
}

func normalizeBody(data []byte) map[string]any {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	// Form-encoded clients submit the JSON payload stringified once more;
	// unwrap it before decoding.
	var wrapped string
	if err := json.Unmarshal(data, &wrapped); err == nil {
		data = []byte(wrapped)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	return obj
}

// stringField coerces a decoded JSON value to a trimmed string. Missing
// and non-scalar values become the empty string.
func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// NewCorrelationTag returns a short random token used to correlate log
// lines for one submission. It is never returned to the caller.
func NewCorrelationTag() string {
	return uuid.NewString()[:8]
}
