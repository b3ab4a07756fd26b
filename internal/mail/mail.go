// Package mail defines the outbound transactional email types and
// provides a Resend-backed implementation.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Email represents a single outbound email. It maps directly onto the
// Resend wire payload and is never persisted.
type Email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	ReplyTo string `json:"reply_to,omitempty"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// Sender is the interface the relay uses to send email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SendError is returned when the provider rejects a send. Message carries
// the provider's user-visible error text when the response body had one.
type SendError struct {
	StatusCode int
	Message    string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail send failed with status %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited reports whether err is a provider rate-limit rejection
func IsRateLimited(err error) bool {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// ProviderMessage extracts the provider's error text from err, or returns
// fallback when err carries none.
func ProviderMessage(err error, fallback string) string {
	var sendErr *SendError
	if errors.As(err, &sendErr) && sendErr.Message != "" {
		return sendErr.Message
	}
	return fallback
}
