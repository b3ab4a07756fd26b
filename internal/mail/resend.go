package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendClient sends email through the Resend HTTP API
type ResendClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewResendClient creates a new Resend client
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:   apiKey,
		endpoint: resendEndpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithEndpoint overrides the API endpoint (used by tests)
func (c *ResendClient) WithEndpoint(endpoint string) *ResendClient {
	c.endpoint = endpoint
	return c
}

// resendError is the error shape Resend returns on a rejected send
type resendError struct {
	Message string `json:"message"`
}

// Send posts the email to Resend. A non-2xx response is returned as a
// *SendError carrying the status and the provider's message.
func (c *ResendClient) Send(ctx context.Context, email *Email) error {
	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the provider's message when the body has one
		var provider resendError
		_ = json.NewDecoder(resp.Body).Decode(&provider)
		return &SendError{
			StatusCode: resp.StatusCode,
			Message:    provider.Message,
		}
	}

	return nil
}
