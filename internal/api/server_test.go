package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexvelboy/contact-api/internal/config"
	"github.com/alexvelboy/contact-api/internal/logging"
	"github.com/alexvelboy/contact-api/internal/mail"
)

// Mock Sender
type mockSender struct {
	sendFunc func(call int, email *mail.Email) error
	sent     []*mail.Email
}

func (m *mockSender) Send(ctx context.Context, email *mail.Email) error {
	m.sent = append(m.sent, email)
	if m.sendFunc != nil {
		return m.sendFunc(len(m.sent), email)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:           "test",
		Port:                  "8080",
		ResendAPIKey:          "re_test_key",
		ContactTo:             "inbox@alexvelboy.com",
		ContactFrom:           "hello@alexvelboy.com",
		RateRPS:               1000,
		RateBurst:             1000,
		ReceiptPreSendDelayMS: 0,
		ReceiptRetryDelayMS:   0,
	}
}

func newTestServer(t *testing.T, cfg *config.Config, sender mail.Sender) *Server {
	t.Helper()
	require.NoError(t, logging.InitLogger(&logging.Config{
		File:       filepath.Join(t.TempDir(), "test.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}))
	return NewServer(cfg, sender)
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "TestAgent/1.0")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const validBody = `{"name":"Jo","email":"jo@x.com","message":"Hi","website":"","projectType":"","budget":""}`

func TestContactLiveness(t *testing.T) {
	srv := newTestServer(t, testConfig(), &mockSender{})

	w := doRequest(srv, http.MethodGet, "/api/contact", "")
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, "dev", out["marker"])
}

func TestContactMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, testConfig(), &mockSender{})

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		w := doRequest(srv, method, "/api/contact", validBody)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "Method not allowed.", decode(t, w)["error"], method)
	}
}

func TestContactHoneypot(t *testing.T) {
	sender := &mockSender{}
	srv := newTestServer(t, testConfig(), sender)

	w := doRequest(srv, http.MethodPost, "/api/contact",
		`{"name":"Bot","email":"bot@spam.com","message":"Buy now","website":"http://spam.com"}`)

	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, true, out["ok"])
	assert.NotContains(t, out, "receiptOk")
	assert.Empty(t, sender.sent, "honeypot must issue zero outbound calls")
}

func TestContactMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"empty object", `{}`, "Name, email and message are required."},
		{"only name", `{"name":"Jo"}`, "Email and message are required."},
		{"missing message", `{"name":"Jo","email":"jo@x.com"}`, "Message is required."},
		{"malformed json", `{"name":"Jo",`, "Name, email and message are required."},
		{"whitespace only fields", `{"name":" ","email":"  ","message":"\t"}`, "Name, email and message are required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockSender{}
			srv := newTestServer(t, testConfig(), sender)

			w := doRequest(srv, http.MethodPost, "/api/contact", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			out := decode(t, w)
			assert.Equal(t, false, out["ok"])
			assert.Equal(t, tt.wantError, out["error"])
			assert.Empty(t, sender.sent)
		})
	}
}

func TestContactInvalidEmail(t *testing.T) {
	sender := &mockSender{}
	srv := newTestServer(t, testConfig(), sender)

	for _, email := range []string{"jo", "jo@x", "jo x@y.com", "jo@x com"} {
		body, _ := json.Marshal(map[string]string{"name": "Jo", "email": email, "message": "Hi"})
		w := doRequest(srv, http.MethodPost, "/api/contact", string(body))
		require.Equal(t, http.StatusBadRequest, w.Code, email)
		assert.Equal(t, "Invalid email address.", decode(t, w)["error"], email)
	}
	assert.Empty(t, sender.sent)
}

func TestContactMissingMailConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ResendAPIKey = ""
	sender := &mockSender{}
	srv := newTestServer(t, cfg, sender)

	w := doRequest(srv, http.MethodPost, "/api/contact", validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	out := decode(t, w)
	assert.Equal(t, false, out["ok"])
	assert.Equal(t, "Server email configuration is missing.", out["error"])
	assert.Empty(t, sender.sent)
}

func TestContactSubmitSuccess(t *testing.T) {
	sender := &mockSender{}
	srv := newTestServer(t, testConfig(), sender)

	w := doRequest(srv, http.MethodPost, "/api/contact", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, true, out["receiptOk"])

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "inbox@alexvelboy.com", sender.sent[0].To, "admin email must go first")
	assert.Equal(t, "jo@x.com", sender.sent[1].To)
	assert.Contains(t, sender.sent[0].Text, "User Agent: TestAgent/1.0")
}

func TestContactAdminSendFails(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(call int, email *mail.Email) error {
			return &mail.SendError{StatusCode: http.StatusInternalServerError, Message: "domain is not verified"}
		},
	}
	srv := newTestServer(t, testConfig(), sender)

	w := doRequest(srv, http.MethodPost, "/api/contact", validBody)
	require.Equal(t, http.StatusBadGateway, w.Code)

	out := decode(t, w)
	assert.Equal(t, false, out["ok"])
	assert.Equal(t, "domain is not verified", out["error"])
	assert.Len(t, sender.sent, 1, "receipt must not be attempted after an admin failure")
}

func TestContactAdminSendUnexpectedError(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(call int, email *mail.Email) error {
			return errors.New("connection refused")
		},
	}
	srv := newTestServer(t, testConfig(), sender)

	w := doRequest(srv, http.MethodPost, "/api/contact", validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send message.", decode(t, w)["error"])
}

func TestContactReceiptFailureStillSucceeds(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(call int, email *mail.Email) error {
			if call >= 2 {
				return &mail.SendError{StatusCode: http.StatusTooManyRequests}
			}
			return nil
		},
	}
	srv := newTestServer(t, testConfig(), sender)

	w := doRequest(srv, http.MethodPost, "/api/contact", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, false, out["receiptOk"])
	assert.Len(t, sender.sent, 3, "exactly one retry after a rate limit")
}

func TestContactRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateRPS = 1
	cfg.RateBurst = 1
	srv := newTestServer(t, cfg, &mockSender{})

	honeypot := `{"website":"spam"}`
	first := doRequest(srv, http.MethodPost, "/api/contact", honeypot)
	require.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Limit"))

	second := doRequest(srv, http.MethodPost, "/api/contact", honeypot)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestChat(t *testing.T) {
	srv := newTestServer(t, testConfig(), &mockSender{})

	w := doRequest(srv, http.MethodPost, "/api/chat", `{"message":"what is your price?","lang":"en"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["reply"], "$300")

	w = doRequest(srv, http.MethodPost, "/api/chat", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig(), &mockSender{})

	w := doRequest(srv, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	assert.Equal(t, "ok", out["status"])
	assert.NotEmpty(t, out["build"])
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, testConfig(), &mockSender{})

	w := doRequest(srv, http.MethodGet, "/api/contact", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
