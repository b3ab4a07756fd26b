package relay

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/alexvelboy/contact-api/internal/mail"
)

const siteName = "alexvelboy.com"

const notProvided = "Not provided"

// receiptText is the fixed plaintext acknowledgment sent to the submitter
const receiptText = "Thanks for reaching out — your message has been delivered successfully.\n" +
	"I’ll get back to you as soon as possible.\n" +
	"— Alex Velboy (alexvelboy.com)"

// receiptHTMLTemplate renders the HTML acknowledgment. html/template
// escapes the submitter-supplied fields, so markup in the message cannot
// inject into the rendered email.
var receiptHTMLTemplate = template.Must(template.New("receipt").Parse(
	`<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>` + "\n" +
		`<p>Thanks for reaching out — your message has been delivered successfully.<br>` +
		`I’ll get back to you as soon as possible.</p>` + "\n" +
		`<blockquote>{{.Message}}</blockquote>` + "\n" +
		`<p>— Alex Velboy (alexvelboy.com)</p>`))

// AdminEmail composes the admin notification for a submission. Every
// field value appears verbatim in the plaintext body.
func AdminEmail(from, to string, sub Submission, userAgent string, now time.Time) *mail.Email {
	identifier := sub.Name
	if identifier == "" {
		identifier = sub.Email
	}

	if userAgent == "" {
		userAgent = "unknown"
	}

	body := strings.Join([]string{
		"New inquiry from " + siteName,
		"",
		"Name: " + orNotProvided(sub.Name),
		"Email: " + sub.Email,
		"Project Type: " + orNotProvided(sub.ProjectType),
		"Budget: " + orNotProvided(sub.Budget),
		"",
		"Message:",
		sub.Message,
		"",
		"Timestamp: " + now.UTC().Format(time.RFC3339),
		"User Agent: " + userAgent,
	}, "\n")

	return &mail.Email{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New message from %s — %s", siteName, identifier),
		ReplyTo: sub.Email,
		Text:    body,
	}
}

// ReceiptEmail composes the auto-reply acknowledgment for the submitter
func ReceiptEmail(from string, sub Submission) *mail.Email {
	var html strings.Builder
	if err := receiptHTMLTemplate.Execute(&html, sub); err != nil {
		// Template data is a plain struct; execution cannot fail at
		// runtime, but a receipt without HTML is still a valid receipt.
		html.Reset()
	}

	return &mail.Email{
		From:    from,
		To:      sub.Email,
		Subject: "We received your message — Alex Velboy",
		Text:    receiptText,
		HTML:    html.String(),
	}
}

func orNotProvided(value string) string {
	if value == "" {
		return notProvided
	}
	return value
}
