package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/alexvelboy/contact-api/internal/api/dto/v1/contact"
	"github.com/alexvelboy/contact-api/internal/api/validation"
	"github.com/alexvelboy/contact-api/internal/config"
	"github.com/alexvelboy/contact-api/internal/logging"
	"github.com/alexvelboy/contact-api/internal/mail"
	"github.com/alexvelboy/contact-api/internal/relay"
	"github.com/alexvelboy/contact-api/internal/version"
)

type ContactHandler struct {
	cfg      *config.Config
	relay    *relay.Service
	validate *validator.Validate
}

func NewContactHandler(cfg *config.Config, relayService *relay.Service) *ContactHandler {
	return &ContactHandler{
		cfg:      cfg,
		relay:    relayService,
		validate: validation.New(),
	}
}

// Liveness acknowledges GET requests with the build marker. No side effects.
func (h *ContactHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, contact.LivenessResponse{
		OK:     true,
		Marker: version.Version,
	})
}

// Submit handles a contact form submission
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()
	tag := relay.NewCorrelationTag()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		// An unreadable body degrades to an empty submission, same as
		// malformed JSON; required-field validation reports it below.
		body = nil
	}
	sub := relay.ParseSubmission(body)

	// Honeypot: a filled hidden field means a bot. Accept silently and
	// send nothing.
	if sub.Website != "" {
		logger.Info("[%s] honeypot tripped, discarding submission", tag)
		c.JSON(http.StatusOK, contact.Success())
		return
	}

	missing, invalidEmail := validation.CheckSubmission(h.validate, sub)
	if len(missing) > 0 {
		logger.Info("[%s] rejected submission, missing: %v", tag, missing)
		c.JSON(http.StatusBadRequest, contact.Failure(validation.RequiredFieldsMessage(missing)))
		return
	}
	if invalidEmail {
		logger.Info("[%s] rejected submission, invalid email shape", tag)
		c.JSON(http.StatusBadRequest, contact.Failure("Invalid email address."))
		return
	}

	if !h.cfg.MailConfigured() {
		logger.Error("[%s] mail configuration incomplete, cannot relay", tag)
		c.JSON(http.StatusInternalServerError, contact.Failure("Server email configuration is missing."))
		return
	}

	receiptOK, err := h.relay.Deliver(c.Request.Context(), sub, c.Request.UserAgent(), tag)
	if err != nil {
		var sendErr *mail.SendError
		if errors.As(err, &sendErr) {
			logger.Error("[%s] upstream rejected admin notification: status=%d message=%q", tag, sendErr.StatusCode, sendErr.Message)
			c.JSON(http.StatusBadGateway, contact.Failure(mail.ProviderMessage(err, "Failed to send message.")))
			return
		}

		logger.Error("[%s] admin notification failed unexpectedly: %v", tag, err)
		c.JSON(http.StatusInternalServerError, contact.Failure("Failed to send message."))
		return
	}

	c.JSON(http.StatusOK, contact.SuccessWithReceipt(receiptOK))
}

// MethodNotAllowed is the response for unsupported methods on any route
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, contact.Failure("Method not allowed."))
}
