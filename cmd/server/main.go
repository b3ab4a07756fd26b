package main

import (
	"fmt"
	"os"

	"github.com/alexvelboy/contact-api/internal/api"
	"github.com/alexvelboy/contact-api/internal/config"
	"github.com/alexvelboy/contact-api/internal/logging"
	"github.com/alexvelboy/contact-api/internal/mail"
	"github.com/alexvelboy/contact-api/internal/version"
)

func main() {
	// Load configuration first; the logger location comes from it
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting contact API %s in %s mode", version.GetVersionString(), cfg.Environment)

	if !cfg.MailConfigured() {
		// Still serve; every submission will report the configuration
		// error until the secrets arrive.
		logger.Warn("Mail configuration incomplete: RESEND_API_KEY, CONTACT_TO_EMAIL and CONTACT_FROM_EMAIL must all be set")
	}

	sender := mail.NewResendClient(cfg.ResendAPIKey)
	srv := api.NewServer(cfg, sender)

	logger.Info("Listening on :%s", cfg.Port)
	if err := srv.Run(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
