package api

import (
	"github.com/gin-gonic/gin"

	"github.com/alexvelboy/contact-api/internal/api/handlers"
	"github.com/alexvelboy/contact-api/internal/api/middleware"
	"github.com/alexvelboy/contact-api/internal/config"
	"github.com/alexvelboy/contact-api/internal/logging"
	"github.com/alexvelboy/contact-api/internal/mail"
	"github.com/alexvelboy/contact-api/internal/relay"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

func NewServer(cfg *config.Config, sender mail.Sender) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins, cfg.Environment))

	// The published form client expects 405 for unsupported methods
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)

	server := &Server{
		router: router,
		cfg:    cfg,
	}
	server.initializeRoutes(sender)

	return server
}

func (s *Server) initializeRoutes(sender mail.Sender) {
	policy := relay.ReceiptPolicy{
		PreSendDelay: s.cfg.ReceiptPreSendDelay(),
		RetryDelay:   s.cfg.ReceiptRetryDelay(),
		RetryStatus:  relay.DefaultReceiptPolicy().RetryStatus,
	}
	relayService := relay.NewService(sender, s.cfg.ContactFrom, s.cfg.ContactTo, policy, logging.GetLogger())

	contactHandler := handlers.NewContactHandler(s.cfg, relayService)
	chatHandler := handlers.NewChatHandler()
	healthHandler := handlers.NewHealthHandler()

	api := s.router.Group("/api")
	{
		api.GET("/health", healthHandler.Check)
		api.GET("/contact", contactHandler.Liveness)
		api.POST("/contact",
			middleware.RateLimit(middleware.RateLimitConfig{RPS: s.cfg.RateRPS, Burst: s.cfg.RateBurst}),
			contactHandler.Submit)
		api.POST("/chat", chatHandler.Respond)
	}
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run() error {
	return s.router.Run(":" + s.cfg.Port)
}
