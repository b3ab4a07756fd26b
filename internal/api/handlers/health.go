package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexvelboy/contact-api/internal/api/dto/v1/health"
	"github.com/alexvelboy/contact-api/internal/version"
)

type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, health.HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
		Build:  version.GetBuildInfo(),
	})
}
