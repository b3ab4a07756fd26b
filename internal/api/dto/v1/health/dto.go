package health

import "github.com/alexvelboy/contact-api/internal/version"

// HealthResponse reports liveness and build info
type HealthResponse struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime"`
	Build  version.BuildInfo `json:"build"`
}
