package http

import (
	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/infrastructure/http/handlers"
)

// RegisterHealth mounts the liveness and readiness probes on e. They sit
// outside any versioned group and need no session.
func RegisterHealth(e *echo.Echo, checks map[string]handlers.Check) {
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(checks)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
}
