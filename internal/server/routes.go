package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Root - redirect to dashboard
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/dashboard")
	})

	// Dashboard
	s.echo.GET("/dashboard", s.handleDashboard)

	// Reporting API
	s.echo.GET("/api/posts", s.handleListPosts)
	s.echo.GET("/api/summary", s.handleSummary)
	s.echo.GET("/api/coins", s.handleCoins)
	s.echo.GET("/api/timeline", s.handleTimeline)
}
