package server

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mico/crypto-sentiment-analysis/internal/config"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	apperrors "github.com/mico/crypto-sentiment-analysis/internal/errors"
)

// postgresHealthChecker is a minimal interface for PostgreSQL health checks
type postgresHealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo              *echo.Echo
	config            *config.Config
	posts             domain.PostRepository
	db                postgresHealthChecker
	clock             clockwork.Clock
	dashboardTemplate *template.Template
	startTime         time.Time
}

func NewServer(cfg *config.Config, posts domain.PostRepository, db postgresHealthChecker, clock clockwork.Clock) (*Server, error) {
	// Parse templates once at startup
	dashboardTmpl, err := template.ParseFiles("web/templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:              e,
		config:            cfg,
		posts:             posts,
		db:                db,
		clock:             clock,
		dashboardTemplate: dashboardTmpl,
		startTime:         clock.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
