package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	apperrors "github.com/mico/crypto-sentiment-analysis/internal/errors"
)

const dashboardRecentLimit = 25

type dashboardData struct {
	Total     int
	Positive  int
	Neutral   int
	Negative  int
	Coins     []domain.CoinCount
	Timeline  []domain.DailyBucket
	Recent    []domain.Post
	Generated string
}

func (s *Server) handleDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	since := s.clock.Now().AddDate(0, 0, -defaultWindowDays)

	breakdown, err := s.posts.SentimentBreakdown(ctx, since)
	if err != nil {
		return apperrors.InternalError("failed to load sentiment breakdown", err)
	}

	coins, err := s.posts.CoinMentionCounts(ctx, since)
	if err != nil {
		return apperrors.InternalError("failed to load coin mentions", err)
	}

	timeline, err := s.posts.DailyVolume(ctx, since)
	if err != nil {
		return apperrors.InternalError("failed to load timeline", err)
	}

	recent, err := s.posts.ListRecent(ctx, domain.PostFilter{Limit: dashboardRecentLimit})
	if err != nil {
		return apperrors.InternalError("failed to list recent posts", err)
	}

	data := dashboardData{
		Total:     breakdown[domain.Positive] + breakdown[domain.Neutral] + breakdown[domain.Negative],
		Positive:  breakdown[domain.Positive],
		Neutral:   breakdown[domain.Neutral],
		Negative:  breakdown[domain.Negative],
		Coins:     coins,
		Timeline:  timeline,
		Recent:    recent,
		Generated: s.clock.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return s.dashboardTemplate.Execute(c.Response(), data)
}
