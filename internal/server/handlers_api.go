package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	apperrors "github.com/mico/crypto-sentiment-analysis/internal/errors"
)

const (
	defaultWindowDays = 7
	maxWindowDays     = 365
	maxPostsLimit     = 500
)

// parseDays reads the ?days= query parameter, defaulting to a week.
func (s *Server) parseDays(c echo.Context) (time.Time, error) {
	days := defaultWindowDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxWindowDays {
			return time.Time{}, apperrors.ValidationError(
				fmt.Sprintf("days must be an integer between 1 and %d", maxWindowDays)).
				WithField("days", raw)
		}
		days = parsed
	}
	return s.clock.Now().AddDate(0, 0, -days), nil
}

func (s *Server) handleListPosts(c echo.Context) error {
	filter := domain.PostFilter{
		Coin: c.QueryParam("coin"),
	}

	if raw := c.QueryParam("sentiment"); raw != "" {
		category := domain.Category(raw)
		if !category.Valid() {
			return apperrors.ValidationError("sentiment must be Positive, Neutral or Negative").
				WithField("sentiment", raw)
		}
		filter.Sentiment = category
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPostsLimit {
			return apperrors.ValidationError(
				fmt.Sprintf("limit must be an integer between 1 and %d", maxPostsLimit)).
				WithField("limit", raw)
		}
		filter.Limit = limit
	}

	posts, err := s.posts.ListRecent(c.Request().Context(), filter)
	if err != nil {
		return apperrors.InternalError("failed to list posts", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"posts": posts})
}

func (s *Server) handleSummary(c echo.Context) error {
	since, err := s.parseDays(c)
	if err != nil {
		return err
	}

	breakdown, err := s.posts.SentimentBreakdown(c.Request().Context(), since)
	if err != nil {
		return apperrors.InternalError("failed to load sentiment breakdown", err)
	}

	total := 0
	for _, count := range breakdown {
		total += count
	}

	return c.JSON(http.StatusOK, map[string]any{
		"since":    since,
		"total":    total,
		"positive": breakdown[domain.Positive],
		"neutral":  breakdown[domain.Neutral],
		"negative": breakdown[domain.Negative],
	})
}

func (s *Server) handleCoins(c echo.Context) error {
	since, err := s.parseDays(c)
	if err != nil {
		return err
	}

	counts, err := s.posts.CoinMentionCounts(c.Request().Context(), since)
	if err != nil {
		return apperrors.InternalError("failed to load coin mentions", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"since": since, "coins": counts})
}

func (s *Server) handleTimeline(c echo.Context) error {
	since, err := s.parseDays(c)
	if err != nil {
		return err
	}

	buckets, err := s.posts.DailyVolume(c.Request().Context(), since)
	if err != nil {
		return apperrors.InternalError("failed to load timeline", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"since": since, "days": buckets})
}
