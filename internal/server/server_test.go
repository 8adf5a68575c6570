package server

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mico/crypto-sentiment-analysis/internal/config"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	apperrors "github.com/mico/crypto-sentiment-analysis/internal/errors"
)

type mockPostRepo struct {
	mu sync.Mutex

	posts     []domain.Post
	breakdown map[domain.Category]int
	coins     []domain.CoinCount
	timeline  []domain.DailyBucket

	lastFilter domain.PostFilter
	lastSince  time.Time
	err        error
}

func (m *mockPostRepo) InsertPosts(_ context.Context, posts []domain.Post) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, posts...)
	return len(posts), m.err
}

func (m *mockPostRepo) ListRecent(_ context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter
	return m.posts, m.err
}

func (m *mockPostRepo) SentimentBreakdown(_ context.Context, since time.Time) (map[domain.Category]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSince = since
	return m.breakdown, m.err
}

func (m *mockPostRepo) CoinMentionCounts(_ context.Context, since time.Time) ([]domain.CoinCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSince = since
	return m.coins, m.err
}

func (m *mockPostRepo) DailyVolume(_ context.Context, since time.Time) ([]domain.DailyBucket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSince = since
	return m.timeline, m.err
}

type mockHealthChecker struct {
	pingErr error
}

func (m *mockHealthChecker) Ping(_ context.Context) error {
	return m.pingErr
}

const testDashboardTemplate = `<html>posts={{.Total}} positive={{.Positive}}</html>`

func newTestServer(t *testing.T, repo *mockPostRepo, db *mockHealthChecker) (*Server, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:              e,
		config:            &config.Config{Port: "0"},
		posts:             repo,
		db:                db,
		clock:             clock,
		dashboardTemplate: template.Must(template.New("dashboard").Parse(testDashboardTemplate)),
		startTime:         clock.Now(),
	}
	srv.registerRoutes()

	return srv, clock
}

func doRequest(srv *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleLiveness(t *testing.T) {
	srv, clock := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})
	clock.Advance(90 * time.Second)

	rec := doRequest(srv, http.MethodGet, "/health/live")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "1m30s", body["uptime"])
}

func TestHandleReadiness(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/health/ready")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database down", func(t *testing.T) {
		srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{pingErr: errors.New("connection refused")})

		rec := doRequest(srv, http.MethodGet, "/health/ready")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}

func TestHandleVersion(t *testing.T) {
	srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})

	rec := doRequest(srv, http.MethodGet, "/version")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "version")
}

func TestRootRedirectsToDashboard(t *testing.T) {
	srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})

	rec := doRequest(srv, http.MethodGet, "/")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestHandleListPosts(t *testing.T) {
	t.Run("returns posts", func(t *testing.T) {
		repo := &mockPostRepo{posts: []domain.Post{
			{ID: "RD_abc", Title: "Bitcoin rally", Sentiment: domain.Positive, Coins: []string{"BTC"}},
		}}
		srv, _ := newTestServer(t, repo, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/api/posts")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "RD_abc")
	})

	t.Run("passes filters through", func(t *testing.T) {
		repo := &mockPostRepo{}
		srv, _ := newTestServer(t, repo, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/api/posts?coin=BTC&sentiment=Negative&limit=10")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.PostFilter{Coin: "BTC", Sentiment: domain.Negative, Limit: 10}, repo.lastFilter)
	})

	t.Run("rejects unknown sentiment", func(t *testing.T) {
		srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/api/posts?sentiment=happy")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects out of range limit", func(t *testing.T) {
		srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})

		for _, limit := range []string{"0", "-5", "9999", "abc"} {
			rec := doRequest(srv, http.MethodGet, "/api/posts?limit="+limit)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
		}
	})

	t.Run("repository error maps to 500", func(t *testing.T) {
		repo := &mockPostRepo{err: errors.New("boom")}
		srv, _ := newTestServer(t, repo, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/api/posts")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandleSummary(t *testing.T) {
	t.Run("totals add up", func(t *testing.T) {
		repo := &mockPostRepo{breakdown: map[domain.Category]int{
			domain.Positive: 3,
			domain.Neutral:  2,
			domain.Negative: 1,
		}}
		srv, _ := newTestServer(t, repo, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/api/summary")

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Total    int `json:"total"`
			Positive int `json:"positive"`
			Neutral  int `json:"neutral"`
			Negative int `json:"negative"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 6, body.Total)
		assert.Equal(t, 3, body.Positive)
		assert.Equal(t, 2, body.Neutral)
		assert.Equal(t, 1, body.Negative)
	})

	t.Run("days parameter moves the window", func(t *testing.T) {
		repo := &mockPostRepo{breakdown: map[domain.Category]int{}}
		srv, clock := newTestServer(t, repo, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/api/summary?days=30")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, clock.Now().AddDate(0, 0, -30), repo.lastSince)
	})

	t.Run("rejects invalid days", func(t *testing.T) {
		srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})

		for _, days := range []string{"0", "-1", "366", "week"} {
			rec := doRequest(srv, http.MethodGet, "/api/summary?days="+days)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "days=%s", days)
		}
	})
}

func TestHandleCoins(t *testing.T) {
	repo := &mockPostRepo{coins: []domain.CoinCount{
		{Coin: "BTC", Count: 12},
		{Coin: "ETH", Count: 7},
	}}
	srv, _ := newTestServer(t, repo, &mockHealthChecker{})

	rec := doRequest(srv, http.MethodGet, "/api/coins")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"BTC"`)
	assert.Contains(t, rec.Body.String(), `"count":12`)
}

func TestHandleTimeline(t *testing.T) {
	repo := &mockPostRepo{timeline: []domain.DailyBucket{
		{Day: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Positive: 4, Neutral: 1, Negative: 2},
	}}
	srv, _ := newTestServer(t, repo, &mockHealthChecker{})

	rec := doRequest(srv, http.MethodGet, "/api/timeline")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"positive":4`)
}

func TestHandleDashboard(t *testing.T) {
	t.Run("renders template", func(t *testing.T) {
		repo := &mockPostRepo{breakdown: map[domain.Category]int{
			domain.Positive: 5,
			domain.Neutral:  1,
		}}
		srv, _ := newTestServer(t, repo, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/dashboard")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Contains(t, rec.Body.String(), "posts=6")
		assert.Contains(t, rec.Body.String(), "positive=5")
	})

	t.Run("repository error maps to 500", func(t *testing.T) {
		repo := &mockPostRepo{err: errors.New("boom")}
		srv, _ := newTestServer(t, repo, &mockHealthChecker{})

		rec := doRequest(srv, http.MethodGet, "/dashboard")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &mockPostRepo{}, &mockHealthChecker{})

	rec := doRequest(srv, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
