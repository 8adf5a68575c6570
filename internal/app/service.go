package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mico/crypto-sentiment-analysis/internal/coins"
	"github.com/mico/crypto-sentiment-analysis/internal/config"
	"github.com/mico/crypto-sentiment-analysis/internal/correlation"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	"github.com/mico/crypto-sentiment-analysis/internal/metrics"
	"github.com/mico/crypto-sentiment-analysis/internal/sentiment"
)

// defaultSubredditPause is the courtesy pause between subreddits so a cycle
// does not hammer the API (the client already honours rate-limit headers).
const defaultSubredditPause = 2 * time.Second

var listingSorts = []domain.ListingSort{domain.SortHot, domain.SortNew, domain.SortTop}

// CycleStats summarises one fetch cycle.
type CycleStats struct {
	Fetched    int // raw posts returned by the source
	Skipped    int // non-self posts dropped before annotation
	Annotated  int // unique posts annotated and offered to the store
	Stored     int // posts actually written
	Duplicates int // posts suppressed as already stored
	Errors     int // failed listing/search requests
}

// Service runs fetch cycles against the configured subreddits.
type Service struct {
	source  domain.PostSource
	posts   domain.PostRepository
	scorer  domain.SentimentScorer
	matcher *coins.Matcher
	clock   clockwork.Clock
	appCfg  *config.AppConfig
	pause   time.Duration
}

// NewService creates the application layer service. The keyword table inside
// appCfg is compiled once here and never mutated afterwards.
func NewService(source domain.PostSource, posts domain.PostRepository, scorer domain.SentimentScorer, appCfg *config.AppConfig, clock clockwork.Clock) *Service {
	return &Service{
		source:  source,
		posts:   posts,
		scorer:  scorer,
		matcher: coins.NewMatcher(appCfg.CoinKeywords),
		clock:   clock,
		appCfg:  appCfg,
		pause:   defaultSubredditPause,
	}
}

// RunCycle fetches, annotates and stores posts from every configured
// subreddit. Individual request failures are counted and logged but do not
// abort the cycle; only a storage failure does.
func (s *Service) RunCycle(ctx context.Context) (CycleStats, error) {
	ctx = correlation.WithID(ctx, correlation.NewID())
	start := s.clock.Now()

	var stats CycleStats
	seen := make(map[string]struct{})
	batch := make([]domain.Post, 0)

	for i, subreddit := range s.appCfg.Subreddits {
		if i > 0 && s.pause > 0 {
			s.clock.Sleep(s.pause)
		}
		s.collectSubreddit(ctx, subreddit, seen, &batch, &stats)
	}

	stored, err := s.posts.InsertPosts(ctx, batch)
	if err != nil {
		metrics.FetchCyclesTotal.WithLabelValues("error").Inc()
		return stats, fmt.Errorf("failed to store posts: %w", err)
	}
	stats.Stored = stored
	stats.Duplicates = stats.Annotated - stored

	metrics.PostsStoredTotal.Add(float64(stats.Stored))
	metrics.PostsDuplicateTotal.Add(float64(stats.Duplicates))
	metrics.FetchCyclesTotal.WithLabelValues("ok").Inc()
	metrics.FetchCycleDuration.Observe(s.clock.Since(start).Seconds())

	slog.InfoContext(ctx, "Fetch cycle complete",
		"fetched", stats.Fetched,
		"skipped", stats.Skipped,
		"annotated", stats.Annotated,
		"stored", stats.Stored,
		"duplicates", stats.Duplicates,
		"errors", stats.Errors,
		"duration", s.clock.Since(start).String(),
	)

	return stats, nil
}

// collectSubreddit gathers posts from one subreddit: the standard listings,
// a search per configured ticker, and a search per general term.
func (s *Service) collectSubreddit(ctx context.Context, subreddit string, seen map[string]struct{}, batch *[]domain.Post, stats *CycleStats) {
	slog.InfoContext(ctx, "Fetching subreddit", "subreddit", subreddit)

	for _, sort := range listingSorts {
		raw, err := s.source.Listing(ctx, subreddit, sort, s.appCfg.PostsLimit)
		if err != nil {
			stats.Errors++
			metrics.FetchErrorsTotal.WithLabelValues(subreddit).Inc()
			slog.WarnContext(ctx, "Listing fetch failed", "subreddit", subreddit, "sort", string(sort), "error", err)
			continue
		}
		s.absorb(raw, subreddit, seen, batch, stats)
	}

	searchTerms := append(s.matcher.Tickers(), s.appCfg.GeneralTerms...)
	for _, term := range searchTerms {
		raw, err := s.source.Search(ctx, subreddit, term, s.appCfg.PostsLimit)
		if err != nil {
			stats.Errors++
			metrics.FetchErrorsTotal.WithLabelValues(subreddit).Inc()
			slog.WarnContext(ctx, "Search failed", "subreddit", subreddit, "term", term, "error", err)
			continue
		}
		s.absorb(raw, subreddit, seen, batch, stats)
	}
}

// absorb annotates raw posts and appends them to the cycle batch, dropping
// non-self posts and IDs already collected this cycle.
func (s *Service) absorb(raw []domain.RawPost, subreddit string, seen map[string]struct{}, batch *[]domain.Post, stats *CycleStats) {
	stats.Fetched += len(raw)
	metrics.PostsFetchedTotal.WithLabelValues(subreddit).Add(float64(len(raw)))

	for _, rp := range raw {
		if !rp.IsSelf {
			stats.Skipped++
			metrics.PostsSkippedTotal.Inc()
			continue
		}

		post := s.annotate(rp)
		if _, dup := seen[post.ID]; dup {
			continue
		}
		seen[post.ID] = struct{}{}
		*batch = append(*batch, post)
		stats.Annotated++
	}
}

// annotate turns a raw submission into a stored Post: score the combined
// title and body, classify the score, and extract coin mentions.
func (s *Service) annotate(raw domain.RawPost) domain.Post {
	fullText := raw.Title + " " + raw.Body
	score := s.scorer.Score(fullText)

	return domain.Post{
		ID:          "RD_" + raw.ID,
		Domain:      domain.SourceDomain,
		Subreddit:   raw.Subreddit,
		Title:       raw.Title,
		Body:        raw.Body,
		Author:      raw.Author,
		URL:         postURL(raw.Permalink),
		PublishedAt: raw.Created,
		Score:       score,
		Sentiment:   sentiment.Classify(score),
		Coins:       s.matcher.Extract(raw.Title, raw.Body),
		FetchedAt:   s.clock.Now(),
	}
}

func postURL(permalink string) string {
	if permalink == "" {
		return ""
	}
	return "https://www.reddit.com" + permalink
}
