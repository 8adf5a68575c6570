package domain

import (
	"context"
	"time"
)

// SourceDomain identifies where a post came from. Reddit is the only source today,
// but the column exists so other feeds can share the table.
const SourceDomain = "reddit.com"

// Category is the discretized form of a sentiment score.
type Category string

const (
	Positive Category = "Positive"
	Neutral  Category = "Neutral"
	Negative Category = "Negative"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	return c == Positive || c == Neutral || c == Negative
}

// Post is a fetched submission annotated with sentiment and coin mentions.
// Immutable once built; the store deduplicates by ID, so re-fetching the same
// post is a no-op.
type Post struct {
	ID          string    `db:"id" json:"id"`
	Domain      string    `db:"domain" json:"domain"`
	Subreddit   string    `db:"subreddit" json:"subreddit"`
	Title       string    `db:"title" json:"title"`
	Body        string    `db:"body" json:"body"`
	Author      string    `db:"author" json:"author"`
	URL         string    `db:"url" json:"url"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	Score       float64   `db:"score" json:"score"`
	Sentiment   Category  `db:"sentiment" json:"sentiment"`
	Coins       []string  `db:"coins" json:"coins"`
	FetchedAt   time.Time `db:"fetched_at" json:"fetched_at"`
}

// RawPost is a submission as returned by the source, before annotation.
type RawPost struct {
	ID        string
	Subreddit string
	Title     string
	Body      string
	Author    string
	Permalink string
	Created   time.Time
	IsSelf    bool
}

// CoinCount is a per-ticker mention count for reporting.
type CoinCount struct {
	Coin  string `json:"coin"`
	Count int    `json:"count"`
}

// DailyBucket is a per-day sentiment volume row for the dashboard timeline.
type DailyBucket struct {
	Day      time.Time `json:"day"`
	Positive int       `json:"positive"`
	Neutral  int       `json:"neutral"`
	Negative int       `json:"negative"`
}

// PostFilter narrows ListRecent results. Zero values mean "no filter".
type PostFilter struct {
	Coin      string
	Sentiment Category
	Limit     int
}

// --- Interfaces ---

// PostRepository abstracts post persistence. InsertPosts suppresses posts whose
// ID is already stored and returns the number actually written.
type PostRepository interface {
	InsertPosts(ctx context.Context, posts []Post) (int, error)
	ListRecent(ctx context.Context, filter PostFilter) ([]Post, error)
	SentimentBreakdown(ctx context.Context, since time.Time) (map[Category]int, error)
	CoinMentionCounts(ctx context.Context, since time.Time) ([]CoinCount, error)
	DailyVolume(ctx context.Context, since time.Time) ([]DailyBucket, error)
}

// ListingSort selects which subreddit listing to fetch.
type ListingSort string

const (
	SortHot    ListingSort = "hot"
	SortNew    ListingSort = "new"
	SortTop    ListingSort = "top"
	SortRising ListingSort = "rising"
)

// PostSource fetches raw submissions from a subreddit.
type PostSource interface {
	Listing(ctx context.Context, subreddit string, sort ListingSort, limit int) ([]RawPost, error)
	Search(ctx context.Context, subreddit, query string, limit int) ([]RawPost, error)
}

// SentimentScorer produces a compound polarity score in [-1, 1] for a text.
// The score is consumed by sentiment.Classify; any lexicon engine can back it.
type SentimentScorer interface {
	Score(text string) float64
}
