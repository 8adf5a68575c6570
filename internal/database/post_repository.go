package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
)

const defaultListLimit = 50

// PostRepo persists annotated posts in PostgreSQL.
type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

// InsertPosts appends posts to the store. Posts whose ID is already present
// are silently suppressed; the return value is the number actually written.
func (r *PostRepo) InsertPosts(ctx context.Context, posts []domain.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, p := range posts {
		tag, err := tx.Exec(ctx, `
			INSERT INTO posts (id, domain, subreddit, title, body, author, url, published_at, score, sentiment, coins, fetched_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Domain, p.Subreddit, p.Title, p.Body, p.Author, p.URL, p.PublishedAt, p.Score, string(p.Sentiment), p.Coins, p.FetchedAt)
		if err != nil {
			return 0, fmt.Errorf("failed to insert post %s: %w", p.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return inserted, nil
}

// ListRecent returns the most recently published posts matching the filter.
func (r *PostRepo) ListRecent(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT id, domain, subreddit, title, body, author, url, published_at, score, sentiment, coins, fetched_at
		FROM posts
		WHERE ($1 = '' OR $1 = ANY(coins))
		  AND ($2 = '' OR sentiment = $2)
		ORDER BY published_at DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, filter.Coin, string(filter.Sentiment), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, limit)
	for rows.Next() {
		var p domain.Post
		var sentiment string
		if err := rows.Scan(&p.ID, &p.Domain, &p.Subreddit, &p.Title, &p.Body, &p.Author, &p.URL,
			&p.PublishedAt, &p.Score, &sentiment, &p.Coins, &p.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.Sentiment = domain.Category(sentiment)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// SentimentBreakdown counts posts per sentiment category published since the
// given time. Categories with no posts are present with a zero count.
func (r *PostRepo) SentimentBreakdown(ctx context.Context, since time.Time) (map[domain.Category]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sentiment, COUNT(*)
		FROM posts
		WHERE published_at >= $1
		GROUP BY sentiment
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiment breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := map[domain.Category]int{
		domain.Positive: 0,
		domain.Neutral:  0,
		domain.Negative: 0,
	}
	for rows.Next() {
		var sentiment string
		var count int
		if err := rows.Scan(&sentiment, &count); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		breakdown[domain.Category(sentiment)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read breakdown: %w", err)
	}

	return breakdown, nil
}

// CoinMentionCounts returns per-ticker mention counts since the given time,
// most mentioned first.
func (r *PostRepo) CoinMentionCounts(ctx context.Context, since time.Time) ([]domain.CoinCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT coin, COUNT(*)
		FROM posts, UNNEST(coins) AS coin
		WHERE published_at >= $1
		GROUP BY coin
		ORDER BY COUNT(*) DESC, coin
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query coin mentions: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.CoinCount, 0)
	for rows.Next() {
		var cc domain.CoinCount
		if err := rows.Scan(&cc.Coin, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan coin count: %w", err)
		}
		counts = append(counts, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read coin counts: %w", err)
	}

	return counts, nil
}

// DailyVolume returns per-day post counts split by sentiment category since
// the given time, oldest day first.
func (r *PostRepo) DailyVolume(ctx context.Context, since time.Time) ([]domain.DailyBucket, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DATE_TRUNC('day', published_at) AS day,
		       COUNT(*) FILTER (WHERE sentiment = 'Positive'),
		       COUNT(*) FILTER (WHERE sentiment = 'Neutral'),
		       COUNT(*) FILTER (WHERE sentiment = 'Negative')
		FROM posts
		WHERE published_at >= $1
		GROUP BY day
		ORDER BY day
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily volume: %w", err)
	}
	defer rows.Close()

	buckets := make([]domain.DailyBucket, 0)
	for rows.Next() {
		var b domain.DailyBucket
		if err := rows.Scan(&b.Day, &b.Positive, &b.Neutral, &b.Negative); err != nil {
			return nil, fmt.Errorf("failed to scan daily bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily volume: %w", err)
	}

	return buckets, nil
}
