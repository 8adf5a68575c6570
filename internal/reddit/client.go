package reddit

import (
	"context"
	"fmt"

	"github.com/mico/crypto-sentiment-analysis/internal/config"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	"github.com/vartanbeno/go-reddit/v2/reddit"
)

// topTimeFilter bounds top listings and searches to recent posts.
const topTimeFilter = "week"

// Client wraps a go-reddit client for subreddit listing and search operations.
type Client struct {
	api *reddit.Client
}

// NewClient creates a Client. With full script credentials configured it
// authenticates against the OAuth API; otherwise it falls back to the
// unauthenticated read-only API, which is enough for public listings.
func NewClient(cfg *config.Config) (*Client, error) {
	var opts []reddit.Opt
	if cfg.RedditUserAgent != "" {
		opts = append(opts, reddit.WithUserAgent(cfg.RedditUserAgent))
	}

	if cfg.HasRedditCredentials() {
		api, err := reddit.NewClient(reddit.Credentials{
			ID:       cfg.RedditClientID,
			Secret:   cfg.RedditSecret,
			Username: cfg.RedditUsername,
			Password: cfg.RedditPassword,
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create reddit client: %w", err)
		}
		return &Client{api: api}, nil
	}

	api, err := reddit.NewReadonlyClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create read-only reddit client: %w", err)
	}
	return &Client{api: api}, nil
}

// Listing fetches a subreddit listing with the given sort.
func (c *Client) Listing(ctx context.Context, subreddit string, sort domain.ListingSort, limit int) ([]domain.RawPost, error) {
	var (
		posts []*reddit.Post
		err   error
	)

	switch sort {
	case domain.SortHot:
		posts, _, err = c.api.Subreddit.HotPosts(ctx, subreddit, &reddit.ListOptions{Limit: limit})
	case domain.SortNew:
		posts, _, err = c.api.Subreddit.NewPosts(ctx, subreddit, &reddit.ListOptions{Limit: limit})
	case domain.SortRising:
		posts, _, err = c.api.Subreddit.RisingPosts(ctx, subreddit, &reddit.ListOptions{Limit: limit})
	case domain.SortTop:
		posts, _, err = c.api.Subreddit.TopPosts(ctx, subreddit, &reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: limit},
			Time:        topTimeFilter,
		})
	default:
		return nil, fmt.Errorf("unknown listing sort %q", sort)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s posts from r/%s: %w", sort, subreddit, err)
	}

	return mapPosts(posts), nil
}

// Search fetches posts matching a search term within a subreddit.
func (c *Client) Search(ctx context.Context, subreddit, query string, limit int) ([]domain.RawPost, error) {
	posts, _, err := c.api.Subreddit.SearchPosts(ctx, query, subreddit, &reddit.ListPostSearchOptions{
		ListPostOptions: reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: limit},
			Time:        topTimeFilter,
		},
		Sort: "relevance",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %q in r/%s: %w", query, subreddit, err)
	}

	return mapPosts(posts), nil
}

func mapPosts(posts []*reddit.Post) []domain.RawPost {
	raw := make([]domain.RawPost, 0, len(posts))
	for _, p := range posts {
		raw = append(raw, toRawPost(p))
	}
	return raw
}

func toRawPost(p *reddit.Post) domain.RawPost {
	raw := domain.RawPost{
		ID:        p.ID,
		Subreddit: p.SubredditName,
		Title:     p.Title,
		Body:      p.Body,
		Author:    p.Author,
		Permalink: p.Permalink,
		IsSelf:    p.IsSelfPost,
	}
	if p.Created != nil {
		raw.Created = p.Created.Time.UTC()
	}
	return raw
}
