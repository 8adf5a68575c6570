package reddit

import (
	"context"
	"testing"
	"time"

	"github.com/mico/crypto-sentiment-analysis/internal/config"
	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vartanbeno/go-reddit/v2/reddit"
)

func TestToRawPost(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &reddit.Post{
		ID:            "abc123",
		SubredditName: "cryptocurrency",
		Title:         "BTC discussion",
		Body:          "What do you think?",
		Author:        "satoshi",
		Permalink:     "/r/cryptocurrency/comments/abc123/btc_discussion/",
		Created:       &reddit.Timestamp{Time: created},
		IsSelfPost:    true,
	}

	raw := toRawPost(p)

	assert.Equal(t, "abc123", raw.ID)
	assert.Equal(t, "cryptocurrency", raw.Subreddit)
	assert.Equal(t, "BTC discussion", raw.Title)
	assert.Equal(t, "What do you think?", raw.Body)
	assert.Equal(t, "satoshi", raw.Author)
	assert.Equal(t, "/r/cryptocurrency/comments/abc123/btc_discussion/", raw.Permalink)
	assert.Equal(t, created, raw.Created)
	assert.True(t, raw.IsSelf)
}

func TestToRawPost_NilCreated(t *testing.T) {
	raw := toRawPost(&reddit.Post{ID: "xyz"})

	assert.True(t, raw.Created.IsZero())
}

func TestMapPosts_Empty(t *testing.T) {
	assert.Empty(t, mapPosts(nil))
}

func TestNewClient_ReadOnlyFallback(t *testing.T) {
	client, err := NewClient(&config.Config{RedditUserAgent: "crypto-sentiment-test/0.1"})

	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestListing_UnknownSort(t *testing.T) {
	client, err := NewClient(&config.Config{})
	require.NoError(t, err)

	_, err = client.Listing(context.Background(), "cryptocurrency", domain.ListingSort("controversial"), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown listing sort")
}
