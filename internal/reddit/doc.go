// Package reddit adapts the Reddit API to the domain PostSource interface.
//
// Wraps the go-reddit client: subreddit listings (hot/new/top/rising) and
// search, mapped to domain.RawPost. No retry or backoff; a failed request
// surfaces as an error for the caller to log and move on.
package reddit
