// Package app provides the application service layer.
//
// Service orchestrates a fetch cycle: subreddit listings and searches →
// sentiment scoring and classification → coin extraction → batch insert with
// duplicate suppression. Depends on domain interfaces, not concrete
// implementations. Cycles are strictly sequential; one failed request is
// logged and skipped, never retried.
package app
