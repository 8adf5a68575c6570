// Package database provides PostgreSQL connectivity and repositories.
//
// Uses pgx for connection pooling and tern for embedded SQL migrations.
// PostRepo implements domain.PostRepository: append-only inserts with
// duplicate-ID suppression plus the aggregate queries the dashboard reads.
package database
