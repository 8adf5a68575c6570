// Package server provides the reporting HTTP server.
//
// Echo handlers for the HTML dashboard, the JSON reporting API, health checks,
// Prometheus metrics, and version info. Read-only: the server never writes to
// the store; the fetcher binary owns ingestion.
package server
