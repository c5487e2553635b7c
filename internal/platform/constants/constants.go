// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, retry budgets, and cross-cutting keys shared
between the ingestion engine, the REST surface, and the CLI.

Using this package ensures magic strings and magic numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "tmdb-service"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout bounds REST requests and the per-connection Postgres
	// statement timeout.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period given to in-flight jobs on SIGTERM.
	ShutdownTimeout = 30 * time.Second
)

// # Upstream HTTP

const (
	// UpstreamRequestTimeout bounds a single outbound request to TMDB.
	UpstreamRequestTimeout = 30 * time.Second

	// UpstreamMaxAttempts is the retry ceiling for transient failures.
	UpstreamMaxAttempts = 5
)

// # Changes Reconciler

const (
	// ChangesNarrowWindow is the lookback used when the last sync was recent.
	ChangesNarrowWindow = 24 * time.Hour

	// ChangesMaxLookback is the upper bound upstream retains change records for.
	ChangesMaxLookback = 14 * 24 * time.Hour

	// SkipAfterSweepWindow: a changes_sync within this long of a full_sweep no-ops.
	SkipAfterSweepWindow = 24 * time.Hour
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
	FieldError   = "error"
	FieldCode    = "code"
)

// # Database Schema

const (
	SchemaPublic = "public"
)

// # Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXAPIKey       = "X-API-Key"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)
