package server

import "time"

// HTTP server timeouts. Every endpoint answers from in-memory state except
// /teams/search, which is bounded by the provider's own fetch timeout, so
// short read/write limits are safe.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second
