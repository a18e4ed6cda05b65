package server

import "time"

// Request handlers only read caches or make bounded upstream calls, so
// ten seconds covers the slowest cold path (full provider chain walk).
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second
