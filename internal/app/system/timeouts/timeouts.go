// Package timeouts provides centralized timeout values for handler operations.
//
// API handlers deliberately run on the request context without their own
// deadlines (the transport layer bounds them); only the connectivity probes
// use an explicit timeout so a dead database cannot hang a health check.
package timeouts

import (
	"sync"
	"time"
)

// DefaultPing is used if Configure is not called.
const DefaultPing = 2 * time.Second

var (
	mu   sync.RWMutex
	ping = DefaultPing
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Configure overrides the ping timeout. Zero or negative values are ignored.
// Call during startup before handlers are registered.
func Configure(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if d > 0 {
		ping = d
	}
}
