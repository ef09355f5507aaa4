// Package lifecycle holds shared timing constants for component startup
// and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived
// components (HTTP server, database pool, publishers).
const DefaultTimeout = 30 * time.Second
