// Package lifecycle holds shared shutdown/lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
