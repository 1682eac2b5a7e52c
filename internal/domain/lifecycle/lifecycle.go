// Package lifecycle holds shared constants for application startup and
// shutdown coordination.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or stop
// before the lifecycle hook gives up.
const DefaultTimeout = 10 * time.Second
