// Package lifecycle holds process lifecycle constants shared by the delivery
// and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps.
const DefaultTimeout = 10 * time.Second
