// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport endpoint managed by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
