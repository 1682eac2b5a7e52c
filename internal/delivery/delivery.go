// Package delivery defines the contract every transport entrypoint
// implements so the application can manage them uniformly.
package delivery

import "context"

// Delivery is a runnable transport endpoint. Graceful shutdown is wired
// separately through lifecycle hooks.
type Delivery interface {
	// Serve starts the endpoint and blocks until it stops or fails.
	Serve(ctx context.Context) error
}
