// Package delivery defines the contract every transport implementation
// (HTTP, workers) exposes to the application entrypoint.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the transport
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
