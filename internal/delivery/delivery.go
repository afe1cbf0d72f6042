// Package delivery defines the contract shared by the application's
// inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound surface, started by the application
// entrypoint and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
