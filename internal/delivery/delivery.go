// Package delivery defines the contract every inbound transport
// (HTTP today, workers or gRPC later) satisfies so main can run them
// uniformly.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the
// transport stops or fails; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
