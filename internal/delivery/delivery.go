// Package delivery defines the contract every transport (HTTP, workers, ...) implements.
package delivery

import "context"

// Delivery is a long-running transport serving requests until the context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
