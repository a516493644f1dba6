// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
