// Package delivery defines what the servers started by the binaries have in common.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
