// Package delivery defines the contract every transport-level server
// (HTTP, future gRPC or workers) fulfils so cmd can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	Serve(ctx context.Context) error
}
