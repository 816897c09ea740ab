// Package executor defines the execution/signing collaborator: the
// component that turns a built operation into a signed, submitted,
// and confirmed or rejected network action. This module only builds
// operations and reacts to the outcome; it never signs or dispatches.
package executor

import (
	"context"

	"sui-market-lab/internal/txbuild"
)

// Executor signs and submits a built operation.
type Executor interface {
	// Submit dispatches the operation and blocks until the network
	// confirms or rejects it. On success it returns the transaction
	// confirmation digest.
	Submit(ctx context.Context, op *txbuild.Operation) (string, error)
}
