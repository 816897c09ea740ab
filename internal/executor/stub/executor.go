package stub

import (
	"context"

	"sui-market-lab/internal/txbuild"
)

// Executor implements executor.Executor for testing.
type Executor struct {
	// Digest is returned on success.
	Digest string
	// Err, when set, makes every submission fail.
	Err error

	// Submitted records every operation received, in order.
	Submitted []*txbuild.Operation
}

// NewExecutor creates a stub executor confirming with the digest.
func NewExecutor(digest string) *Executor {
	return &Executor{Digest: digest}
}

// Submit records the operation and returns the configured outcome.
func (e *Executor) Submit(_ context.Context, op *txbuild.Operation) (string, error) {
	e.Submitted = append(e.Submitted, op)
	if e.Err != nil {
		return "", e.Err
	}
	return e.Digest, nil
}
