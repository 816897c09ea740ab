// Package market glues the marketplace core together for the three
// collection views: inventory, marketplace, and burn. A view collector
// fetches raw object records, the classifier filters and labels them,
// the attribute resolver extracts display traits, and confirmed user
// actions flow through the transaction builders into the execution
// collaborator, whose result drives the outcome controller.
package market

import (
	"context"
	"errors"
	"log"

	"sui-market-lab/internal/config"
	"sui-market-lab/internal/executor"
	"sui-market-lab/internal/observability"
	"sui-market-lab/internal/outcome"
	"sui-market-lab/internal/sui"
)

// Well-known trait keys of the collection.
const (
	TraitMutationClass = "MUTATION_CLASS"
	TraitVolatility    = "VOLATILITY_INDEX"
	TraitDNA           = "DNA_SEQUENCE"
)

// ErrWalletAbsent is returned when a mutating action is attempted
// without a connected signing identity. Checked before construction;
// never costs a network round-trip.
var ErrWalletAbsent = errors.New("no connected wallet")

// Service coordinates the marketplace views against a fullnode and
// the execution collaborator.
type Service struct {
	query   sui.QueryClient
	exec    executor.Executor
	cfg     *config.Config
	metrics *observability.Metrics
	logger  *log.Logger
}

// Options for creating a Service.
type Options struct {
	// Required collaborators
	Query    sui.QueryClient
	Executor executor.Executor
	Config   *config.Config

	// Optional
	Metrics *observability.Metrics
	Logger  *log.Logger
}

// New creates a new Service.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Writer(), "[market] ", log.LstdFlags)
	}
	return &Service{
		query:   opts.Query,
		exec:    opts.Executor,
		cfg:     opts.Config,
		metrics: opts.Metrics,
		logger:  logger,
	}
}

// WatchRefresh forwards the controller's data-changed signals to fn
// until the context ends. The view passes a fn that re-fetches its
// collections and propagates the refresh to sibling views.
func (s *Service) WatchRefresh(ctx context.Context, ctrl *outcome.Controller, fn func(outcome.RefreshEvent)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ctrl.Refresh():
			if !ok {
				return
			}
			if s.metrics != nil {
				s.metrics.RefreshSignals.Inc()
			}
			fn(ev)
		}
	}
}
