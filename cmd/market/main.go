package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sui-market-lab/internal/classify"
	"sui-market-lab/internal/config"
	"sui-market-lab/internal/market"
	"sui-market-lab/internal/observability"
	"sui-market-lab/internal/sui"
)

func main() {
	// Parse flags
	view := flag.String("view", "market", "View to render: inventory, market, or burn")
	owner := flag.String("owner", "", "Wallet address for owned-object views")
	category := flag.String("category", classify.CategoryAll, "Category filter for owned-object views")
	envFile := flag.String("env-file", "", "Path to .env file (optional)")
	rpcEndpoint := flag.String("rpc-endpoint", "", "Sui fullnode RPC endpoint (overrides config)")
	watch := flag.Bool("watch", false, "Subscribe to marketplace events and re-render on change")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics HTTP address (empty to disable)")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[market] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Fatalf("Load config: %v", err)
	}
	if *rpcEndpoint != "" {
		cfg.RPCEndpoint = *rpcEndpoint
	}

	metrics := observability.NewMetrics("")

	// Start metrics server if enabled
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			logger.Printf("Starting metrics server on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Printf("Metrics server error: %v", err)
			}
		}()
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	query := sui.NewHTTPClient(cfg.RPCEndpoint,
		sui.WithLatencyObserver(func(method string, seconds float64) {
			metrics.RPCCallLatency.WithLabelValues(method).Observe(seconds)
		}))

	svc := market.New(market.Options{
		Query:    query,
		Executor: nil, // read-only tool; mutating actions need a signing collaborator
		Config:   cfg,
		Metrics:  metrics,
		Logger:   logger,
	})

	render := func() error {
		switch *view {
		case "inventory":
			return renderOwned(ctx, svc, *owner, *category, false)
		case "burn":
			return renderOwned(ctx, svc, *owner, *category, true)
		case "market":
			return renderListings(ctx, svc)
		default:
			return fmt.Errorf("unknown view: %s", *view)
		}
	}

	if err := render(); err != nil {
		logger.Fatalf("Error: %v", err)
	}

	if *watch {
		if err := watchEvents(ctx, logger, cfg, render); err != nil && err != context.Canceled {
			logger.Fatalf("Watch error: %v", err)
		}
	}
}

// renderOwned prints the inventory or burn view for an owner.
func renderOwned(ctx context.Context, svc *market.Service, owner, category string, burn bool) error {
	var (
		view *market.CollectionView
		err  error
	)
	if burn {
		view, err = svc.Burnable(ctx, owner)
	} else {
		view, err = svc.Inventory(ctx, owner)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Categories: %v\n", view.Categories)
	items := market.FilterItems(view.Items, category)
	for _, item := range items {
		fmt.Printf("%-20s %-14s class=%-14s volatility=%-8s %s\n",
			item.Name, item.Label, item.MutationClass, item.Volatility, item.Object.ObjectID)
	}
	fmt.Printf("%d item(s)\n", len(items))
	return nil
}

// renderListings prints the marketplace view.
func renderListings(ctx context.Context, svc *market.Service) error {
	listings, err := svc.Listings(ctx)
	if err != nil {
		return err
	}

	for _, l := range listings {
		typeTag, ok := l.AssetType()
		if !ok {
			typeTag = "(unresolved)"
		}
		fmt.Printf("%-20s %8s SUI  class=%-14s %s\n    type: %s\n",
			l.Name, l.PriceDisplay(), l.MutationClass, l.ListingID, typeTag)
	}
	fmt.Printf("%d listing(s)\n", len(listings))
	return nil
}

// watchEvents re-renders the view whenever the marketplace package
// emits an event.
func watchEvents(ctx context.Context, logger *log.Logger, cfg *config.Config, render func() error) error {
	ws, err := sui.NewWSClient(ctx, cfg.WSEndpoint, nil)
	if err != nil {
		return fmt.Errorf("create websocket client: %w", err)
	}
	defer ws.Close()

	events, err := ws.SubscribeEvents(ctx, sui.EventFilter{Package: cfg.PackageID})
	if err != nil {
		return fmt.Errorf("subscribe events: %w", err)
	}
	logger.Printf("Watching events from %s", cfg.PackageID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logger.Printf("Event %s (%s), re-rendering", ev.Type, ev.TxDigest)
			// Give the node a beat to index the change
			time.Sleep(500 * time.Millisecond)
			if err := render(); err != nil {
				logger.Printf("Render error: %v", err)
			}
		}
	}
}
