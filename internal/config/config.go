// Package config resolves the network identity the marketplace runs
// against: the fullnode endpoints and the two externally published
// constants every built operation references, the code package ID and
// the shared marketplace registry object.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults point at the testnet deployment.
const (
	DefaultRPCEndpoint = "https://fullnode.testnet.sui.io:443"
	DefaultWSEndpoint  = "wss://fullnode.testnet.sui.io:443"

	DefaultPackageID     = "0x3d8ffd269790ea6761a6efbdd401251310ec9a33c890085797f417490c8cf165"
	DefaultMarketplaceID = "0x285c72d48fd92d9642ea2314c72dea23d36e38eade8d64f6da9f01e229d47b2b"
)

// Config holds the externally resolved network identity. Core code
// consumes it read-only.
type Config struct {
	RPCEndpoint string
	WSEndpoint  string

	// PackageID prefixes every entry-point target in built operations.
	PackageID string
	// MarketplaceID is the shared registry object holding listings.
	MarketplaceID string
}

// Load reads configuration from the environment, optionally seeded
// from a .env file. A missing .env file is not an error; explicit
// environment variables win over file entries.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		RPCEndpoint:   getEnv("SUI_RPC_ENDPOINT", DefaultRPCEndpoint),
		WSEndpoint:    getEnv("SUI_WS_ENDPOINT", DefaultWSEndpoint),
		PackageID:     getEnv("MARKET_PACKAGE_ID", DefaultPackageID),
		MarketplaceID: getEnv("MARKET_MARKETPLACE_ID", DefaultMarketplaceID),
	}

	if cfg.PackageID == "" || cfg.MarketplaceID == "" {
		return nil, fmt.Errorf("package and marketplace IDs must not be empty")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
