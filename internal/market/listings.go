package market

import (
	"context"
	"fmt"
	"sync"

	"sui-market-lab/internal/attr"
	"sui-market-lab/internal/classify"
	"sui-market-lab/internal/mist"
	"sui-market-lab/internal/sui"
	"sui-market-lab/internal/typeres"
)

// Listing is one marketplace-registry entry resolved for display: the
// listing container, its child index, the escrowed asset snapshot,
// and the asking price in base units.
type Listing struct {
	// ListingID keys the registry entry; it is also the argument the
	// buy entry point takes.
	ListingID string

	Container *sui.ChainObject
	Children  []sui.DynamicFieldInfo
	Asset     *sui.ChainObject

	PriceMist uint64

	Name          string
	ImageURL      string
	MutationClass string
	Volatility    string
	DNA           string
	Rarity        string
}

// PriceDisplay renders the asking price for summary cards.
func (l *Listing) PriceDisplay() string {
	return mist.FormatSui(l.PriceMist)
}

// AssetType resolves the type tag of the escrowed asset.
func (l *Listing) AssetType() (string, bool) {
	return typeres.ResolveAssetType(l.Asset, l.Children, l.Container)
}

// Listings enumerates the marketplace registry and resolves each
// entry to its escrowed asset. Entries resolve independently and
// concurrently; an entry whose secondary lookups fail is returned
// bare (ID only) rather than failing the whole view, since each
// card's resolved state is local to that card.
func (s *Service) Listings(ctx context.Context) ([]Listing, error) {
	entries, err := s.query.GetDynamicFields(ctx, s.cfg.MarketplaceID)
	if err != nil {
		return nil, fmt.Errorf("enumerate registry: %w", err)
	}

	listings := make([]Listing, len(entries))
	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, listingID string) {
			defer wg.Done()
			listings[i] = s.resolveListing(ctx, listingID)
		}(i, entry.ObjectID)
	}
	wg.Wait()

	if s.metrics != nil {
		s.metrics.ListingsResolved.Add(float64(len(listings)))
	}
	return listings, nil
}

// resolveListing fetches one listing container, follows its child
// index to the escrowed asset, and derives the display fields.
// Lookup failures leave the affected parts unset.
func (s *Service) resolveListing(ctx context.Context, listingID string) Listing {
	l := Listing{ListingID: listingID}

	container, err := s.query.GetObject(ctx, listingID, sui.ObjectDataOptions{
		ShowType:    true,
		ShowContent: true,
	})
	if err != nil {
		s.logger.Printf("listing %s: fetch container: %v", listingID, err)
	} else {
		l.Container = container
		l.PriceMist = listingPrice(container)
	}

	children, err := s.query.GetDynamicFields(ctx, listingID)
	if err != nil {
		s.logger.Printf("listing %s: fetch child index: %v", listingID, err)
	} else {
		l.Children = children
	}

	if len(l.Children) > 0 {
		asset, err := s.query.GetObject(ctx, l.Children[0].ObjectID, sui.ObjectDataOptions{
			ShowType:    true,
			ShowContent: true,
			ShowDisplay: true,
		})
		if err != nil {
			s.logger.Printf("listing %s: fetch asset: %v", listingID, err)
		} else {
			l.Asset = asset
		}
	}

	if l.Asset != nil {
		l.Name = classify.Name(l.Asset)
		l.ImageURL = classify.ImageURL(l.Asset)
		l.MutationClass = attr.Resolve(l.Asset, TraitMutationClass)
		l.Volatility = attr.Resolve(l.Asset, TraitVolatility)
		l.DNA = attr.Resolve(l.Asset, TraitDNA)
		l.Rarity = classify.RarityBucket(l.MutationClass)
	}

	return l
}

// priceFieldNames is the fallback order for the asking-price field in
// listing content. Older registry versions named it "price".
var priceFieldNames = []string{"ask", "price"}

// listingPrice extracts the asking price in base units from a listing
// container's content. Zero when absent or unparseable.
func listingPrice(container *sui.ChainObject) uint64 {
	fields := container.ContentFields()
	for _, name := range priceFieldNames {
		if v, ok := fields[name]; ok {
			if n, ok := v.Uint64(); ok {
				return n
			}
		}
	}
	return 0
}
