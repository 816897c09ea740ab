package market

import (
	"context"
	"fmt"

	"sui-market-lab/internal/attr"
	"sui-market-lab/internal/classify"
	"sui-market-lab/internal/sui"
)

// Item is one owned object prepared for a collection view: the raw
// snapshot plus its derived category label and resolved display traits.
type Item struct {
	Object sui.ChainObject

	Label    string
	Name     string
	ImageURL string

	MutationClass string
	Volatility    string
	DNA           string
	Rarity        string
}

// CollectionView is an owned collection ready for rendering: the
// filtered items and the category filter row built from them.
type CollectionView struct {
	Items      []Item
	Categories []string
}

// fetchOwned retrieves and pre-filters the owned collection shared by
// the inventory and burn views.
func (s *Service) fetchOwned(ctx context.Context, owner string) ([]sui.ChainObject, error) {
	if owner == "" {
		return nil, ErrWalletAbsent
	}

	objects, err := s.query.GetOwnedObjects(ctx, owner, sui.ObjectDataOptions{
		ShowType:    true,
		ShowContent: true,
		ShowDisplay: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch owned objects: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ObjectsFetched.Add(float64(len(objects)))
	}

	return classify.FilterOwned(objects), nil
}

// Inventory builds the inventory view for an owner: every ownable
// object except the native coin and upgrade capabilities, labeled and
// with display traits resolved per item.
func (s *Service) Inventory(ctx context.Context, owner string) (*CollectionView, error) {
	objects, err := s.fetchOwned(ctx, owner)
	if err != nil {
		return nil, err
	}
	return buildCollectionView(objects), nil
}

// Burnable builds the burn view for an owner. Everything ownable is
// burnable except the same two exclusions the inventory applies.
func (s *Service) Burnable(ctx context.Context, owner string) (*CollectionView, error) {
	objects, err := s.fetchOwned(ctx, owner)
	if err != nil {
		return nil, err
	}
	return buildCollectionView(objects), nil
}

// buildCollectionView labels objects and resolves their display traits.
func buildCollectionView(objects []sui.ChainObject) *CollectionView {
	view := &CollectionView{
		Categories: classify.BuildCategories(objects),
	}
	for i := range objects {
		view.Items = append(view.Items, newItem(&objects[i]))
	}
	return view
}

// newItem derives the view fields of a single object.
func newItem(obj *sui.ChainObject) Item {
	mutation := attr.Resolve(obj, TraitMutationClass)
	return Item{
		Object:        *obj,
		Label:         classify.ShortLabel(obj),
		Name:          classify.Name(obj),
		ImageURL:      classify.ImageURL(obj),
		MutationClass: mutation,
		Volatility:    attr.Resolve(obj, TraitVolatility),
		DNA:           attr.Resolve(obj, TraitDNA),
		Rarity:        classify.RarityBucket(mutation),
	}
}

// FilterItems narrows a view's items to one category. CategoryAll
// returns the items unchanged.
func FilterItems(items []Item, selected string) []Item {
	if selected == classify.CategoryAll {
		return items
	}
	var out []Item
	for _, item := range items {
		if item.Label == selected {
			out = append(out, item)
		}
	}
	return out
}
