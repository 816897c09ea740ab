// Package classify derives display categories for owned and listed
// objects and builds the category filter set for collection views.
package classify

import (
	"strings"

	"sui-market-lab/internal/sui"
)

// CategoryAll is the synthetic category matching every object.
const CategoryAll = "All"

// LabelUnknown is the label for objects without a type tag.
const LabelUnknown = "Unknown"

// Owned-view exclusions. The native gas coin and package upgrade
// capabilities are ownable but neither tradeable nor burnable here.
const (
	nativeCoinType        = "0x2::sui::SUI"
	nativeCoinWrappedType = "0x2::coin::Coin<0x2::sui::SUI>"
	upgradeCapMarker      = "::package::UpgradeCap"
)

// ShortLabel derives the display category of an object: the final
// segment of its type tag. Total; an absent tag yields LabelUnknown.
func ShortLabel(obj *sui.ChainObject) string {
	if obj == nil || obj.Type == "" {
		return LabelUnknown
	}
	segments := strings.Split(obj.Type, "::")
	return segments[len(segments)-1]
}

// BuildCategories returns CategoryAll followed by the distinct short
// labels of the objects in first-seen order. Never re-sorted: the
// filter row must stay stable across rebuilds of the same collection.
func BuildCategories(objects []sui.ChainObject) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]struct{})
	for i := range objects {
		label := ShortLabel(&objects[i])
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		categories = append(categories, label)
	}
	return categories
}

// FilterByCategory returns the objects whose short label equals
// selected, or the input unchanged for CategoryAll.
func FilterByCategory(objects []sui.ChainObject, selected string) []sui.ChainObject {
	if selected == CategoryAll {
		return objects
	}
	var out []sui.ChainObject
	for i := range objects {
		if ShortLabel(&objects[i]) == selected {
			out = append(out, objects[i])
		}
	}
	return out
}

// FilterOwned removes the native coin and upgrade-capability objects
// from an owned collection. Both the inventory and burn views apply
// this; the marketplace view enumerates registry entries instead of
// owned objects and applies no ownership filter.
func FilterOwned(objects []sui.ChainObject) []sui.ChainObject {
	var out []sui.ChainObject
	for _, obj := range objects {
		if obj.Type == nativeCoinType || obj.Type == nativeCoinWrappedType {
			continue
		}
		if strings.Contains(obj.Type, upgradeCapMarker) {
			continue
		}
		out = append(out, obj)
	}
	return out
}
