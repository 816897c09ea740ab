// Package typeres determines the fully-qualified type tag of the
// asset behind a marketplace listing. The registry is generic over the
// traded asset type, and that type parameter must be supplied again as
// a type argument at buy time, but it is not always cheaply
// recoverable from the listing alone.
package typeres

import (
	"strings"

	"sui-market-lab/internal/sui"
)

// ResolveAssetType resolves the asset type tag behind a listing.
// Tiers, first hit wins:
//  1. the fetched escrowed asset object's own type tag
//  2. the declared object type of the first child-index entry
//  3. the generic type parameter parsed out of the listing container's
//     type tag (first matching angle-bracket pair, trimmed)
//
// Returns ("", false) when no tier resolves.
func ResolveAssetType(asset *sui.ChainObject, children []sui.DynamicFieldInfo, container *sui.ChainObject) (string, bool) {
	if asset != nil && asset.Type != "" {
		return asset.Type, true
	}
	if len(children) > 0 && children[0].ObjectType != "" {
		return children[0].ObjectType, true
	}
	if container != nil {
		if tag, ok := genericParam(container.Type); ok {
			return tag, true
		}
	}
	return "", false
}

// genericParam extracts the text enclosed in the first matching
// angle-bracket pair of a type tag. The closing bracket is the last
// one so nested generics stay intact:
// Listing<0x2::coin::Coin<0x2::sui::SUI>> yields the full Coin tag.
func genericParam(tag string) (string, bool) {
	open := strings.Index(tag, "<")
	closing := strings.LastIndex(tag, ">")
	if open < 0 || closing <= open {
		return "", false
	}
	inner := strings.TrimSpace(tag[open+1 : closing])
	if inner == "" {
		return "", false
	}
	return inner, true
}
