package classify

import (
	"strings"

	"sui-market-lab/internal/sui"
)

// Rarity buckets derived from an object's mutation class.
const (
	RarityRare     = "ALPHA"
	RarityUncommon = "BETA"
	RarityCommon   = "GAMMA"
	RarityNone     = ""
)

// Name resolves a display name for an object: curated display name,
// then the content name field, then the short label.
func Name(obj *sui.ChainObject) string {
	if display := obj.DisplayFields(); display != nil {
		if name := display["name"]; name != "" {
			return name
		}
	}
	if fields := obj.ContentFields(); fields != nil {
		if name, ok := fields["name"]; ok {
			if s, ok := name.Scalar(); ok && s != "" {
				return s
			}
		}
	}
	return ShortLabel(obj)
}

// imageFieldOrder is the fallback order for image URLs, display
// metadata first.
var (
	displayImageFields = []string{"image_url", "url"}
	contentImageFields = []string{"url", "image_url", "img_url"}
)

// ImageURL resolves an image URL for an object, or "" when the object
// carries none.
func ImageURL(obj *sui.ChainObject) string {
	if display := obj.DisplayFields(); display != nil {
		for _, f := range displayImageFields {
			if url := display[f]; url != "" {
				return url
			}
		}
	}
	if fields := obj.ContentFields(); fields != nil {
		for _, f := range contentImageFields {
			if v, ok := fields[f]; ok {
				if s, ok := v.Scalar(); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// RarityBucket maps a mutation-class trait value to its rarity bucket.
// Matching is substring-based on the folded value, mirroring how the
// collection names its classes (ALPHA_PRIME, BETA_STRAIN, ...).
func RarityBucket(mutationClass string) string {
	v := strings.ToUpper(mutationClass)
	switch {
	case strings.Contains(v, RarityRare):
		return RarityRare
	case strings.Contains(v, RarityUncommon):
		return RarityUncommon
	case strings.Contains(v, RarityCommon):
		return RarityCommon
	}
	return RarityNone
}
