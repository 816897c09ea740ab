// Package attr resolves named trait values out of heterogeneous
// on-chain object records. Custom trait encoding is not standardized:
// asset authors variously use direct content fields, curated display
// metadata, vectors of attribute records, or parallel key/value
// arrays. The resolver scans those shapes in a fixed order and the
// first exact (case-folded) key match wins.
package attr

import (
	"sort"
	"strings"

	"sui-market-lab/internal/sui"
)

// Unknown is the sentinel returned when no tier matches.
// Display code renders it directly and never branches on nil.
const Unknown = "N/A"

// vectorFieldNames are the conventional container fields scanned for
// attribute-record vectors, in scan order.
var vectorFieldNames = []string{"attributes", "metadata", "traits", "properties"}

// keyFieldNames and valueFieldNames pair up for the parallel-array
// shape: the first present keys field is matched against the first
// present values field.
var (
	keyFieldNames   = []string{"keys", "attribute_keys", "names"}
	valueFieldNames = []string{"values", "attribute_values"}
)

// matcher probes one encoding shape for the key. Matchers never do
// partial matching; the key comparison is case-folded equality.
type matcher func(obj *sui.ChainObject, key string) (string, bool)

// matchers in fallback order. A later tier runs only when every
// earlier tier found nothing.
var matchers = []matcher{
	matchContentField,
	matchDisplayField,
	matchAttributeVector,
	matchParallelArrays,
}

// Resolve extracts the trait named key from the object.
// Returns Unknown when no encoding shape carries the key.
func Resolve(obj *sui.ChainObject, key string) string {
	if obj == nil {
		return Unknown
	}
	folded := strings.ToLower(key)
	for _, m := range matchers {
		if v, ok := m(obj, folded); ok {
			return v
		}
	}
	return Unknown
}

// matchContentField scans direct content fields.
func matchContentField(obj *sui.ChainObject, key string) (string, bool) {
	fields := obj.ContentFields()
	for _, name := range fields.SortedNames() {
		if strings.ToLower(name) != key {
			continue
		}
		if s, ok := fields[name].Scalar(); ok {
			return s, true
		}
	}
	return "", false
}

// matchDisplayField scans curated display metadata.
func matchDisplayField(obj *sui.ChainObject, key string) (string, bool) {
	display := obj.DisplayFields()
	for _, name := range sortedKeys(display) {
		if strings.ToLower(name) == key {
			return display[name], true
		}
	}
	return "", false
}

// matchAttributeVector scans conventional container fields holding a
// sequence of attribute records, each with a key/name and a value.
func matchAttributeVector(obj *sui.ChainObject, key string) (string, bool) {
	fields := obj.ContentFields()
	for _, vecName := range vectorFieldNames {
		vec, ok := fields[vecName]
		if !ok || vec.Kind != sui.KindList {
			continue
		}
		for _, entry := range vec.List {
			if entryKey(entry) != key {
				continue
			}
			if v, ok := entryValue(entry); ok {
				return v, true
			}
		}
	}
	return "", false
}

// entryKey extracts the case-folded key of an attribute record,
// checking the Move wrapper record ("fields") before the bare shape.
func entryKey(entry sui.Value) string {
	candidates := []sui.Value{entry}
	if wrapped, ok := entry.Field("fields"); ok {
		candidates = []sui.Value{wrapped, entry}
	}
	for _, c := range candidates {
		for _, name := range []string{"key", "name"} {
			if f, ok := c.Field(name); ok {
				if s, ok := f.Scalar(); ok {
					return strings.ToLower(s)
				}
			}
		}
	}
	return ""
}

// entryValue extracts the paired value of an attribute record.
func entryValue(entry sui.Value) (string, bool) {
	candidates := []sui.Value{entry}
	if wrapped, ok := entry.Field("fields"); ok {
		candidates = []sui.Value{wrapped, entry}
	}
	for _, c := range candidates {
		if f, ok := c.Field("value"); ok {
			if s, ok := f.Scalar(); ok {
				return s, true
			}
		}
	}
	return "", false
}

// matchParallelArrays matches the two-sequence shape: a keys field and
// a values field, paired by index.
func matchParallelArrays(obj *sui.ChainObject, key string) (string, bool) {
	fields := obj.ContentFields()

	keys, ok := firstList(fields, keyFieldNames)
	if !ok {
		return "", false
	}
	values, ok := firstList(fields, valueFieldNames)
	if !ok {
		return "", false
	}

	for i, k := range keys.List {
		s, ok := k.Scalar()
		if !ok || strings.ToLower(s) != key {
			continue
		}
		if i >= len(values.List) {
			return "", false
		}
		if v, ok := values.List[i].Scalar(); ok {
			return v, true
		}
	}
	return "", false
}

// firstList returns the first named field present as a sequence.
func firstList(fields sui.Fields, names []string) (sui.Value, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok && v.Kind == sui.KindList {
			return v, true
		}
	}
	return sui.Value{}, false
}

func sortedKeys(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
