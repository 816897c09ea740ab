package sui

import (
	"encoding/json"
	"sort"
	"strconv"
)

// ValueKind discriminates the shapes a Move field value can take
// once decoded from node JSON.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindScalar
	KindRecord
	KindList
)

// Value is a normalized variant for schema-less object content.
// Node responses encode Move fields as arbitrary JSON: strings,
// numbers, booleans, nested objects, or arrays. Every shape folds
// into scalar | record | list so callers never touch raw JSON.
type Value struct {
	Kind   ValueKind
	Str    string
	Record map[string]Value
	List   []Value
}

// UnmarshalJSON decodes any JSON value into the variant.
// Numbers and booleans are kept as their literal text: Move u64
// fields routinely exceed float64 precision, so they must never
// round-trip through a float.
func (v *Value) UnmarshalJSON(data []byte) error {
	switch data[0] {
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		v.Kind = KindRecord
		v.Record = make(map[string]Value, len(m))
		for k, raw := range m {
			var entry Value
			if err := entry.UnmarshalJSON(raw); err != nil {
				return err
			}
			v.Record[k] = entry
		}
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		v.Kind = KindList
		v.List = make([]Value, len(list))
		for i, raw := range list {
			if err := v.List[i].UnmarshalJSON(raw); err != nil {
				return err
			}
		}
	case 'n': // null
		*v = Value{}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.Kind = KindScalar
		v.Str = s
	default: // number or bool, keep literal text
		v.Kind = KindScalar
		v.Str = string(data)
	}
	return nil
}

// Scalar returns the scalar text and whether the value is a scalar.
func (v Value) Scalar() (string, bool) {
	if v.Kind != KindScalar {
		return "", false
	}
	return v.Str, true
}

// Field returns the named sub-value of a record.
func (v Value) Field(name string) (Value, bool) {
	if v.Kind != KindRecord {
		return Value{}, false
	}
	f, ok := v.Record[name]
	return f, ok
}

// Uint64 parses a scalar as an unsigned integer.
func (v Value) Uint64() (uint64, bool) {
	s, ok := v.Scalar()
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Fields is the decoded content of a Move object, field name to value.
type Fields map[string]Value

// SortedNames returns field names in lexicographic order. Map order is
// not stable in Go, and scans over heterogeneous content must behave
// the same on every run.
func (f Fields) SortedNames() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ObjectContent holds the Move-level content of a fetched object.
type ObjectContent struct {
	DataType string `json:"dataType"`
	Type     string `json:"type"`
	Fields   Fields `json:"fields"`
}

// DisplayData holds curated presentation metadata published for a type.
type DisplayData struct {
	Data map[string]string `json:"data"`
}

// ChainObject is an immutable snapshot of an on-chain object.
// Content and Display are populated only when the query requested them.
// Any change on chain requires a refetch; snapshots are never patched.
type ChainObject struct {
	ObjectID string         `json:"objectId"`
	Version  string         `json:"version"`
	Digest   string         `json:"digest"`
	Type     string         `json:"type"`
	Content  *ObjectContent `json:"content"`
	Display  *DisplayData   `json:"display"`
}

// ContentFields returns the object's content fields, or nil.
func (o *ChainObject) ContentFields() Fields {
	if o == nil || o.Content == nil {
		return nil
	}
	return o.Content.Fields
}

// DisplayFields returns the object's display metadata, or nil.
func (o *ChainObject) DisplayFields() map[string]string {
	if o == nil || o.Display == nil {
		return nil
	}
	return o.Display.Data
}

// DynamicFieldInfo describes one child entry under a parent object.
// The marketplace registry keeps listings as dynamic fields, and each
// listing keeps its escrowed asset the same way.
type DynamicFieldInfo struct {
	ObjectID   string           `json:"objectId"`
	ObjectType string           `json:"objectType"`
	Name       DynamicFieldName `json:"name"`
}

// DynamicFieldName is the typed key of a dynamic field entry.
type DynamicFieldName struct {
	Type  string `json:"type"`
	Value Value  `json:"value"`
}

// ObjectDataOptions selects which parts of an object to fetch.
type ObjectDataOptions struct {
	ShowType    bool `json:"showType,omitempty"`
	ShowContent bool `json:"showContent,omitempty"`
	ShowDisplay bool `json:"showDisplay,omitempty"`
}
