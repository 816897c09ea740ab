package attr

import (
	"encoding/json"
	"testing"

	"sui-market-lab/internal/sui"
)

// objectFromJSON decodes a node-shaped object payload for tests.
func objectFromJSON(t *testing.T, payload string) *sui.ChainObject {
	t.Helper()
	var obj sui.ChainObject
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		t.Fatalf("decode object: %v", err)
	}
	return &obj
}

func TestResolve_DirectField_CaseInsensitive(t *testing.T) {
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"MUTATION_CLASS": "ALPHA_PRIME"
		}}
	}`)

	if got := Resolve(obj, "mutation_class"); got != "ALPHA_PRIME" {
		t.Errorf("expected ALPHA_PRIME, got %q", got)
	}
}

func TestResolve_DisplayFallback(t *testing.T) {
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {"name": "Subject 7"}},
		"display": {"data": {"mutation_class": "BETA"}}
	}`)

	if got := Resolve(obj, "MUTATION_CLASS"); got != "BETA" {
		t.Errorf("expected BETA, got %q", got)
	}
}

func TestResolve_DirectFieldWinsOverDisplay(t *testing.T) {
	// Tier order is strict: a tier-1 hit must short-circuit even when
	// a later tier carries a different value for the same key.
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"mutation_class": "GAMMA"
		}},
		"display": {"data": {"mutation_class": "ALPHA"}}
	}`)

	if got := Resolve(obj, "Mutation_Class"); got != "GAMMA" {
		t.Errorf("expected tier-1 value GAMMA, got %q", got)
	}
}

func TestResolve_AttributeVector(t *testing.T) {
	// Move-wrapped attribute records: {fields: {key, value}}
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"attributes": [
				{"fields": {"key": "VOLATILITY_INDEX", "value": "88"}},
				{"fields": {"key": "DNA_SEQUENCE", "value": "ATGGCA"}}
			]
		}}
	}`)

	if got := Resolve(obj, "dna_sequence"); got != "ATGGCA" {
		t.Errorf("expected ATGGCA, got %q", got)
	}
	if got := Resolve(obj, "volatility_index"); got != "88" {
		t.Errorf("expected 88, got %q", got)
	}
}

func TestResolve_AttributeVector_BareRecords(t *testing.T) {
	// Bare records using "name" instead of "key"
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"traits": [
				{"name": "mutation_class", "value": "BETA_STRAIN"}
			]
		}}
	}`)

	if got := Resolve(obj, "MUTATION_CLASS"); got != "BETA_STRAIN" {
		t.Errorf("expected BETA_STRAIN, got %q", got)
	}
}

func TestResolve_VectorOrderFixed(t *testing.T) {
	// "attributes" is scanned before "traits"
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"traits":     [{"key": "rank", "value": "from_traits"}],
			"attributes": [{"key": "rank", "value": "from_attributes"}]
		}}
	}`)

	if got := Resolve(obj, "rank"); got != "from_attributes" {
		t.Errorf("expected from_attributes, got %q", got)
	}
}

func TestResolve_ParallelArrays(t *testing.T) {
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"attribute_keys":   ["MUTATION_CLASS", "VOLATILITY_INDEX"],
			"attribute_values": ["GAMMA_LOW", "12"]
		}}
	}`)

	if got := Resolve(obj, "volatility_index"); got != "12" {
		t.Errorf("expected 12, got %q", got)
	}
	if got := Resolve(obj, "mutation_class"); got != "GAMMA_LOW" {
		t.Errorf("expected GAMMA_LOW, got %q", got)
	}
}

func TestResolve_ParallelArrays_IndexPastValues(t *testing.T) {
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"keys":   ["a", "b"],
			"values": ["only_a"]
		}}
	}`)

	if got := Resolve(obj, "b"); got != Unknown {
		t.Errorf("expected sentinel, got %q", got)
	}
}

func TestResolve_NoMatch_ReturnsSentinel(t *testing.T) {
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {"name": "Subject 7"}}
	}`)

	if got := Resolve(obj, "nonexistent"); got != Unknown {
		t.Errorf("expected %q, got %q", Unknown, got)
	}
}

func TestResolve_NilObject(t *testing.T) {
	if got := Resolve(nil, "anything"); got != Unknown {
		t.Errorf("expected %q, got %q", Unknown, got)
	}
}

func TestResolve_NoPartialMatch(t *testing.T) {
	obj := objectFromJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {
			"mutation_class_v2": "ALPHA"
		}}
	}`)

	if got := Resolve(obj, "mutation_class"); got != Unknown {
		t.Errorf("partial key matched: got %q", got)
	}
}
