package classify

import (
	"encoding/json"
	"reflect"
	"testing"

	"sui-market-lab/internal/sui"
)

func typedObject(typeTag string) sui.ChainObject {
	return sui.ChainObject{ObjectID: "0x1", Type: typeTag}
}

func TestShortLabel(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"0x2::nft::Freak", "Freak"},
		{"0x2::coin::Coin<0x2::sui::SUI>", "SUI>"},
		{"0xabc::devnet_nft::DevNetNFT", "DevNetNFT"},
		{"", LabelUnknown},
	}
	for _, tc := range cases {
		obj := typedObject(tc.tag)
		if got := ShortLabel(&obj); got != tc.want {
			t.Errorf("ShortLabel(%q) = %q, want %q", tc.tag, got, tc.want)
		}
	}
	if got := ShortLabel(nil); got != LabelUnknown {
		t.Errorf("ShortLabel(nil) = %q", got)
	}
}

func TestBuildCategories_FirstSeenOrder(t *testing.T) {
	objects := []sui.ChainObject{
		typedObject("0x2::nft::Freak"),
		typedObject("0x3::pass::SeasonPass"),
		typedObject("0x2::nft::Freak"),
		typedObject("0x4::badge::Badge"),
	}
	got := BuildCategories(objects)
	want := []string{CategoryAll, "Freak", "SeasonPass", "Badge"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}

	// Stable across rebuilds of the same collection.
	if again := BuildCategories(objects); !reflect.DeepEqual(again, got) {
		t.Fatalf("rebuild changed order: %v vs %v", again, got)
	}
}

func TestBuildCategories_Empty(t *testing.T) {
	got := BuildCategories(nil)
	if !reflect.DeepEqual(got, []string{CategoryAll}) {
		t.Fatalf("categories = %v", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	objects := []sui.ChainObject{
		typedObject("0x2::nft::Freak"),
		typedObject("0x3::pass::SeasonPass"),
		typedObject("0x2::nft::Freak"),
	}

	all := FilterByCategory(objects, CategoryAll)
	if len(all) != 3 {
		t.Fatalf("CategoryAll filtered to %d objects", len(all))
	}

	freaks := FilterByCategory(objects, "Freak")
	if len(freaks) != 2 {
		t.Fatalf("Freak filtered to %d objects", len(freaks))
	}
	for _, obj := range freaks {
		if obj.Type != "0x2::nft::Freak" {
			t.Errorf("wrong object passed filter: %q", obj.Type)
		}
	}

	if none := FilterByCategory(objects, "Missing"); len(none) != 0 {
		t.Fatalf("missing category returned %d objects", len(none))
	}
}

func TestFilterOwned_Exclusions(t *testing.T) {
	objects := []sui.ChainObject{
		typedObject("0x2::sui::SUI"),
		typedObject("0x2::coin::Coin<0x2::sui::SUI>"),
		typedObject("0x2::package::UpgradeCap"),
		typedObject("0x2::nft::Freak"),
		typedObject("0x2::coin::Coin<0x5::usdc::USDC>"),
	}
	got := FilterOwned(objects)
	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d: %+v", len(got), got)
	}
	if got[0].Type != "0x2::nft::Freak" || got[1].Type != "0x2::coin::Coin<0x5::usdc::USDC>" {
		t.Errorf("wrong survivors: %q, %q", got[0].Type, got[1].Type)
	}
}

func TestName(t *testing.T) {
	var obj sui.ChainObject
	payload := `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {"name": "Subject 7"}},
		"display": {"data": {"name": "Subject Seven"}}
	}`
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := Name(&obj); got != "Subject Seven" {
		t.Errorf("display name not preferred: %q", got)
	}

	obj.Display = nil
	if got := Name(&obj); got != "Subject 7" {
		t.Errorf("content name fallback: %q", got)
	}

	obj.Content = nil
	if got := Name(&obj); got != "Freak" {
		t.Errorf("short-label fallback: %q", got)
	}
}

func TestImageURL(t *testing.T) {
	var obj sui.ChainObject
	payload := `{
		"objectId": "0x1",
		"type": "0x2::nft::Freak",
		"content": {"dataType": "moveObject", "fields": {"url": "https://content.example/7.png"}},
		"display": {"data": {"image_url": "https://display.example/7.png"}}
	}`
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := ImageURL(&obj); got != "https://display.example/7.png" {
		t.Errorf("display image not preferred: %q", got)
	}

	obj.Display = nil
	if got := ImageURL(&obj); got != "https://content.example/7.png" {
		t.Errorf("content url fallback: %q", got)
	}

	obj.Content = nil
	if got := ImageURL(&obj); got != "" {
		t.Errorf("expected empty url, got %q", got)
	}
}

func TestRarityBucket(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ALPHA_PRIME", RarityRare},
		{"beta_strain", RarityUncommon},
		{"GAMMA_LOW", RarityCommon},
		{"N/A", RarityNone},
		{"", RarityNone},
	}
	for _, tc := range cases {
		if got := RarityBucket(tc.in); got != tc.want {
			t.Errorf("RarityBucket(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
