package listing

import (
	"encoding/json"
	"testing"

	"t2gstays/models"
)

func decodeAmenities(t *testing.T, raw string) []models.Amenity {
	t.Helper()
	var out []models.Amenity
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode amenities: %v", err)
	}
	return out
}

func TestGroupAmenitiesFlatStrings(t *testing.T) {
	groups := GroupAmenities(decodeAmenities(t, `["Wifi", "Dishwasher"]`))
	if len(groups) != 1 {
		t.Fatalf("expected one implicit group, got %d", len(groups))
	}
	if groups[0].Category != "General" {
		t.Fatalf("flat items should land in General, got %q", groups[0].Category)
	}
	if len(groups[0].Items) != 2 || groups[0].Items[0] != "Wifi" {
		t.Fatalf("unexpected items: %v", groups[0].Items)
	}
}

func TestGroupAmenitiesKnownCategoryKeys(t *testing.T) {
	groups := GroupAmenities(decodeAmenities(t, `[
		{"name": "Oven", "kind": "kitchen"},
		{"name": "Smoke detector", "category": "safety"},
		{"name": "Dishwasher", "kind": "Kitchen"}
	]`))
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(groups), groups)
	}
	if groups[0].Category != "Kitchen" || len(groups[0].Items) != 2 {
		t.Fatalf("kitchen group wrong: %+v", groups[0])
	}
	if groups[1].Category != "Safety" {
		t.Fatalf("safety group wrong: %+v", groups[1])
	}
}

func TestGroupAmenitiesUnknownKeyFallsBackToOther(t *testing.T) {
	groups := GroupAmenities(decodeAmenities(t, `[{"name": "Llama feeding", "kind": "exotic_extras"}]`))
	if len(groups) != 1 || groups[0].Category != "Other" {
		t.Fatalf("unknown category key should map to Other, got %+v", groups)
	}
}

func TestGroupAmenitiesPreGrouped(t *testing.T) {
	groups := GroupAmenities(decodeAmenities(t, `[
		{"name": "Kitchen", "items": ["Oven", {"name": "Kettle"}]},
		{"name": "Empty", "items": ["  ", ""]}
	]`))
	if len(groups) != 1 {
		t.Fatalf("group with no surviving items must be dropped, got %+v", groups)
	}
	if groups[0].Category != "Kitchen" || len(groups[0].Items) != 2 {
		t.Fatalf("pre-grouped decode wrong: %+v", groups[0])
	}
	if groups[0].Items[1] != "Kettle" {
		t.Fatalf("object items should use their name field: %v", groups[0].Items)
	}
}

func TestGroupAmenitiesEmptyItemsArrayDropped(t *testing.T) {
	groups := GroupAmenities(decodeAmenities(t, `[
		{"name": "Kitchen", "items": []},
		{"name": "Outdoor", "items": ["Grill"]}
	]`))
	if len(groups) != 1 {
		t.Fatalf("group with an empty items array must be dropped, got %+v", groups)
	}
	if groups[0].Category != "Outdoor" {
		t.Fatalf("the empty category label must not leak as an item: %+v", groups[0])
	}
}

func TestGroupAmenitiesDeduplicatesByNormalizedLabel(t *testing.T) {
	groups := GroupAmenities(decodeAmenities(t, `[
		{"name": "Towels", "items": ["Bath towels"]},
		{"name": "towels ", "items": ["Beach towels"]}
	]`))
	if len(groups) != 1 {
		t.Fatalf("expected merged group, got %+v", groups)
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected merged items, got %v", groups[0].Items)
	}
}

func TestGroupAmenitiesDecodesEntitiesInItems(t *testing.T) {
	groups := GroupAmenities(decodeAmenities(t, `["Washer &amp; dryer"]`))
	if groups[0].Items[0] != "Washer & dryer" {
		t.Fatalf("entities not decoded: %v", groups[0].Items)
	}
}
