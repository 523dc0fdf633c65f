package listing

import (
	"strings"

	"t2gstays/models"
)

const (
	// generalCategory labels items the vendor supplied with no category key.
	generalCategory = "General"
	// otherCategory labels items whose category key is not in the known set.
	otherCategory = "Other"
)

// categoryLabels is the closed set of vendor category keys and their display
// labels. Unknown keys fall back to otherCategory rather than being munged
// into a label, so vendor schema drift surfaces as "Other" instead of a
// half-formatted heading.
var categoryLabels = map[string]string{
	"kitchen":         "Kitchen",
	"bathroom":        "Bathroom",
	"bedroom":         "Bedroom",
	"living":          "Living Area",
	"outdoor":         "Outdoor",
	"entertainment":   "Entertainment",
	"internet":        "Internet & Office",
	"office":          "Internet & Office",
	"safety":          "Safety",
	"accessibility":   "Accessibility",
	"parking":         "Parking",
	"laundry":         "Laundry",
	"heating_cooling": "Heating & Cooling",
	"climate":         "Heating & Cooling",
	"pool_spa":        "Pool & Spa",
	"family":          "Family",
	"views":           "Views",
	"location":        "Location",
	"services":        "Services",
	"general":         generalCategory,
}

// categoryLabel resolves a vendor category key through the lookup table.
func categoryLabel(key string) string {
	if key == "" {
		return generalCategory
	}
	if label, ok := categoryLabels[strings.ToLower(strings.TrimSpace(key))]; ok {
		return label
	}
	return otherCategory
}

// GroupAmenities normalizes the heterogeneous vendor amenity collection into
// ordered (category, items) pairs. Item text is entity-decoded and trimmed;
// empty items are dropped, and a category left with zero items is dropped.
// Categories are deduplicated by normalized label, first occurrence keeping
// its position.
func GroupAmenities(amenities []models.Amenity) []models.AmenityGroup {
	groups := []models.AmenityGroup{}
	index := map[string]int{}

	add := func(label string, items []string) {
		cleaned := make([]string, 0, len(items))
		for _, it := range items {
			if text := strings.TrimSpace(HTMLToText(it)); text != "" {
				cleaned = append(cleaned, text)
			}
		}
		if len(cleaned) == 0 {
			return
		}
		key := strings.ToLower(strings.TrimSpace(label))
		if i, ok := index[key]; ok {
			groups[i].Items = append(groups[i].Items, cleaned...)
			return
		}
		index[key] = len(groups)
		groups = append(groups, models.AmenityGroup{Category: label, Items: cleaned})
	}

	for _, a := range amenities {
		if a.Grouped() {
			label := a.Name
			if label == "" {
				label = categoryLabel(a.CategoryKey)
			}
			add(label, a.Items)
			continue
		}
		if a.Name == "" {
			continue
		}
		add(categoryLabel(a.CategoryKey), []string{a.Name})
	}
	return groups
}
