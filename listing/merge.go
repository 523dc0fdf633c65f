package listing

import (
	"encoding/json"
	"log"
	"math"

	"t2gstays/models"
)

// Merge attaches the listing gallery, plain-text description, amenity groups
// and review summary to the raw property record. listingRaw and reviewsRaw
// may be nil when the secondary calls failed; the merge then degrades to the
// thumbnail fallback and omits the optional fields.
func Merge(property map[string]any, listingRaw, reviewsRaw json.RawMessage) map[string]any {
	photos := []models.Photo{}
	groups := []models.AmenityGroup{}
	var description any

	if listingRaw != nil {
		var l models.Listing
		if err := json.Unmarshal(listingRaw, &l); err != nil {
			log.Printf("[property] listing decode failed: %v", err)
		} else {
			photos = NormalizePhotos(l.Photos)
			if text := HTMLToText(l.DescriptionHTML()); text != "" {
				description = text
			}
			groups = GroupAmenities(l.AmenitySource())
		}
	}

	if len(photos) == 0 {
		photos = FallbackPhotos(property)
	}

	property["photos"] = photos
	property["description"] = description
	property["amenityGroups"] = groups

	if meta := ReviewSummary(reviewsRaw); meta != nil {
		property["reviewMeta"] = meta
	}
	return property
}

// ReviewSummary condenses the reviews payload into a count and mean rating,
// rounded to one decimal. Returns nil when the payload is absent, malformed,
// or empty.
func ReviewSummary(reviewsRaw json.RawMessage) *models.ReviewMeta {
	if reviewsRaw == nil {
		return nil
	}
	var list models.Envelope[models.Review]
	if err := json.Unmarshal(reviewsRaw, &list); err != nil || len(list.Items) == 0 {
		return nil
	}

	var sum float64
	var rated int
	for i := range list.Items {
		if score := list.Items[i].Score(); score > 0 {
			sum += score
			rated++
		}
	}
	meta := &models.ReviewMeta{Count: len(list.Items)}
	if rated > 0 {
		meta.AverageRating = math.Round(sum/float64(rated)*10) / 10
	}
	return meta
}
