package listing

import "t2gstays/models"

// NormalizePhotos maps the listing gallery to the merged response shape.
// The primary URL resolves through an ordered candidate chain:
//  1. url — the vendor's canonical full-size link
//  2. large_url — present on galleries uploaded before the url field existed
//  3. medium_url — resized variant, acceptable for display
//  4. thumbnail_url — last resort, still renderable
//
// A photo with no resolvable URL is dropped. No placeholder is synthesized
// here; placeholder substitution is the presentation layer's concern.
func NormalizePhotos(photos []models.ListingPhoto) []models.Photo {
	out := make([]models.Photo, 0, len(photos))
	for _, p := range photos {
		url := firstOf(p.URL, p.LargeURL, p.MediumURL, p.ThumbnailURL)
		if url == "" {
			continue
		}
		out = append(out, models.Photo{
			URL:          url,
			LargeURL:     firstOf(p.LargeURL, p.URL),
			MediumURL:    p.MediumURL,
			ThumbnailURL: p.ThumbnailURL,
			Caption:      firstOf(p.Caption, p.Name),
		})
	}
	return out
}

// FallbackPhotos synthesizes a single-photo gallery from whatever thumbnail
// fields exist on the raw property record, used when the listing resource is
// unavailable or carries no photos. Returns an empty slice when the property
// has no thumbnails either.
func FallbackPhotos(property map[string]any) []models.Photo {
	large := stringField(property, "thumbnail_url_large")
	medium := stringField(property, "thumbnail_url_medium")
	thumb := stringField(property, "thumbnail_url")

	url := firstOf(large, medium, thumb)
	if url == "" {
		return []models.Photo{}
	}
	return []models.Photo{{
		URL:          url,
		LargeURL:     large,
		MediumURL:    medium,
		ThumbnailURL: thumb,
	}}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
