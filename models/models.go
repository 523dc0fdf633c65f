package models

// Wire shapes for the OwnerRez v2 API. Only the fields this service reads are
// declared; pass-through endpoints return the vendor body untouched.

// Envelope is the OwnerRez paged list wrapper.
type Envelope[T any] struct {
	Items []T `json:"items"`
}

// ListingPhoto is one photo record on the /listings resource.
type ListingPhoto struct {
	URL          string `json:"url"`
	LargeURL     string `json:"large_url"`
	MediumURL    string `json:"medium_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Caption      string `json:"caption"`
	Name         string `json:"name"`
}

// Photo is the normalized gallery entry returned on /api/property.
// URL is always resolvable; a photo with no usable URL is dropped upstream of
// this type.
type Photo struct {
	URL          string `json:"url"`
	LargeURL     string `json:"large_url,omitempty"`
	MediumURL    string `json:"medium_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Caption      string `json:"caption,omitempty"`
}

// ListingTexts holds the nested description block some listings carry.
type ListingTexts struct {
	Description string `json:"description"`
	Main        string `json:"main"`
}

// Listing is the marketing companion record for a property.
// OwnerRez has shipped amenities under several field names over time; all
// known spellings are decoded and resolved in priority order by AmenitySource.
type Listing struct {
	Photos            []ListingPhoto `json:"photos"`
	Description       string         `json:"description"`
	Descriptions      *ListingTexts  `json:"descriptions"`
	Headline          string         `json:"headline"`
	Amenities         []Amenity      `json:"amenities"`
	AmenityList       []Amenity      `json:"amenity_list"`
	AmenityListAlt    []Amenity      `json:"amenityList"`
	Features          []Amenity      `json:"features"`
	PropertyAmenities []Amenity      `json:"property_amenities"`
}

// DescriptionHTML returns the raw description using the documented candidate
// chain, highest fidelity first:
//  1. description — the canonical field
//  2. descriptions.description — nested form used by older accounts
//  3. descriptions.main — fallback body inside the nested form
//  4. headline — short marketing line, better than nothing
func (l *Listing) DescriptionHTML() string {
	if l.Description != "" {
		return l.Description
	}
	if l.Descriptions != nil {
		if l.Descriptions.Description != "" {
			return l.Descriptions.Description
		}
		if l.Descriptions.Main != "" {
			return l.Descriptions.Main
		}
	}
	return l.Headline
}

// AmenitySource returns the first non-empty amenity collection, in the order
// the vendor introduced the field names: amenities, amenity_list, amenityList,
// features, property_amenities.
func (l *Listing) AmenitySource() []Amenity {
	for _, src := range [][]Amenity{
		l.Amenities, l.AmenityList, l.AmenityListAlt, l.Features, l.PropertyAmenities,
	} {
		if len(src) > 0 {
			return src
		}
	}
	return nil
}

// AmenityGroup is one category of amenities on the merged property response.
type AmenityGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Booking is a vendor booking record, reduced to the interval the
// blocked-date expansion reads. Arrival and Departure are plain calendar
// dates (YYYY-MM-DD); the departure day itself is not occupied. The
// availability endpoint passes the full vendor record through untouched.
type Booking struct {
	Arrival   string `json:"arrival_date"`
	Departure string `json:"departure_date"`
}

// RateInterval is a vendor rate period with an optional weekend override.
// From is inclusive, To exclusive.
type RateInterval struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Rate        float64  `json:"rate"`
	WeekendRate *float64 `json:"weekend_rate"`
}

// Review carries the score fields the review summary reads; OwnerRez reports
// it as stars, older payloads as rating. The reviews endpoint passes the full
// vendor record through untouched.
type Review struct {
	Stars  float64 `json:"stars"`
	Rating float64 `json:"rating"`
}

// Score returns whichever rating field the vendor populated.
func (r *Review) Score() float64 {
	if r.Stars > 0 {
		return r.Stars
	}
	return r.Rating
}

// ReviewMeta is the review summary attached to /api/property.
type ReviewMeta struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// CalendarResponse is the per-day view served by /api/calendar.
type CalendarResponse struct {
	Blocked []string           `json:"blocked"`
	Rates   map[string]float64 `json:"rates"`
}
