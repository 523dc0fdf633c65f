package listing

import (
	"testing"

	"t2gstays/models"
)

func TestNormalizePhotosCandidateChain(t *testing.T) {
	photos := NormalizePhotos([]models.ListingPhoto{
		{URL: "https://img/full.jpg", LargeURL: "https://img/large.jpg", Caption: "Front"},
		{LargeURL: "https://img/large2.jpg"},
		{MediumURL: "https://img/med.jpg"},
		{ThumbnailURL: "https://img/thumb.jpg", Name: "Pool"},
		{}, // no URLs at all: dropped
	})

	if len(photos) != 4 {
		t.Fatalf("expected 4 photos, got %d", len(photos))
	}
	if photos[0].URL != "https://img/full.jpg" || photos[0].Caption != "Front" {
		t.Fatalf("unexpected first photo: %+v", photos[0])
	}
	if photos[1].URL != "https://img/large2.jpg" {
		t.Fatalf("large_url should back-fill url, got %+v", photos[1])
	}
	if photos[2].URL != "https://img/med.jpg" {
		t.Fatalf("medium_url should back-fill url, got %+v", photos[2])
	}
	if photos[3].URL != "https://img/thumb.jpg" || photos[3].Caption != "Pool" {
		t.Fatalf("thumbnail/name fallback failed, got %+v", photos[3])
	}
}

func TestFallbackPhotosFromThumbnails(t *testing.T) {
	photos := FallbackPhotos(map[string]any{
		"thumbnail_url":        "https://img/t.jpg",
		"thumbnail_url_medium": "https://img/tm.jpg",
		"thumbnail_url_large":  "https://img/tl.jpg",
	})
	if len(photos) != 1 {
		t.Fatalf("expected a single synthesized photo, got %d", len(photos))
	}
	if photos[0].URL != "https://img/tl.jpg" {
		t.Fatalf("expected the large thumbnail as primary, got %q", photos[0].URL)
	}
	if photos[0].ThumbnailURL != "https://img/t.jpg" {
		t.Fatalf("unexpected thumbnail variant: %+v", photos[0])
	}
}

func TestFallbackPhotosNoThumbnailsIsEmpty(t *testing.T) {
	photos := FallbackPhotos(map[string]any{"name": "Unit 4"})
	if len(photos) != 0 {
		t.Fatalf("expected no photos, got %+v", photos)
	}
	if photos == nil {
		t.Fatal("expected an empty slice, not nil, so JSON renders []")
	}
}
