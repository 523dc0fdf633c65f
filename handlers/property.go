package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"t2gstays/config"
	"t2gstays/listing"
	"t2gstays/ownerrez"
	"t2gstays/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"
)

// GetProperty merges the property record with its marketing listing (full
// gallery, plain-text description, amenity groups) and a review summary.
// The three vendor calls run in parallel; only the property call is critical.
// A failed listing call degrades to a synthesized single-thumbnail gallery,
// a failed reviews call just drops the summary.
func GetProperty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := r.URL.Query().Get("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required query param: id")
		return
	}

	cacheKey := "or:property:" + id
	if body, ok := Cache.Get(r.Context(), cacheKey); ok {
		writeRaw(w, cacheStable, body)
		return
	}

	var propRaw, listingRaw, reviewsRaw json.RawMessage
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		propRaw, err = Client.Property(ctx, id)
		return err
	})
	g.Go(func() error {
		raw, err := Client.Listing(ctx, id)
		if err != nil {
			log.Printf("[api/property] listing %s unavailable, falling back to thumbnail: %v", id, err)
			return nil
		}
		listingRaw = raw
		return nil
	})
	g.Go(func() error {
		raw, err := Client.Reviews(ctx, id)
		if err != nil {
			log.Printf("[api/property] reviews %s unavailable: %v", id, err)
			return nil
		}
		reviewsRaw = raw
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("[api/property] upstream error for %s: %v", id, err)
		if errors.Is(err, config.ErrNotConfigured) {
			utils.RespondWithError(w, http.StatusInternalServerError, config.ErrNotConfigured.Error())
			return
		}
		var ue *ownerrez.UpstreamError
		if errors.As(err, &ue) {
			utils.RespondWithError(w, ue.Status, "Property "+id+" not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch property from OwnerRez")
		return
	}

	var property map[string]any
	if err := json.Unmarshal(propRaw, &property); err != nil {
		log.Printf("[api/property] property %s decode failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch property from OwnerRez")
		return
	}

	merged := listing.Merge(property, listingRaw, reviewsRaw)

	body, err := json.Marshal(merged)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode property")
		return
	}
	Cache.Set(r.Context(), cacheKey, body, ttlStable)
	writeRaw(w, cacheStable, body)
}
