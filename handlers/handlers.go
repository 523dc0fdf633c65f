// Package handlers holds the browser-facing proxy endpoints. Every handler
// runs one stateless request/response cycle: validate params, consult the
// response cache, call OwnerRez, reshape, respond with an edge-cache hint.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"t2gstays/config"
	"t2gstays/ownerrez"
	"t2gstays/rdx"
	"t2gstays/utils"
)

var (
	// Client and Cache are wired in main; tests swap them for fakes.
	Client *ownerrez.Client
	Cache  = rdx.Disabled()
)

const (
	// Stable resources (property metadata, rates, reviews) cache for minutes,
	// availability-derived data for under a minute — it changes whenever a
	// booking lands.
	cacheStable   = "s-maxage=300, stale-while-revalidate=60"
	cacheVolatile = "s-maxage=60, stale-while-revalidate=30"

	ttlStable   = 5 * time.Minute
	ttlVolatile = time.Minute
)

// fetchCached wraps a vendor call with the optional response cache. Errors
// are never cached; a failed fetch always reaches the handler's error policy.
func fetchCached(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	if body, ok := Cache.Get(ctx, key); ok {
		return body, nil
	}
	body, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	Cache.Set(ctx, key, body, ttl)
	return body, nil
}

// respondUpstreamError maps a vendor-call failure for a critical resource:
// missing credentials are a per-request 500, a vendor non-2xx propagates its
// status, and transport or parse failures become a generic 500. The upstream
// detail stays in the server log.
func respondUpstreamError(w http.ResponseWriter, resource string, err error) {
	log.Printf("[api/%s] upstream error: %v", resource, err)

	if errors.Is(err, config.ErrNotConfigured) {
		utils.RespondWithError(w, http.StatusInternalServerError, config.ErrNotConfigured.Error())
		return
	}
	var ue *ownerrez.UpstreamError
	if errors.As(err, &ue) {
		utils.RespondWithError(w, ue.Status, ue.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+resource+" from OwnerRez")
}

// writeRaw sends a pass-through vendor body with the given edge-cache hint.
func writeRaw(w http.ResponseWriter, cacheControl string, body json.RawMessage) {
	w.Header().Set("Cache-Control", cacheControl)
	utils.RespondWithRawJSON(w, http.StatusOK, body)
}
