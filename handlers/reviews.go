package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"t2gstays/utils"

	"github.com/julienschmidt/httprouter"
)

// GetReviews proxies guest reviews for a property. Reviews are a critical
// page resource, so upstream errors propagate instead of degrading.
func GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required query param: propertyId")
		return
	}

	body, err := fetchCached(r.Context(), "or:reviews:"+propertyID, ttlStable, func(ctx context.Context) (json.RawMessage, error) {
		return Client.Reviews(ctx, propertyID)
	})
	if err != nil {
		respondUpstreamError(w, "reviews", err)
		return
	}
	writeRaw(w, cacheStable, body)
}
