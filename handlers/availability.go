package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"t2gstays/config"
	"t2gstays/utils"

	"github.com/julienschmidt/httprouter"
)

// GetAvailability proxies the vendor booking list, the source of blocked
// dates. The calendar must render even when the vendor hiccups, so any
// upstream or transport failure degrades to 200 with an empty item list;
// only a missing credential pair keeps its 500.
func GetAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required query param: propertyId")
		return
	}
	window := utils.ParseDateRange(r)

	body, err := fetchCached(r.Context(), "or:bookings:"+propertyID+":"+window.From, ttlVolatile, func(ctx context.Context) (json.RawMessage, error) {
		return Client.Bookings(ctx, propertyID, window.From)
	})
	if err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			utils.RespondWithError(w, http.StatusInternalServerError, config.ErrNotConfigured.Error())
			return
		}
		log.Printf("[api/availability] degrading to empty for %s: %v", propertyID, err)
		w.Header().Set("Cache-Control", cacheVolatile)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": []any{}})
		return
	}
	writeRaw(w, cacheVolatile, body)
}
