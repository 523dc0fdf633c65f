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

// GetRates proxies the vendor rate periods used for per-day price display.
// Prices are display sugar on the calendar, so failures degrade to 200 with
// an empty item list the same way availability does.
func GetRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required query param: propertyId")
		return
	}
	window := utils.ParseDateRange(r)

	body, err := fetchCached(r.Context(), "or:rates:"+propertyID+":"+window.From+":"+window.To, ttlStable, func(ctx context.Context) (json.RawMessage, error) {
		return Client.Rates(ctx, propertyID, window.From, window.To)
	})
	if err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			utils.RespondWithError(w, http.StatusInternalServerError, config.ErrNotConfigured.Error())
			return
		}
		log.Printf("[api/rates] degrading to empty for %s: %v", propertyID, err)
		w.Header().Set("Cache-Control", cacheStable)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": []any{}})
		return
	}
	writeRaw(w, cacheStable, body)
}
