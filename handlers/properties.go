package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// GetProperties proxies the vendor property list to the browser untouched.
// The API token stays server-side.
func GetProperties(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := fetchCached(r.Context(), "or:properties", ttlStable, func(ctx context.Context) (json.RawMessage, error) {
		return Client.Properties(ctx)
	})
	if err != nil {
		respondUpstreamError(w, "properties", err)
		return
	}
	writeRaw(w, cacheStable, body)
}
