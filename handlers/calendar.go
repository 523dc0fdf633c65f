package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"t2gstays/calendar"
	"t2gstays/config"
	"t2gstays/models"
	"t2gstays/utils"

	"github.com/julienschmidt/httprouter"
)

// GetCalendar serves the expanded per-day view the availability calendar
// renders from: the blocked-date set from booking intervals and the
// first-wins rate map with weekend overrides. Bookings and rates are fetched
// in parallel and each degrades to an empty result on its own, so a rates
// outage never blanks the blocked dates and vice versa.
func GetCalendar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required query param: propertyId")
		return
	}
	window := utils.ParseDateRange(r)
	ctx := r.Context()

	var (
		wg         sync.WaitGroup
		bookings   []models.Booking
		rates      []models.RateInterval
		bErr, rErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		raw, err := fetchCached(ctx, "or:bookings:"+propertyID+":"+window.From, ttlVolatile, func(ctx context.Context) (json.RawMessage, error) {
			return Client.Bookings(ctx, propertyID, window.From)
		})
		if err != nil {
			bErr = err
			return
		}
		var list models.Envelope[models.Booking]
		if err := json.Unmarshal(raw, &list); err != nil {
			bErr = err
			return
		}
		bookings = list.Items
	}()
	go func() {
		defer wg.Done()
		raw, err := fetchCached(ctx, "or:rates:"+propertyID+":"+window.From+":"+window.To, ttlStable, func(ctx context.Context) (json.RawMessage, error) {
			return Client.Rates(ctx, propertyID, window.From, window.To)
		})
		if err != nil {
			rErr = err
			return
		}
		var list models.Envelope[models.RateInterval]
		if err := json.Unmarshal(raw, &list); err != nil {
			rErr = err
			return
		}
		rates = list.Items
	}()
	wg.Wait()

	if errors.Is(bErr, config.ErrNotConfigured) || errors.Is(rErr, config.ErrNotConfigured) {
		utils.RespondWithError(w, http.StatusInternalServerError, config.ErrNotConfigured.Error())
		return
	}
	if bErr != nil {
		log.Printf("[api/calendar] bookings degraded to empty for %s: %v", propertyID, bErr)
	}
	if rErr != nil {
		log.Printf("[api/calendar] rates degraded to empty for %s: %v", propertyID, rErr)
	}

	resp := models.CalendarResponse{
		Blocked: calendar.BlockedDates(bookings).Days(),
		Rates:   calendar.RateMap(rates),
	}
	w.Header().Set("Cache-Control", cacheVolatile)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
