package routes

import (
	"t2gstays/handlers"
	"t2gstays/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddPropertyRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/properties", rl.Limit(handlers.GetProperties))
	router.GET("/api/property", rl.Limit(handlers.GetProperty))
}

func AddCalendarRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/availability", rl.Limit(handlers.GetAvailability))
	router.GET("/api/rates", rl.Limit(handlers.GetRates))
	router.GET("/api/calendar", rl.Limit(handlers.GetCalendar))
}

func AddReviewRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/reviews", rl.Limit(handlers.GetReviews))
}
