package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"t2gstays/config"
	"t2gstays/handlers"
	"t2gstays/middleware"
	"t2gstays/ownerrez"
	"t2gstays/ratelim"
	"t2gstays/rdx"
	"t2gstays/routes"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

type args struct {
	Addr    string `arg:"--addr" help:"listen address, overrides PORT"`
	EnvFile string `arg:"--env-file" default:".env" help:"env file to load"`
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddPropertyRoutes(router, rateLimiter)
	routes.AddCalendarRoutes(router, rateLimiter)
	routes.AddReviewRoutes(router, rateLimiter)

	return router
}

func main() {
	var a args
	arg.MustParse(&a)

	// load .env if present
	if err := godotenv.Load(a.EnvFile); err != nil {
		log.Println("No .env file found; using system environment")
	}

	addr := a.Addr
	if addr == "" {
		addr = config.Addr()
	}

	// wire handler dependencies; credentials are read per request, so a
	// missing token only fails the requests that need it
	handlers.Client = ownerrez.New(config.BaseURL())
	handlers.Cache = rdx.Connect(config.RedisURL())

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(rateLimiter)

	// apply middleware: CORS → security headers → logging → router.
	// The browser surface is read-only; preflight OPTIONS is answered here.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	handler := middleware.Logging(middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		handlers.Cache.Close()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
