package main // Entry point package

import (
	"log"  // Logging library
	"time" // Durations for the session store

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/khoadang148/galaxy-cinema-client/internal/booking" // In-memory booking sessions
	"github.com/khoadang148/galaxy-cinema-client/internal/client"  // Remote cinema backend client
	"github.com/khoadang148/galaxy-cinema-client/internal/config"  // Internal config loader
	"github.com/khoadang148/galaxy-cinema-client/internal/handler" // HTTP handlers
	"github.com/khoadang148/galaxy-cinema-client/internal/queue"   // Booking event consumer
	"github.com/khoadang148/galaxy-cinema-client/internal/router"  // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win
	cfg := config.Load() // Load environment config

	api := client.New(cfg.BackendBaseURL) // REST client for the cinema backend

	// Booking sessions live in memory with an idle TTL; the sweeper evicts
	// abandoned ones in the background.
	store := booking.NewStore(time.Duration(cfg.BookingTTLMin) * time.Minute)
	store.StartSweeper(time.Minute, nil)

	rdb := config.NewRedisClient() // nil when Redis is unreachable; caching and rate limiting degrade to pass-through

	auth := handler.NewAuthHandler(api, cfg.SessionSecret, cfg.SessionTTLMin)
	pub := handler.NewPublicHandler(api)
	book := handler.NewBookingHandler(api)
	checkout := handler.NewCheckoutHandler(api)
	staff := handler.NewStaffHandler(api)

	e := echo.New() // Create Echo instance

	router.RegisterRoutes(e)                                                        // Health check
	router.RegisterPublic(e, pub, rdb)                                              // Catalogue browsing (cached)
	router.RegisterAuth(e, auth, cfg.SessionSecret)                                 // Login, register, me
	router.RegisterCustomer(e, book, checkout, store, cfg.SessionSecret, rdb)       // Seat selection and checkout
	router.RegisterStaff(e, staff, cfg.SessionSecret)                               // Back office proxies

	// Consume booking.paid events and append them to logs/booking.log.  The
	// consumer maintains its own reconnect loop.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
