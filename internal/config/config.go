package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The backend base URL points at the remote
// cinema API that owns all durable state; this service only orchestrates
// requests against it and keeps transient booking sessions in memory.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	BackendBaseURL string // base URL of the remote cinema backend
	SessionSecret  string // secret used to sign session JWTs
	SessionTTLMin  int    // session token time-to-live in minutes
	BookingTTLMin  int    // idle booking session lifetime in minutes
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),            // environment (dev/test/prod)
		Port:           must("APP_PORT"),           // port to bind the HTTP server
		BackendBaseURL: must("BACKEND_BASE_URL"),   // remote cinema API base URL
		SessionSecret:  must("SESSION_SECRET"),     // secret for signing session JWTs
		SessionTTLMin:  mustInt("SESSION_TTL_MIN"), // TTL for session tokens in minutes
		BookingTTLMin:  mustInt("BOOKING_TTL_MIN"), // idle TTL for booking sessions in minutes
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
