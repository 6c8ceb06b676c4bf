package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/khoadang148/galaxy-cinema-client/internal/config"
	"github.com/khoadang148/galaxy-cinema-client/internal/handler"    // import the handlers that implement business logic
	"github.com/khoadang148/galaxy-cinema-client/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, sessionSecret string) {
	// Create a route group under the /v1/auth prefix for operations that do
	// not require an existing session.  Login exchanges backend credentials
	// for a local session token; the staff variant additionally enforces
	// the STAFF role before issuing one.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/staff-login", a.StaffLogin)
	// Logout only clears the local session cookie; the backend does not
	// expose token revocation.
	g.POST("/logout", a.Logout)

	// Create another group for routes that require a valid session token.
	// All handlers registered on this group will execute the SessionAuth
	// middleware before being invoked.
	auth := e.Group("/v1")
	auth.Use(middleware.SessionAuth(sessionSecret))
	auth.Use(middleware.RequireRole("STAFF", "CUSTOMER"))
	// Register a GET endpoint at /v1/me that returns the authenticated user's information.
	auth.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints on the provided
// Echo instance.  The provided PublicHandler returns sanitized catalogue
// data for movies, genres and showtimes.  When a Redis client is available
// the responses are served through the shared response cache, since the
// catalogue changes far less often than it is read.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	mws := []echo.MiddlewareFunc{}
	if rdb != nil {
		mws = append(mws, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	g := e.Group("/v1", mws...)
	// Expose the movie catalogue; ?playing=now|upcoming filters by release date.
	g.GET("/movies", p.GetMovies)
	// Movie details by id
	g.GET("/movies/:id", p.GetMovie)
	// List showtimes of a specific movie
	g.GET("/movies/:id/showtimes", p.GetMovieShowTimes)
	// Expose the genre list used by catalogue filters
	g.GET("/genres", p.GetGenres)
}
