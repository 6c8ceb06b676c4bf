// This file defines handlers for the public browsing API: films, genres
// and showtimes fetched from the remote backend.  These routes require no
// authentication and sit behind the Redis response cache, since catalogue
// data changes rarely compared to how often it is viewed.

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/client"
	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// PublicHandler serves unauthenticated catalogue endpoints.
type PublicHandler struct {
	API *client.Client // backend REST client
}

// NewPublicHandler constructs a PublicHandler.  The client must be non-nil.
func NewPublicHandler(api *client.Client) *PublicHandler {
	if api == nil {
		panic("nil client passed to NewPublicHandler")
	}
	return &PublicHandler{API: api}
}

// GetMovies handles GET /v1/movies.  The optional ?playing=now|upcoming
// query splits the catalogue by release date the way the home page does.
func (h *PublicHandler) GetMovies(c echo.Context) error {
	movies, err := h.API.ListFilms(c.Request().Context())
	if err != nil {
		return backendFail(c, err, "")
	}
	switch c.QueryParam("playing") {
	case "now":
		movies = filterByRelease(movies, true)
	case "upcoming":
		movies = filterByRelease(movies, false)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": movies})
}

// filterByRelease splits movies into released and not-yet-released sets
// relative to today.  Movies with unparseable release dates count as
// released, so they never vanish from both lists.
func filterByRelease(movies []model.Movie, released bool) []model.Movie {
	now := time.Now()
	out := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		isOut := true
		if t, err := time.Parse("2006-01-02", firstDatePart(m.ReleaseDate)); err == nil {
			isOut = !t.After(now)
		}
		if isOut == released {
			out = append(out, m)
		}
	}
	return out
}

// firstDatePart trims an ISO timestamp down to its date component.
func firstDatePart(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// GetMovie handles GET /v1/movies/:id and returns one film's details.
func (h *PublicHandler) GetMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	movie, err := h.API.GetFilm(c.Request().Context(), id)
	if err != nil {
		return backendFail(c, err, "")
	}
	return c.JSON(http.StatusOK, movie)
}

// GetMovieShowTimes handles GET /v1/movies/:id/showtimes and lists the
// projections scheduled for a film.
func (h *PublicHandler) GetMovieShowTimes(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	showtimes, err := h.API.ProjectionsByFilm(c.Request().Context(), id)
	if err != nil {
		return backendFail(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": showtimes})
}

// GetGenres handles GET /v1/genres.
func (h *PublicHandler) GetGenres(c echo.Context) error {
	genres, err := h.API.ListGenres(c.Request().Context())
	if err != nil {
		return backendFail(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": genres})
}
