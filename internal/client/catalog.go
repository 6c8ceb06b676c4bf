package client

import (
	"context"
	"fmt"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// ListFilms fetches the full film catalogue.
func (c *Client) ListFilms(ctx context.Context) ([]model.Movie, error) {
	data, err := c.get(ctx, "", "/api/Film", nil)
	if err != nil {
		return nil, err
	}
	items, err := unwrapList(data)
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	out := make([]model.Movie, 0, len(items))
	for _, item := range items {
		m, err := decodeMovie(item)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// GetFilm fetches a single film by id.
func (c *Client) GetFilm(ctx context.Context, id uint64) (model.Movie, error) {
	data, err := c.get(ctx, "", fmt.Sprintf("/api/Film/%d", id), nil)
	if err != nil {
		return model.Movie{}, err
	}
	return decodeMovie(data)
}

// ListGenres fetches all genres.
func (c *Client) ListGenres(ctx context.Context) ([]model.Genre, error) {
	data, err := c.get(ctx, "", "/api/Genre", nil)
	if err != nil {
		return nil, err
	}
	items, err := unwrapList(data)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	out := make([]model.Genre, 0, len(items))
	for _, item := range items {
		g, err := decodeGenre(item)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// ProjectionsByFilm fetches the showtimes scheduled for a film.  Entries
// whose room linkage is missing are kept; the booking flow reports them as
// a configuration error only when the user actually picks one.
func (c *Client) ProjectionsByFilm(ctx context.Context, filmID uint64) ([]model.ShowTime, error) {
	data, err := c.get(ctx, "", fmt.Sprintf("/api/projection/by-film/%d", filmID), nil)
	if err != nil {
		return nil, err
	}
	items, err := unwrapList(data)
	if err != nil {
		return nil, fmt.Errorf("list projections: %w", err)
	}
	out := make([]model.ShowTime, 0, len(items))
	for _, item := range items {
		st, err := decodeShowTime(item)
		if err != nil {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}
