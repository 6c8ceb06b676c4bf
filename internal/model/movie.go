package model

// Movie represents a film in the remote catalogue.  Movies are read-only
// from the client's point of view for customers; staff members may create,
// update and delete them through the back-office endpoints.
//
// Fields:
//  ID          – backend identifier of the film.
//  Title       – display title.
//  Description – synopsis shown on the detail page.
//  ImageURL    – poster image location.
//  ReleaseDate – release date string as returned by the backend.
//  Duration    – running time in minutes.
//  Genres      – genres the film belongs to.
type Movie struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageURL,omitempty"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	Duration    uint32  `json:"duration,omitempty"`
	Genres      []Genre `json:"genres,omitempty"`
}

// Genre is a film category managed by staff in the back-office.
//
// Fields:
//  ID          – backend identifier.
//  Name        – unique genre name.
//  Description – optional free-text description.
type Genre struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
