package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

func TestFilterByRelease(t *testing.T) {
	past := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	movies := []model.Movie{
		{ID: 1, Title: "Out Now", ReleaseDate: past},
		{ID: 2, Title: "Coming Soon", ReleaseDate: future},
		{ID: 3, Title: "With Timestamp", ReleaseDate: past + "T00:00:00"},
		{ID: 4, Title: "No Date"},
	}

	now := filterByRelease(movies, true)
	upcoming := filterByRelease(movies, false)

	assert.Len(t, now, 3, "unparseable dates count as released")
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "Coming Soon", upcoming[0].Title)
}

func TestFirstDatePart(t *testing.T) {
	assert.Equal(t, "2025-03-01", firstDatePart("2025-03-01T19:30:00"))
	assert.Equal(t, "2025-03-01", firstDatePart("2025-03-01"))
	assert.Equal(t, "", firstDatePart(""))
}
