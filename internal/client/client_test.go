package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "film not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetFilm(context.Background(), 999)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "film not found", apiErr.Message)
}

func TestClient_SeatsByRoom_QueryAndPaging(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/seat/paged", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"items": [
			{"Id": 1, "Row": "A", "SeatNumber": 1, "IsVip": false},
			{"Id": 2, "Row": "A", "SeatNumber": 2, "IsVip": true, "Tickets": [{"ProjectionId": 9}]}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	records, err := c.SeatsByRoom(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "5", gotQuery.Get("roomId"))
	assert.Equal(t, "1", gotQuery.Get("pageNumber"))
	assert.Equal(t, "100", gotQuery.Get("pageSize"))

	require.Len(t, records, 2)
	assert.True(t, records[1].IsVip)
	assert.True(t, records[1].BookedForProjection(9))
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Authentication/login-jwt", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["Email"] == "ok@example.com" {
			_, _ = w.Write([]byte(`{"token": "backend-token", "isSuccess": true}`))
			return
		}
		_, _ = w.Write([]byte(`{"isSuccess": false, "message": "wrong password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	token, err := c.Login(context.Background(), "ok@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)

	_, err = c.Login(context.Background(), "bad@example.com", "pw")
	assert.ErrorIs(t, err, ErrLoginFailed, "a 200 with isSuccess=false still fails the login")
}

func TestClient_BearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id": 1, "fullname": "Ana", "email": "a@b.c", "role": 2}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.Profile(context.Background(), "backend-token")
	require.NoError(t, err)
	assert.Equal(t, "STAFF", u.RoleName())
}

func TestClient_ForwardRelaysStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Dune", got["title"])
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "duration required"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	status, body, err := c.Forward(context.Background(), http.MethodPut, "tok", "/api/Film/1", nil, json.RawMessage(`{"title": "Dune"}`))
	require.NoError(t, err, "non-2xx statuses are data, not errors, when forwarding")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.JSONEq(t, `{"message": "duration required"}`, string(body))
}

func TestClient_CreateTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Ticket/CreateTicket", r.URL.Path)
		var req TicketRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.SeatAmount)
		assert.Equal(t, []string{"s1", "s5"}, req.SeatIDs)
		_, _ = w.Write([]byte(`{"id": 77}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	id, err := c.CreateTicket(context.Background(), "tok", TicketRequest{
		SeatAmount:   2,
		SeatIDs:      []string{"s1", "s5"},
		ProjectionID: 42,
		RoomID:       5,
		TotalPrice:   220000,
		AppTransID:   "123_abc",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(77), id)
}
