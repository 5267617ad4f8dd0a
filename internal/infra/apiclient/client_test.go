//go:build unit

package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/config"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	reqID  string
	body   []byte
}

func newServer(t *testing.T, status int, body string) (*apiclient.Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		rec.reqID = r.Header.Get("X-Request-ID")
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	// a trailing slash on the base url is tolerated
	client := apiclient.NewClient(config.APIClientConfig{BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
	return client, rec
}

func TestAvailabilityEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("success: available dates", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, `["2025-01-20","2025-01-22"]`)

		dates, err := client.AvailableDates(ctx, 3, "2025-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-20", "2025-01-22"}, dates)
		assert.Equal(t, "/api/rooms/3/availability", rec.path)
		assert.Equal(t, "month=2025-01", rec.query)
		assert.Empty(t, rec.auth)
	})

	t.Run("success: no month sends no query", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, `[]`)

		_, err := client.AvailableDates(ctx, 3, "")
		require.NoError(t, err)
		assert.Empty(t, rec.query)
	})

	t.Run("success: timeslots", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK,
			`[{"id":1,"timeslot":1,"roomName":"Theater A","startTime":"10:00","endTime":"11:00","isBooked":true}]`)

		slots, err := client.Timeslots(ctx, 3, "2025-01-20")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.True(t, slots[0].IsBooked)
		assert.Equal(t, "Theater A", slots[0].RoomName)
		assert.Equal(t, "date=2025-01-20", rec.query)
	})
}

func TestBearerToken(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, `[]`)

	ctx := apiclient.WithToken(context.Background(), "abc.def.ghi")
	_, err := client.ListBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc.def.ghi", rec.auth)

	// an empty token leaves the context untouched
	_, err = client.ListBookings(apiclient.WithToken(context.Background(), ""))
	require.NoError(t, err)
	assert.Empty(t, rec.auth)
}

func TestRequestIDForwarded(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, `[]`)

	ctx := apiclient.WithRequestID(context.Background(), "5f0c9a8e-3c1b-4f6a-9d59-2d3f0a1b7c11")
	_, err := client.ListBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5f0c9a8e-3c1b-4f6a-9d59-2d3f0a1b7c11", rec.reqID)

	_, err = client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.reqID)
}

func TestCreateBookingSendsJSON(t *testing.T) {
	client, rec := newServer(t, http.StatusCreated, `{"message":"Booking created successfully!","id":10,"order_id":"generated"}`)

	req := builder.NewBookingBuilder().WithoutOrderID().BuildDTO()
	res, err := client.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.ID)
	assert.Equal(t, "generated", res.OrderID)

	assert.Equal(t, http.MethodPost, rec.method)
	var sent reqdto.BookingRequest
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, req, sent)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &raw))
	assert.NotContains(t, raw, "order_id")
}

func TestErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "error field", status: http.StatusConflict, body: `{"error":"Timeslot already booked"}`, message: "Timeslot already booked"},
		{name: "message field", status: http.StatusUnauthorized, body: `{"message":"Invalid credentials"}`, message: "Invalid credentials"},
		{name: "non-JSON body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, message: "Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newServer(t, tt.status, tt.body)

			err := client.DeleteRoom(ctx, 1)
			require.Error(t, err)

			var apiErr *apiclient.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiclient.Message(err))
			assert.True(t, apiclient.IsStatus(err, tt.status))
		})
	}

	t.Run("error: recognises 404 and 401", func(t *testing.T) {
		client, _ := newServer(t, http.StatusNotFound, `{"error":"Customer not found"}`)
		_, err := client.FindCustomerByEmail(ctx, "nobody@example.com")
		assert.True(t, apiclient.IsNotFound(err))
		assert.False(t, apiclient.IsUnauthorized(err))
	})

	t.Run("error: TransportError when the api is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		client := apiclient.NewClient(config.APIClientConfig{BaseURL: base, Timeout: time.Second})
		_, err := client.ListRooms(ctx)

		var tErr *apiclient.TransportError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, "GET /api/rooms", tErr.Op)
		assert.Equal(t, "Could not reach the booking service. Please try again.", apiclient.Message(err))
	})

	t.Run("error: TransportError for a broken body", func(t *testing.T) {
		client, _ := newServer(t, http.StatusOK, `{"id":`)
		_, err := client.GetRoom(ctx, 1)

		var tErr *apiclient.TransportError
		assert.ErrorAs(t, err, &tErr)
	})
}
