//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		errIs  error
	}{
		{name: "success", mutate: func(b *builder.BookingBuilder) {}},
		{name: "success: same day", mutate: func(b *builder.BookingBuilder) { b.OnDate(b.BookingDate, 1) }},
		{name: "error: past show date", mutate: func(b *builder.BookingBuilder) { b.OnDate(b.BookingDate.AddDate(0, 0, -1), 1) }, errIs: booking.ErrShowDateInPast},
		{name: "error: no room", mutate: func(b *builder.BookingBuilder) { b.RoomID = 0 }, errIs: booking.ErrMissingRoom},
		{name: "error: no customer", mutate: func(b *builder.BookingBuilder) { b.CustomerID = 0 }, errIs: booking.ErrMissingCustomer},
		{name: "error: no guests", mutate: func(b *builder.BookingBuilder) { b.WithGuests(0) }, errIs: booking.ErrInvalidGuestCount},
		{name: "error: no show date", mutate: func(b *builder.BookingBuilder) { b.ShowDate = time.Time{} }, errIs: booking.ErrMissingShowDate},
		{name: "error: timeslot 0", mutate: func(b *builder.BookingBuilder) { b.ShowTimeslot = 0 }, errIs: booking.ErrInvalidTimeslot},
		{name: "error: order id too long", mutate: func(b *builder.BookingBuilder) { b.OrderID = strings.Repeat("x", 65) }, errIs: booking.ErrInvalidOrderID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := builder.NewBookingBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), b.BookingDate())
		})
	}
}

func TestOrderIDIssuedByServer(t *testing.T) {
	first, err := builder.NewBookingBuilder().WithoutOrderID().BuildDomain()
	require.NoError(t, err)
	second, err := builder.NewBookingBuilder().WithoutOrderID().BuildDomain()
	require.NoError(t, err)

	_, perr := uuid.Parse(first.OrderID().String())
	require.NoError(t, perr, "issued order id is a uuid")
	assert.NotEqual(t, first.OrderID(), second.OrderID())
}

func TestBookingUpdate(t *testing.T) {
	t.Run("empty order id keeps the stored one", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()

		p := builder.NewBookingBuilder().WithoutOrderID().WithGuests(6).Params()
		require.NoError(t, b.Update(p))

		assert.Equal(t, "order-0001", b.OrderID().String())
		assert.Equal(t, 6, b.GuestCount())
	})

	t.Run("booking date never changes", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()

		p := builder.NewBookingBuilder().OnDate(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), 2).Params()
		require.NoError(t, b.Update(p))

		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), b.BookingDate())
		assert.Equal(t, 2, b.ShowTimeslot())
	})

	t.Run("failed update leaves the entity unchanged", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()

		require.ErrorIs(t, b.Update(builder.NewBookingBuilder().WithGuests(-1).Params()), booking.ErrInvalidGuestCount)
		assert.Equal(t, 4, b.GuestCount())
	})
}
