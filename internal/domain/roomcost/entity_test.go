//go:build unit

package roomcost_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/roomcost"
	"room-booking/internal/pkg/ptr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomCost(t *testing.T) {
	jan1 := ptr.To(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	jan31 := ptr.To(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		roomID int64
		params roomcost.Params
		errIs  error
	}{
		{
			name:   "success",
			roomID: 1,
			params: roomcost.Params{GuestsCount: 4, TotalCost: decimal.RequireFromString("120.00"), StartDate: jan1, EndDate: jan31},
		},
		{
			name:   "success: free of charge",
			roomID: 1,
			params: roomcost.Params{GuestsCount: 1, TotalCost: decimal.Zero},
		},
		{
			name:   "error: no room",
			roomID: 0,
			params: roomcost.Params{GuestsCount: 4, TotalCost: decimal.NewFromInt(10)},
			errIs:  roomcost.ErrMissingRoom,
		},
		{
			name:   "error: guests count 0",
			roomID: 1,
			params: roomcost.Params{GuestsCount: 0, TotalCost: decimal.NewFromInt(10)},
			errIs:  roomcost.ErrInvalidGuestsCount,
		},
		{
			name:   "error: negative total",
			roomID: 1,
			params: roomcost.Params{GuestsCount: 4, TotalCost: decimal.RequireFromString("-0.01")},
			errIs:  roomcost.ErrNegativeTotalCost,
		},
		{
			name:   "error: end before start",
			roomID: 1,
			params: roomcost.Params{GuestsCount: 4, TotalCost: decimal.NewFromInt(10), StartDate: jan31, EndDate: jan1},
			errIs:  roomcost.ErrEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := roomcost.NewRoomCost(tt.roomID, tt.params)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.roomID, c.RoomID())
			assert.Equal(t, tt.params.GuestsCount, c.GuestsCount())
		})
	}
}

func TestRoomCostRoundsToCents(t *testing.T) {
	c, err := roomcost.NewRoomCost(1, roomcost.Params{GuestsCount: 2, TotalCost: decimal.RequireFromString("99.995")})
	require.NoError(t, err)
	assert.Equal(t, "100.00", c.TotalCost().StringFixed(roomcost.CostScale))
}
