//go:build unit

package clock_test

import (
	"testing"
	"time"

	"room-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 20:30 UTC is already the next morning in Tokyo
	c := clock.NewMockClock(time.Date(2025, 1, 15, 20, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, tokyo), clock.Today(c, tokyo))
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), clock.Today(c, nil))

	c.Add(4 * time.Hour)
	assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), clock.Today(c, nil))
}
