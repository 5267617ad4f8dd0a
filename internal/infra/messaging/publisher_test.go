//go:build unit

package messaging_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"room-booking/internal/infra/messaging"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentBroker accepts TCP connections and never speaks AMQP.
func silentBroker(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func event(orderID string) commands.BookingConfirmedEvent {
	return commands.BookingConfirmedEvent{BookingID: 1, OrderID: orderID, RoomID: 1, ShowDate: "2025-01-20", ShowTimeslot: 1}
}

func TestPublisherWithUnresponsiveBroker(t *testing.T) {
	cfg := config.AMQPConfig{
		URL:         silentBroker(t),
		Queue:       "booking.confirmed",
		DialTimeout: 200 * time.Millisecond,
		BufferSize:  1,
	}

	t.Run("success: publish returns without waiting for the broker", func(t *testing.T) {
		p := messaging.NewPublisher(cfg)

		start := time.Now()
		err := p.PublishBookingConfirmed(context.Background(), event("order-1"))

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		closeStart := time.Now()
		require.NoError(t, p.Close(ctx))
		assert.Less(t, time.Since(closeStart), 2*time.Second, "dial must give up after the dial timeout")
	})

	t.Run("error: events beyond the buffer are dropped", func(t *testing.T) {
		p := messaging.NewPublisher(cfg)
		defer func() { _ = p.Close(context.Background()) }()

		var full int
		for _, id := range []string{"order-1", "order-2", "order-3"} {
			if err := p.PublishBookingConfirmed(context.Background(), event(id)); err != nil {
				assert.True(t, errs.Is(err, messaging.ErrBufferFull))
				full++
			}
		}
		assert.GreaterOrEqual(t, full, 1)
	})

	t.Run("error: publish after close is rejected", func(t *testing.T) {
		p := messaging.NewPublisher(cfg)
		require.NoError(t, p.Close(context.Background()))

		err := p.PublishBookingConfirmed(context.Background(), event("order-1"))
		assert.True(t, errs.Is(err, messaging.ErrClosed))
	})
}
