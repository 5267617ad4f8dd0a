package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

var (
	ErrBufferFull = errs.New("booking event buffer is full")
	ErrClosed     = errs.New("booking event publisher is closed")
)

// Publisher queues booking events and sends them to a durable queue from a single
// worker, so a slow or unreachable broker never holds up the booking request.
// The connection is opened lazily and reopened after the broker closes it.
type Publisher struct {
	url         string
	queue       string
	dialTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	events chan commands.BookingConfirmedEvent
	done   chan struct{}

	// owned by the worker
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher starts the worker; Close stops it.
func NewPublisher(cfg config.AMQPConfig) *Publisher {
	p := &Publisher{
		url:         cfg.URL,
		queue:       cfg.Queue,
		dialTimeout: cfg.DialTimeout,
		events:      make(chan commands.BookingConfirmedEvent, max(cfg.BufferSize, 1)),
		done:        make(chan struct{}),
	}
	go p.run()
	return p
}

// PublishBookingConfirmed enqueues the event without waiting for the broker.
func (p *Publisher) PublishBookingConfirmed(_ context.Context, event commands.BookingConfirmedEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	select {
	case p.events <- event:
		return nil
	default:
		return errs.Wrapf(ErrBufferFull, "dropping booking event %s", event.OrderID)
	}
}

// Close stops accepting events and waits for the queued ones until ctx is done.
func (p *Publisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.events)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "booking events left unsent")
	}
}

func (p *Publisher) run() {
	defer close(p.done)
	defer p.reset()

	for event := range p.events {
		if err := p.send(event); err != nil {
			slog.Warn("予約確定イベントの送信に失敗しました", "order_id", event.OrderID, "error", err.Error())
		}
	}
}

func (p *Publisher) send(event commands.BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			MessageId:    event.OrderID,
			Body:         body,
		},
	)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	// DefaultDial bounds both the TCP connect and the AMQP handshake.
	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(p.dialTimeout)})
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare queue %s", p.queue)
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !p.conn.IsClosed() {
			slog.Warn("failed to close broker connection", "error", err.Error())
		}
		p.conn = nil
	}
}

// Noop drops events when AMQP_URL is unset.
type Noop struct{}

func (Noop) PublishBookingConfirmed(context.Context, commands.BookingConfirmedEvent) error {
	return nil
}
