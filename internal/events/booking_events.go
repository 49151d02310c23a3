// Package events publishes booking domain events to RabbitMQ for downstream
// consumers. Publishing never blocks or fails a booking.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const TypeBookingCreated = "booking.created"

// BookingCreated carries enough for a consumer to act without reading the
// bookings table. Contact details stay out of the payload.
type BookingCreated struct {
	Reference   string    `json:"reference"`
	ServiceSlug string    `json:"service_slug"`
	Date        string    `json:"date"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	TotalPrice  float64   `json:"total_price"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}

type Publisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated) error
	Close() error
}

type nopPublisher struct{}

// NewNopPublisher is used when no broker is configured.
func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) PublishBookingCreated(context.Context, BookingCreated) error { return nil }
func (nopPublisher) Close() error                                               { return nil }

type rabbitPublisher struct {
	conn  *amqp.Connection
	mu    sync.Mutex
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

// NewRabbitPublisher dials the broker once and declares a durable queue.
func NewRabbitPublisher(url, queue string, log *zap.Logger) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare %s: %w", queue, err)
	}

	return &rabbitPublisher{
		conn:  conn,
		ch:    ch,
		queue: queue,
		log:   log.With(zap.String("publisher", "rabbitmq")),
	}, nil
}

func (p *rabbitPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			zap.Error(err),
			zap.String("reference", event.Reference),
		)
		return fmt.Errorf("publish %s: %w", TypeBookingCreated, err)
	}

	return nil
}

func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	chErr := p.ch.Close()
	if err := p.conn.Close(); err != nil {
		return err
	}
	return chErr
}

func newPublishing(event BookingCreated) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s: %w", TypeBookingCreated, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Reference,
		Type:         TypeBookingCreated,
		Timestamp:    event.CreatedAt.UTC(),
		Body:         body,
	}, nil
}
