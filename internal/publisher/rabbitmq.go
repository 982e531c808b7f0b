// Package publisher emits listing and submission events to RabbitMQ so
// downstream consumers (notification, analytics) see every upsert and every
// automated application outcome.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"jobpilot/internal/domain"
)

type Config struct {
	URL                  string
	Exchange             string
	ListingRoutingKey    string
	ListingQueue         string
	SubmissionRoutingKey string
	SubmissionQueue      string
}

type RabbitMQ struct {
	conn                 *amqp.Connection
	channel              *amqp.Channel
	exchange             string
	listingRoutingKey    string
	submissionRoutingKey string
	logger               *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	bindings := []struct {
		queue      string
		routingKey string
	}{
		{cfg.ListingQueue, cfg.ListingRoutingKey},
		{cfg.SubmissionQueue, cfg.SubmissionRoutingKey},
	}
	for _, b := range bindings {
		q, err := ch.QueueDeclare(b.queue, true, false, false, false, nil)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", b.queue, err)
		}
		if err := ch.QueueBind(q.Name, b.routingKey, cfg.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("bind queue %s: %w", b.queue, err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"listing_queue", cfg.ListingQueue,
		"submission_queue", cfg.SubmissionQueue,
	)

	return &RabbitMQ{
		conn:                 conn,
		channel:              ch,
		exchange:             cfg.Exchange,
		listingRoutingKey:    cfg.ListingRoutingKey,
		submissionRoutingKey: cfg.SubmissionRoutingKey,
		logger:               logger,
	}, nil
}

// ListingMessage wraps one upserted listing.
type ListingMessage struct {
	Action    string         `json:"action"` // "create" or "update"
	Listing   domain.Listing `json:"listing"`
	Timestamp time.Time      `json:"timestamp"`
}

// SubmissionMessage wraps one automated application outcome.
type SubmissionMessage struct {
	UserID    int64                    `json:"user_id"`
	JobID     int64                    `json:"job_id"`
	Status    domain.ApplicationStatus `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
}

func (r *RabbitMQ) PublishListing(ctx context.Context, listing *domain.Listing, isNew bool) error {
	action := "update"
	if isNew {
		action = "create"
	}

	msg := ListingMessage{
		Action:    action,
		Listing:   *listing,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, r.listingRoutingKey, msg); err != nil {
		return err
	}

	r.logger.Debug("published listing event",
		"listing_id", listing.ID,
		"action", action,
	)
	return nil
}

func (r *RabbitMQ) PublishSubmission(ctx context.Context, app *domain.Application) error {
	msg := SubmissionMessage{
		UserID:    app.UserID,
		JobID:     app.JobID,
		Status:    app.Status,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, r.submissionRoutingKey, msg); err != nil {
		return err
	}

	r.logger.Debug("published submission event",
		"user_id", app.UserID,
		"job_id", app.JobID,
		"status", app.Status,
	)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
