//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"jobpilot/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(prefix string) Config {
	return Config{
		URL:                  s.amqpURL,
		Exchange:             prefix + "-exchange",
		ListingRoutingKey:    prefix + "-listing-key",
		ListingQueue:         prefix + "-listing-queue",
		SubmissionRoutingKey: prefix + "-submission-key",
		SubmissionQueue:      prefix + "-submission-queue",
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishListingCreate() {
	cfg := s.config("create")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	listing := &domain.Listing{
		ID:        1,
		Title:     "Backend Engineer",
		Company:   "Acme",
		Location:  "Remote",
		Link:      "https://jobs.example.com/1",
		SourceID:  42,
		IsRemote:  true,
		ScrapedAt: time.Now().Truncate(time.Millisecond),
		Status:    domain.ListingActive,
	}

	err = pub.PublishListing(s.ctx, listing, true)
	s.NoError(err)

	msg := s.consumeMessage(cfg.ListingQueue)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received ListingMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("create", received.Action)
	s.Equal("Backend Engineer", received.Listing.Title)
	s.Equal("Acme", received.Listing.Company)
	s.Equal(int64(42), received.Listing.SourceID)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishListingUpdate() {
	cfg := s.config("update")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	listing := &domain.Listing{
		ID:      2,
		Title:   "Frontend Engineer",
		Company: "Acme",
	}

	err = pub.PublishListing(s.ctx, listing, false)
	s.NoError(err)

	msg := s.consumeMessage(cfg.ListingQueue)
	s.Require().NotNil(msg)

	var received ListingMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("update", received.Action)
	s.Equal(int64(2), received.Listing.ID)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishSubmission() {
	cfg := s.config("submission")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	app := &domain.Application{
		ID:     55,
		UserID: 1,
		JobID:  7,
		Status: domain.StatusSubmitted,
	}

	err = pub.PublishSubmission(s.ctx, app)
	s.NoError(err)

	msg := s.consumeMessage(cfg.SubmissionQueue)
	s.Require().NotNil(msg)

	var received SubmissionMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(int64(1), received.UserID)
	s.Equal(int64(7), received.JobID)
	s.Equal(domain.StatusSubmitted, received.Status)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_RoutingIsolation() {
	cfg := s.config("routing")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.PublishSubmission(s.ctx, &domain.Application{UserID: 1, JobID: 7, Status: domain.StatusFailed})
	s.NoError(err)

	// The submission must not land on the listing queue.
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	listingQueue, err := ch.QueueDeclarePassive(cfg.ListingQueue, true, false, false, false, nil)
	s.Require().NoError(err)
	s.Equal(0, listingQueue.Messages)

	msg := s.consumeMessage(cfg.SubmissionQueue)
	s.NotNil(msg)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(queue string) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(queue, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
