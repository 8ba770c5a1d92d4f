//go:build integration

package notify

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

	"content_orchestrator/internal/domain"
	"content_orchestrator/testdata/utils"
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

func (s *RabbitMQIntegrationSuite) TestNotifier_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	n, err := NewRabbitMQ(cfg, nil, s.logger)
	s.NoError(err)
	s.NotNil(n)

	err = n.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestNotifier_ApprovalRequested() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-approval",
		RoutingKey: "test-routing-key-approval",
		QueueName:  "test-queue-approval",
	}

	n, err := NewRabbitMQ(cfg, nil, s.logger)
	s.Require().NoError(err)
	defer n.Close()

	slot := time.Now().Add(26 * time.Hour).Truncate(time.Millisecond).UTC()
	item := &domain.ContentItem{
		ID:            1,
		BrandID:       10,
		Title:         "Morning blend",
		Platform:      domain.PlatformInstagram,
		ScheduledTime: utils.Ptr(slot),
	}

	err = n.ApprovalRequested(s.ctx, item)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal("application/json", msg.ContentType)

	var received EventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventApprovalRequested, received.Event)
	s.Equal(int64(1), received.ItemID)
	s.Equal(int64(10), received.BrandID)
	s.Equal(domain.PlatformInstagram, received.Platform)
	s.Require().NotNil(received.ScheduledTime)
	s.WithinDuration(slot, *received.ScheduledTime, time.Second)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestNotifier_ApprovalReminder_CarriesUrgency() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-reminder",
		RoutingKey: "test-routing-key-reminder",
		QueueName:  "test-queue-reminder",
	}

	n, err := NewRabbitMQ(cfg, nil, s.logger)
	s.Require().NoError(err)
	defer n.Close()

	item := &domain.ContentItem{
		ID:            2,
		BrandID:       10,
		Title:         "Roastery tour",
		Platform:      domain.PlatformTwitter,
		ScheduledTime: utils.Ptr(time.Now().Add(90 * time.Minute).UTC()),
	}

	err = n.ApprovalReminder(s.ctx, item, UrgencyUrgent)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received EventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventApprovalReminder, received.Event)
	s.Equal(UrgencyUrgent, received.Urgency)
}

func (s *RabbitMQIntegrationSuite) TestNotifier_Published() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-published",
		RoutingKey: "test-routing-key-published",
		QueueName:  "test-queue-published",
	}

	n, err := NewRabbitMQ(cfg, nil, s.logger)
	s.Require().NoError(err)
	defer n.Close()

	item := &domain.ContentItem{
		ID:       3,
		BrandID:  11,
		Title:    "Latte art",
		Platform: domain.PlatformInstagram,
	}

	err = n.Published(s.ctx, item, "post-abc")
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received EventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventPublished, received.Event)
	s.Equal("post-abc", received.PlatformPostID)
	s.Empty(received.Urgency)
}

func (s *RabbitMQIntegrationSuite) TestNotifier_Failed() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-failed",
		RoutingKey: "test-routing-key-failed",
		QueueName:  "test-queue-failed",
	}

	n, err := NewRabbitMQ(cfg, nil, s.logger)
	s.Require().NoError(err)
	defer n.Close()

	item := &domain.ContentItem{
		ID:           4,
		BrandID:      11,
		Title:        "Cold brew drop",
		Platform:     domain.PlatformLinkedIn,
		ErrorMessage: utils.Ptr("adapter timeout"),
	}

	err = n.Failed(s.ctx, item)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received EventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventPublishFailed, received.Event)
	s.Equal("adapter timeout", received.Error)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
