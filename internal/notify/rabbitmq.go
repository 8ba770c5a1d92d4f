// Package notify fans lifecycle events out to RabbitMQ. Downstream
// consumers (dashboard, messenger bots) deliver them to reviewers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"content_orchestrator/internal/domain"
)

const (
	EventApprovalRequested = "approval_requested"
	EventApprovalReminder  = "approval_reminder"
	EventPublished         = "published"
	EventPublishFailed     = "publish_failed"
)

// Urgency grades a reminder by how close the publish slot is.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// UrgencyFor returns the reminder urgency for an item whose slot is at
// scheduledTime: urgent under two hours out, high under four.
func UrgencyFor(now, scheduledTime time.Time) Urgency {
	until := scheduledTime.Sub(now)
	switch {
	case until < 2*time.Hour:
		return UrgencyUrgent
	case until < 4*time.Hour:
		return UrgencyHigh
	default:
		return UrgencyNormal
	}
}

type EventMessage struct {
	Event          string          `json:"event"`
	ItemID         int64           `json:"item_id"`
	BrandID        int64           `json:"brand_id"`
	Title          string          `json:"title"`
	Platform       domain.Platform `json:"platform"`
	ScheduledTime  *time.Time      `json:"scheduled_time,omitempty"`
	Urgency        Urgency         `json:"urgency,omitempty"`
	PlatformPostID string          `json:"platform_post_id,omitempty"`
	Error          string          `json:"error,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// Metrics is the optional metrics hook; nil disables it.
type Metrics interface {
	RecordNotification(event string)
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	metrics    Metrics
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, metrics Metrics, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// ApprovalRequested announces a new item awaiting review.
func (r *RabbitMQ) ApprovalRequested(ctx context.Context, item *domain.ContentItem) error {
	return r.publish(ctx, EventMessage{
		Event:         EventApprovalRequested,
		ItemID:        item.ID,
		BrandID:       item.BrandID,
		Title:         item.Title,
		Platform:      item.Platform,
		ScheduledTime: item.ScheduledTime,
	})
}

// ApprovalReminder nudges reviewers about an item still unreviewed as
// its slot approaches.
func (r *RabbitMQ) ApprovalReminder(ctx context.Context, item *domain.ContentItem, urgency Urgency) error {
	return r.publish(ctx, EventMessage{
		Event:         EventApprovalReminder,
		ItemID:        item.ID,
		BrandID:       item.BrandID,
		Title:         item.Title,
		Platform:      item.Platform,
		ScheduledTime: item.ScheduledTime,
		Urgency:       urgency,
	})
}

func (r *RabbitMQ) Published(ctx context.Context, item *domain.ContentItem, platformPostID string) error {
	return r.publish(ctx, EventMessage{
		Event:          EventPublished,
		ItemID:         item.ID,
		BrandID:        item.BrandID,
		Title:          item.Title,
		Platform:       item.Platform,
		PlatformPostID: platformPostID,
	})
}

// Failed announces an item that exhausted its retries.
func (r *RabbitMQ) Failed(ctx context.Context, item *domain.ContentItem) error {
	msg := EventMessage{
		Event:    EventPublishFailed,
		ItemID:   item.ID,
		BrandID:  item.BrandID,
		Title:    item.Title,
		Platform: item.Platform,
	}
	if item.ErrorMessage != nil {
		msg.Error = *item.ErrorMessage
	}
	return r.publish(ctx, msg)
}

func (r *RabbitMQ) publish(ctx context.Context, msg EventMessage) error {
	msg.Timestamp = time.Now().UTC()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
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

	if r.metrics != nil {
		r.metrics.RecordNotification(msg.Event)
	}
	r.logger.Debug("published event",
		"event", msg.Event,
		"item_id", msg.ItemID,
	)

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
