package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// PiercingPublisher publishes piercing events to the queue declared by
// ConnectRabbitMQ. A channel is not safe for concurrent publishes, so
// publishing is serialized.
type PiercingPublisher struct {
	channel           amqpChannel
	healthy           func() bool
	mu                sync.Mutex
	messagesPublished atomic.Int64
	messagesFailed    atomic.Int64
	lastPublishTime   atomic.Int64
}

func NewPiercingPublisher(conn *RabbitMQConnection) *PiercingPublisher {
	return newPiercingPublisher(conn.Channel, conn.IsOpen)
}

func newPiercingPublisher(channel amqpChannel, healthy func() bool) *PiercingPublisher {
	p := &PiercingPublisher{
		channel: channel,
		healthy: healthy,
	}
	return p
}

var ErrPublisherClosed = errors.New("rabbitmq channel closed")

func (p *PiercingPublisher) PublishEvent(ctx context.Context, event PiercingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		p.messagesFailed.Add(1)
		return fmt.Errorf("failed to marshal piercing event: %w", err)
	}

	if p.healthy != nil && !p.healthy() {
		p.messagesFailed.Add(1)
		return ErrPublisherClosed
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		"",            // exchange
		PiercingQueue, // routing key (queue name)
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         string(event.EventType),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed.Add(1)
		return fmt.Errorf("failed to publish piercing event: %w", err)
	}

	p.messagesPublished.Add(1)
	p.lastPublishTime.Store(time.Now().UnixNano())

	slog.Info("Piercing event published",
		"queue", PiercingQueue,
		"event_type", event.EventType,
		"client_id", event.ClientID,
	)
	return nil
}

func (p *PiercingPublisher) HealthCheck() PublisherHealthStatus {
	status := PublisherHealthStatus{
		IsHealthy:         p.healthy == nil || p.healthy(),
		MessagesPublished: p.messagesPublished.Load(),
		MessagesFailed:    p.messagesFailed.Load(),
		Queue:             PiercingQueue,
	}
	if last := p.lastPublishTime.Load(); last != 0 {
		lastPublish := time.Unix(0, last)
		status.LastPublishTime = &lastPublish
	}
	return status
}

type PublisherHealthStatus struct {
	IsHealthy         bool       `json:"is_healthy"`
	MessagesPublished int64      `json:"messages_published"`
	MessagesFailed    int64      `json:"messages_failed"`
	LastPublishTime   *time.Time `json:"last_publish_time,omitempty"`
	Queue             string     `json:"queue"`
}
