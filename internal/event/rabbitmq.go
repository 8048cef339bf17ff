package event

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"piercing-service/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	connectionName    = "piercing-service"
	heartbeatInterval = 10 * time.Second
)

type queueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

// RabbitMQConnection is a connection whose channel already has the piercing
// event queue declared.
type RabbitMQConnection struct {
	Connection *amqp.Connection
	Channel    *amqp.Channel
}

func connectionURI(cfg config.RabbitMQConfig) (string, error) {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return "", fmt.Errorf("invalid RabbitMQ port %q: %w", cfg.Port, err)
	}
	uri := amqp.URI{
		Scheme:   "amqp",
		Host:     cfg.Host,
		Port:     port,
		Username: cfg.Username,
		Password: cfg.Password,
		Vhost:    "/",
	}
	return uri.String(), nil
}

// declarePiercingQueue declares the durable queue piercing events are
// routed to.
func declarePiercingQueue(ch queueDeclarer) error {
	if _, err := ch.QueueDeclare(PiercingQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", PiercingQueue, err)
	}
	return nil
}

func ConnectRabbitMQ(cfg config.RabbitMQConfig) (*RabbitMQConnection, error) {
	uri, err := connectionURI(cfg)
	if err != nil {
		return nil, err
	}

	props := amqp.NewConnectionProperties()
	props.SetClientConnectionName(connectionName)
	conn, err := amqp.DialConfig(uri, amqp.Config{
		Heartbeat:  heartbeatInterval,
		Locale:     "en_US",
		Properties: props,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := declarePiercingQueue(ch); err != nil {
		conn.Close()
		return nil, err
	}

	slog.Info("Connected to RabbitMQ", "host", cfg.Host, "port", cfg.Port, "queue", PiercingQueue)
	return &RabbitMQConnection{
		Connection: conn,
		Channel:    ch,
	}, nil
}

// IsOpen is false once either the connection or its channel has closed.
func (r *RabbitMQConnection) IsOpen() bool {
	return r != nil && r.Connection != nil && !r.Connection.IsClosed() &&
		r.Channel != nil && !r.Channel.IsClosed()
}

func (r *RabbitMQConnection) Close() error {
	if r.Channel != nil {
		if err := r.Channel.Close(); err != nil {
			slog.Error("failed to close RabbitMQ channel", "error", err)
		}
	}
	if r.Connection != nil {
		if err := r.Connection.Close(); err != nil {
			slog.Error("failed to close RabbitMQ connection", "error", err)
			return err
		}
	}
	slog.Info("RabbitMQ connection closed")
	return nil
}
