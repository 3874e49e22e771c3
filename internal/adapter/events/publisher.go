// Package events publishes deletion events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/medvault/medvault-backend/internal/domain"
)

// channel is the subset of *amqp.Channel the producer uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Producer publishes events to a durable topic exchange.
type Producer struct {
	exchange string
	log      *slog.Logger

	mu       sync.Mutex
	ch       channel
	declared bool
	reopen   func() (channel, error)
	closeFn  func() error
}

// NewProducer dials RabbitMQ and opens a channel.
func NewProducer(amqpURL, exchange string, logger *slog.Logger) (*Producer, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	p := newProducer(ch, exchange, logger)
	p.reopen = func() (channel, error) { return conn.Channel() }
	p.closeFn = conn.Close
	return p, nil
}

func newProducer(ch channel, exchange string, logger *slog.Logger) *Producer {
	return &Producer{
		exchange: exchange,
		log:      logger.With("adapter", "events", "exchange", exchange),
		ch:       ch,
	}
}

// Publish sends ev as JSON with its routing key. On failure the channel is
// reopened once and the publish retried.
func (p *Producer) Publish(ctx context.Context, ev domain.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.RoutingKey(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.publish(ctx, ev.RoutingKey(), body)
	if err == nil {
		return nil
	}
	if p.reopen == nil {
		return err
	}

	p.log.WarnContext(ctx, "publish failed, reopening channel",
		slog.String("routing_key", ev.RoutingKey()),
		slog.String("error", err.Error()),
	)
	ch, chErr := p.reopen()
	if chErr != nil {
		return errors.Join(err, fmt.Errorf("reopen channel: %w", chErr))
	}
	_ = p.ch.Close()
	p.ch = ch
	p.declared = false

	return p.publish(ctx, ev.RoutingKey(), body)
}

func (p *Producer) publish(ctx context.Context, routingKey string, body []byte) error {
	if !p.declared {
		if err := p.ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
		}
		p.declared = true
	}

	err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.log.DebugContext(ctx, "event published", slog.String("routing_key", routingKey))
	return nil
}

// Close closes the channel and the connection.
func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.closeFn != nil {
		_ = p.closeFn()
	}
}

// LogPublisher logs events instead of sending them. Used when no broker is
// configured or the broker is unreachable at startup.
type LogPublisher struct {
	log *slog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{log: logger.With("adapter", "events")}
}

// Publish logs the event at INFO.
func (p *LogPublisher) Publish(ctx context.Context, ev domain.Event) error {
	p.log.InfoContext(ctx, "event not sent, no broker configured",
		slog.String("routing_key", ev.RoutingKey()),
		slog.Any("event", ev),
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() {}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), `"'`)
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("parse AMQP URL: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}
