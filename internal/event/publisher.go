package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"news-crud/internal/domain"
	"news-crud/internal/logger"
)

// Article lifecycle actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ArticleMessage is the JSON body published for every lifecycle change.
// Article is omitted for deletions.
type ArticleMessage struct {
	Event     string          `json:"event"`
	Timestamp time.Time       `json:"timestamp"`
	ArticleID int64           `json:"article_id"`
	RequestID string          `json:"request_id,omitempty"`
	Article   *domain.Article `json:"article,omitempty"`
}

// Publisher announces article changes after they are committed.
type Publisher interface {
	Publish(ctx context.Context, action string, articleID int64, article *domain.Article) error
	Close()
}

// PublishingChannel is the subset of *amqp.Channel used by RabbitPublisher.
type PublishingChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
	Close() error
}

// RabbitPublisher publishes ArticleMessage values to a topic exchange.
type RabbitPublisher struct {
	conn      *amqp.Connection
	ch        PublishingChannel
	exchange  string
	keyPrefix string
	now       func() time.Time
}

// NewRabbitPublisher dials uri and declares a durable topic exchange.
// Routing keys are keyPrefix + "." + action, e.g. "article.created".
func NewRabbitPublisher(uri, exchange, keyPrefix string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connection failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel creation failed: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("exchange declare failed: %w", err)
	}

	return newRabbitPublisher(conn, ch, exchange, keyPrefix), nil
}

func newRabbitPublisher(conn *amqp.Connection, ch PublishingChannel, exchange, keyPrefix string) *RabbitPublisher {
	return &RabbitPublisher{
		conn:      conn,
		ch:        ch,
		exchange:  exchange,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

// Close releases the channel and the connection.
func (p *RabbitPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish sends one persistent JSON message for the given action.
func (p *RabbitPublisher) Publish(ctx context.Context, action string, articleID int64, a *domain.Article) error {
	event := p.keyPrefix + "." + action

	msg := ArticleMessage{
		Event:     event,
		Timestamp: p.now().UTC(),
		ArticleID: articleID,
		RequestID: logger.RequestIDFromContext(ctx),
	}
	if action != ActionDeleted {
		msg.Article = a
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event, err)
	}

	err = p.ch.PublishWithContext(
		ctx,
		p.exchange,
		event,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    msg.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event, err)
	}
	return nil
}

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, string, int64, *domain.Article) error { return nil }

// Close does nothing.
func (NopPublisher) Close() {}
