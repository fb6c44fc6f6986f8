// Package runner moves sync jobs through RabbitMQ. Dispatch publishes a job,
// Consume delivers jobs to a handler with manual acknowledgement.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"post_publisher/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	queueName  string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
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
		queueName:  q.Name,
		logger:     logger,
	}, nil
}

// Dispatch publishes one sync job as a persistent JSON message.
func (r *RabbitMQ) Dispatch(ctx context.Context, job *domain.SyncJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
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
			MessageId:    job.JobID.String(),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish job: %w", err)
	}

	r.logger.Debug("dispatched job",
		"job_id", job.JobID,
		"post_id", job.PostID,
	)

	return nil
}

// Handler processes one delivered job. A returned error requeues the message
// once; a second failure discards it so a poison job cannot loop forever.
type Handler func(ctx context.Context, job *domain.SyncJob) error

// Consume blocks delivering jobs to the handler until ctx is cancelled or the
// channel closes. Messages with undecodable bodies are rejected without requeue.
func (r *RabbitMQ) Consume(ctx context.Context, handler Handler) error {
	deliveries, err := r.channel.Consume(
		r.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}

	r.logger.Info("consuming jobs", "queue", r.queueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			r.handleDelivery(ctx, delivery, handler)
		}
	}
}

func (r *RabbitMQ) handleDelivery(ctx context.Context, delivery amqp.Delivery, handler Handler) {
	var job domain.SyncJob
	if err := json.Unmarshal(delivery.Body, &job); err != nil {
		r.logger.Error("discarding undecodable message", "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	if err := handler(ctx, &job); err != nil {
		requeue := !delivery.Redelivered
		r.logger.Error("job handler failed",
			"job_id", job.JobID,
			"post_id", job.PostID,
			"requeue", requeue,
			"error", err,
		)
		_ = delivery.Nack(false, requeue)
		return
	}

	_ = delivery.Ack(false)
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
