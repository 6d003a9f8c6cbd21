package queue

import (
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/services/poster"
	"github.com/phambaophuc/map-poster-api/internal/services/storage"
)

// Service runs poster generation through RabbitMQ for callers that would
// rather poll a job than hold a connection open for minutes.
type Service struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	logger    *zap.Logger
	queueName string
	poster    *poster.Service
	storage   *storage.Service
}

func NewService(
	rabbitmqURL string,
	posterService *poster.Service,
	storageService *storage.Service,
	logger *zap.Logger,
) (*Service, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	queueName := "poster_generation"

	// Declare queue
	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Service{
		conn:      conn,
		channel:   channel,
		logger:    logger,
		queueName: queueName,
		poster:    posterService,
		storage:   storageService,
	}, nil
}

// Close closes the queue connection
func (q *Service) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
	return nil
}
