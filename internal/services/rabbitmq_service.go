package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const chatEventsQueue = "chat_events"

// RabbitMQService publishes chat events for downstream notification
// workers. The API stays up without it; the caller treats a failed
// connect as a disabled fanout.
type RabbitMQService struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQService() (*RabbitMQService, error) {
	host := config.GetEnv("RABBITMQ_HOST", "localhost")
	port := config.GetEnv("RABBITMQ_PORT", "5672")
	user := config.GetEnv("RABBITMQ_USER", "guest")
	pass := config.GetEnv("RABBITMQ_PASS", "guest")

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		chatEventsQueue, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logrus.Info("RabbitMQ service initialized successfully")
	return &RabbitMQService{conn: conn, channel: channel}, nil
}

// PublishChatMessage enqueues a new-message event
func (s *RabbitMQService) PublishChatMessage(roomID, senderID uint, content string) error {
	event := map[string]interface{}{
		"type":         "chat_message",
		"chat_room_id": roomID,
		"sender_id":    senderID,
		"content":      content,
		"sent_at":      time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal chat event: %w", err)
	}

	err = s.channel.Publish(
		"",              // exchange
		chatEventsQueue, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish chat event: %w", err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection
func (s *RabbitMQService) Close() error {
	if s.channel != nil {
		if err := s.channel.Close(); err != nil {
			logrus.Errorf("Error closing RabbitMQ channel: %v", err)
		}
	}
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			logrus.Errorf("Error closing RabbitMQ connection: %v", err)
		}
	}
	return nil
}
