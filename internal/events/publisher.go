package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// EntryForwarded is emitted when an entry is marked as sent to the physician.
// A downstream consumer picks it up to relay the entry; this service only
// publishes.
type EntryForwarded struct {
	UserID    uint      `json:"user_id"`
	EntryType string    `json:"entry_type"`
	EntryID   uint      `json:"entry_id"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher interface {
	PublishEntryForwarded(userID uint, entryType string, entryID uint) error
	Close() error
}

type amqpPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewPublisher(url, queueName string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

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
		return nil, fmt.Errorf("failed to declare queue: %v", err)
	}

	return &amqpPublisher{
		conn:    conn,
		channel: channel,
		queue:   queueName,
	}, nil
}

func (p *amqpPublisher) PublishEntryForwarded(userID uint, entryType string, entryID uint) error {
	event := EntryForwarded{
		UserID:    userID,
		EntryType: entryType,
		EntryID:   entryID,
		Timestamp: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %v", err)
	}

	return p.channel.Publish(
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (p *amqpPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	return p.conn.Close()
}
