package events

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// QueueName is the durable RabbitMQ queue shared by the server and the audit
// worker.
const QueueName = "dashboard_events"

// AMQPPublisher publishes events to RabbitMQ. Subscribing in-process is not
// supported; consumers run in cmd/worker.
type AMQPPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(topic string, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.ch.Publish(
		"",
		QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Type:        topic,
			Body:        body,
		},
	)
}

func (p *AMQPPublisher) Subscribe(topic string, handler func(event Event) error) error {
	return fmt.Errorf("amqp publisher does not support in-process subscriptions")
}

func (p *AMQPPublisher) Close() {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

var _ Publisher = (*AMQPPublisher)(nil)
