package events

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter creates a synchronous writer for the events topic.
// Messages are keyed by user id, so one user's events stay ordered.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
		Async:        false,
	}
}
