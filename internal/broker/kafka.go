package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smartShop/business/sales"
	"smartShop/pkg/logger"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{writer: writer}
}

// PublishEvent publishes an event to Kafka
func (p *Producer) PublishEvent(ctx context.Context, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: eventBytes,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	logger.Debug("published event", "key", key)
	return nil
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// SaleEventPublisher publishes sale lifecycle events. Implements
// sales.EventPublisher.
type SaleEventPublisher struct {
	producer *Producer
}

func NewSaleEventPublisher(producer *Producer) *SaleEventPublisher {
	return &SaleEventPublisher{producer: producer}
}

func (ep *SaleEventPublisher) PublishSaleRecorded(ctx context.Context, event sales.SaleRecordedEvent) error {
	key := fmt.Sprintf("sale-%s", event.SaleID)
	return ep.producer.PublishEvent(ctx, key, event)
}
