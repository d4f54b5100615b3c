package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/take-two/storefront/models"
)

type OrderEventProducer struct {
	writer *kafka.Writer
	topic  string
	logger *zap.Logger
}

func NewOrderEventProducer(brokers []string, topic string, logger *zap.Logger) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &OrderEventProducer{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

func (p *OrderEventProducer) SendOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("failed to publish order event",
			zap.String("topic", p.topic),
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (p *OrderEventProducer) Close() {
	_ = p.writer.Close()
}
