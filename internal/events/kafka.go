package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fjod/go_shop/internal/domain"
	kafkaGo "github.com/segmentio/kafka-go"
)

// KafkaPublisher writes order events to a Kafka topic, keyed by user ID so
// events for one user stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafkaGo.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkaGo.LeastBytes{},
		},
	}
}

type orderPlacedEvent struct {
	OrderID   string            `json:"order_id"`
	UserID    string            `json:"user_id"`
	Total     string            `json:"total"`
	Lines     []domain.CartLine `json:"lines"`
	CreatedAt string            `json:"created_at"`
}

func (p *KafkaPublisher) OrderPlaced(ctx context.Context, order *domain.Order) error {
	event := orderPlacedEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total.String(),
		Lines:     order.Lines,
		CreatedAt: order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order placed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(order.UserID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write order placed event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
