package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
)

type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers string, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        "order-events",
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaProducer{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaProducer) OrderCreated(ctx context.Context, order *domain.Order) error {
	items := make([]OrderItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return p.publish(ctx, OrderEvent{
		EventID:   uuid.NewString(),
		Type:      TypeOrderCreated,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Totals.Total,
		Items:     items,
		Timestamp: time.Now().UTC(),
	})
}

func (p *KafkaProducer) OrderPaid(ctx context.Context, orderID string) error {
	return p.publish(ctx, OrderEvent{
		EventID:   uuid.NewString(),
		Type:      TypeOrderPaid,
		OrderID:   orderID,
		Timestamp: time.Now().UTC(),
	})
}

func (p *KafkaProducer) publish(ctx context.Context, event OrderEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish message",
			zap.String("event_id", event.EventID),
			zap.String("type", event.Type),
			zap.Error(err))
		return err
	}

	p.logger.Info("Event published successfully",
		zap.String("event_id", event.EventID),
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID))

	return nil
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
