package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

type PaymentEventPublisher struct {
	writer *kafka.Writer
}

func NewPaymentEventPublisher(brokers []string, topic string) *PaymentEventPublisher {
	return &PaymentEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishPayment keys messages by order id so redeliveries for the same
// order land in one partition.
func (p *PaymentEventPublisher) PublishPayment(event domain.PaymentEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *PaymentEventPublisher) Close() error {
	return p.writer.Close()
}
