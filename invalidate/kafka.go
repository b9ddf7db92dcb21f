package invalidate

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes invalidation events to a Kafka topic.
type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (n *KafkaNotifier) AlertsChanged(ctx context.Context, batchID string) error {
	value, err := encodeEvent(batchID, time.Now())
	if err != nil {
		return err
	}
	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte("alerts"),
		Value: value,
	})
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
