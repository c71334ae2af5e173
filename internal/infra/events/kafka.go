package events

import (
	"context"
	"time"

	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const headerKind = "kind"

// KafkaPublisher writes one Kafka message per outbox row. The row key becomes
// the message key so events of one capacity pool stay in one partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, ToKafkaMessage(msg))
	if err != nil {
		return errs.Wrapf(err, "publish %s %s", msg.Kind, msg.ID)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func ToKafkaMessage(msg shared.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  msg.CreatedAt,
		Headers: []kafka.Header{
			{Key: headerKind, Value: []byte(msg.Kind)},
			{Key: "event_id", Value: []byte(msg.ID.String())},
		},
	}
}
