package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/config"
	domain "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/pkg/logger"
)

// Decoder turns a notification body back into the event.
type Decoder interface {
	Decode(data []byte) (domain.PlacedEvent, error)
}

// EventTail follows the orders channel and logs every decoded notification.
// It backs the event_tail binary, not the web process.
type EventTail struct {
	reader *kafkago.Reader
	codec  Decoder
	log    logger.Logger
}

func NewEventTail(cfg config.KafkaConfig, topic string, codec Decoder, log logger.Logger) *EventTail {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    topic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &EventTail{
		reader: reader,
		codec:  codec,
		log:    log,
	}
}

// Run blocks until ctx is cancelled or the reader fails.
func (t *EventTail) Run(ctx context.Context) error {
	for {
		msg, err := t.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		evt, err := t.codec.Decode(msg.Value)
		if err != nil {
			t.log.Warn("skipping undecodable event", logger.Error(err))
			continue
		}

		fields := []logger.Field{
			logger.String("customer", evt.Customer),
			logger.String("amount", evt.Amount.String()),
		}
		for _, h := range msg.Headers {
			fields = append(fields, logger.String("attr."+h.Key, string(h.Value)))
		}
		t.log.Info("order event", fields...)
	}
}

func (t *EventTail) Close() {
	_ = t.reader.Close()
}
