package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	app "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/application/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/config"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/pkg/logger"
)

// OrderProducer publishes order notifications to the topic the logical
// channel resolved to at startup. Message attributes travel as record
// headers: one header per attribute value plus a "<key>.type" header carrying
// its data type.
type OrderProducer struct {
	client *kgo.Client
	topic  string
	log    logger.Logger
}

func NewOrderProducer(cfg config.KafkaConfig, topic string, log logger.Logger) (*OrderProducer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// The connection itself is only exercised on the first publish.
	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", topic),
	)

	return &OrderProducer{
		client: client,
		topic:  topic,
		log:    log,
	}, nil
}

func (p *OrderProducer) PublishOrder(ctx context.Context, body []byte, attrs map[string]app.Attribute) error {
	if len(body) == 0 {
		return fmt.Errorf("event body is empty")
	}

	headers := make([]kgo.RecordHeader, 0, 2*len(attrs))
	for key, attr := range attrs {
		headers = append(headers,
			kgo.RecordHeader{Key: key, Value: []byte(attr.Value)},
			kgo.RecordHeader{Key: key + ".type", Value: []byte(attr.DataType)},
		)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     body,
		Headers:   headers,
		Timestamp: time.Now().UTC(),
	}

	// ProduceSync returns a result per record; we send one.
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		p.log.Error("publish failed",
			logger.String("topic", p.topic),
			logger.Int("body_bytes", len(body)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *OrderProducer) Close(ctx context.Context) error {
	p.client.Close()
	return nil
}
