package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	app "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/application/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/config"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/encoding"
	kafkainfra "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/messaging/kafka"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/pkg/logger"
)

// Small tool that follows the orders notification channel and logs every
// decoded event. Useful for verifying that submissions reach the broker.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	topic, err := cfg.Kafka.TopicFor(app.OrdersChannel)
	if err != nil {
		log.Fatalf("resolve notification channel failed: %v", err)
	}

	codec, err := encoding.New(cfg.Kafka.EventEncoding)
	if err != nil {
		log.Fatalf("event codec init failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tail := kafkainfra.NewEventTail(cfg.Kafka, topic, codec, logg)
	defer tail.Close()

	logg.Info("tailing order events", logger.String("topic", topic))

	if err := tail.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("event tail stopped: %v", err)
	}
}
