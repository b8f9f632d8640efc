package main

import (
	"context"
	"fmt"
	"log"

	app "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/application/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/config"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/repository"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/encoding"
	ginserver "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/http/gin"
	kafkainfra "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/messaging/kafka"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/persistence/postgres"
	redisstore "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/persistence/redis"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/interfaces/http/handler"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/interfaces/http/router"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/interfaces/http/view"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/pkg/logger"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := newOrderStore(ctx, cfg)
	if err != nil {
		log.Fatalf("order store init failed: %v", err)
	}
	defer closeStore()

	topic, err := cfg.Kafka.TopicFor(app.OrdersChannel)
	if err != nil {
		log.Fatalf("resolve notification channel failed: %v", err)
	}

	codec, err := encoding.New(cfg.Kafka.EventEncoding)
	if err != nil {
		log.Fatalf("event codec init failed: %v", err)
	}

	producer, err := kafkainfra.NewOrderProducer(cfg.Kafka, topic, logg)
	if err != nil {
		log.Fatalf("kafka producer init failed: %v", err)
	}
	defer producer.Close(ctx)

	orderService := app.NewService(store, producer, codec, logg)

	orderHandler := handler.NewOrderHandler(orderService, view.NewHTMLRenderer(), logg)
	engine := ginserver.NewEngine(view.Templates())
	router.RegisterRoutes(engine, orderHandler)

	logg.Info("server starting",
		logger.String("addr", cfg.Server.Address()),
		logger.String("store_driver", cfg.Store.Driver),
	)

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		log.Fatalf("server run failed: %v", err)
	}
}

func newOrderStore(ctx context.Context, cfg *config.Config) (repository.OrderStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgres.NewOrderStore(ctx, pool, cfg.DB.OrdersTable)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	case config.StoreDriverRedis:
		client, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewOrderStore(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
