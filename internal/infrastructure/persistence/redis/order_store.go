package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/config"
	domain "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
)

const orderKeyPrefix = "order:"

// NewClient connects and pings the Redis backend once at process start.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// OrderStore keeps each order as one JSON value keyed by its id, matching the
// key-value shape of the store contract.
type OrderStore struct {
	client *goredis.Client
}

func NewOrderStore(client *goredis.Client) *OrderStore {
	return &OrderStore{client: client}
}

// orderRecord is the stored shape. Amount travels as its exact decimal text.
type orderRecord struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *OrderStore) Save(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	data, err := json.Marshal(orderRecord{
		ID:        o.ID,
		Customer:  o.Customer,
		Amount:    o.Amount.String(),
		CreatedAt: o.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	// SetNX keeps Save insert-only; a colliding id must fail loudly instead
	// of overwriting another order.
	ok, err := s.client.SetNX(ctx, orderKeyPrefix+o.ID, data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	return nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	data, err := s.client.Get(ctx, orderKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec orderRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}

	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return nil, fmt.Errorf("decode stored amount: %w", err)
	}

	return &domain.Order{
		ID:        rec.ID,
		Customer:  rec.Customer,
		Amount:    amount,
		CreatedAt: rec.CreatedAt,
	}, nil
}
