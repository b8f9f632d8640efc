package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/repository"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/pkg/logger"
)

// OrdersChannel is the logical notification channel. Config maps it to a
// physical topic at process start.
const OrdersChannel = "ordersTopic"

// Attribute is a typed message attribute delivered alongside the event body so
// subscribers can filter without decoding the payload.
type Attribute struct {
	DataType string
	Value    string
}

// Publisher delivers an encoded order notification to the channel bound at
// construction time. Delivery is at-least-once; a returned error means the
// event may not have reached the broker.
type Publisher interface {
	PublishOrder(ctx context.Context, body []byte, attrs map[string]Attribute) error
}

// Codec encodes the notification body for the wire.
type Codec interface {
	Encode(evt domain.PlacedEvent) ([]byte, error)
}

type Service struct {
	store     repository.OrderStore
	publisher Publisher
	codec     Codec
	log       logger.Logger
}

func NewService(store repository.OrderStore, publisher Publisher, codec Codec, log logger.Logger) *Service {
	return &Service{store: store, publisher: publisher, codec: codec, log: log}
}

// Submit validates the submission, stores it under a fresh id, and then
// publishes the notification. The store write always completes before the
// publish is attempted; a publish failure after a durable write is reported as
// *order.NotificationError together with the already-valid id.
func (s *Service) Submit(ctx context.Context, customer, rawAmount string) (string, error) {
	amount, err := domain.ParseAmount(rawAmount)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	o, err := domain.New(id, customer, amount)
	if err != nil {
		return "", err
	}

	if err := s.store.Save(ctx, o); err != nil {
		return "", &domain.PersistenceError{Err: err}
	}
	s.log.Info("order saved", logger.String("order_id", id))

	body, err := s.codec.Encode(domain.PlacedEvent{Customer: o.Customer, Amount: o.Amount})
	if err != nil {
		return id, &domain.NotificationError{Err: err}
	}

	attrs := map[string]Attribute{
		"amount": {DataType: "Number", Value: o.Amount.String()},
	}
	if err := s.publisher.PublishOrder(ctx, body, attrs); err != nil {
		return id, &domain.NotificationError{Err: err}
	}
	s.log.Info("order notification published", logger.String("order_id", id))

	return id, nil
}

// Lookup returns the stored order for a canonical id. A malformed id fails
// before the store is touched.
func (s *Service) Lookup(ctx context.Context, id string) (*domain.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &domain.ValidationError{Reason: "Order id must be a valid UUID."}
	}

	o, err := s.store.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}
	return o, nil
}
