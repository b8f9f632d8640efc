package repository

import (
	"context"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
)

// OrderStore is the durable key-value home of orders. Save is a single-key
// insert; FindByID returns order.ErrNotFound on a miss so callers can
// distinguish an absent key from an unreachable backend.
type OrderStore interface {
	Save(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
}
