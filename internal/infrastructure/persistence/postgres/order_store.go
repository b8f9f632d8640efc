package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
)

// OrderStore persists orders in a single Postgres table whose name comes from
// ORDERS_TABLE_NAME.
type OrderStore struct {
	pool  *pgxpool.Pool
	table string
}

func NewOrderStore(ctx context.Context, pool *pgxpool.Pool, table string) (*OrderStore, error) {
	s := &OrderStore{
		pool: pool,
		// The table name is config, not caller input; Sanitize still keeps
		// the interpolated identifier quoted.
		table: pgx.Identifier{table}.Sanitize(),
	}
	if err := s.ensureTable(ctx); err != nil {
		return nil, fmt.Errorf("ensure orders table: %w", err)
	}
	return s, nil
}

func (s *OrderStore) Save(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, customer, amount, created_at)
		VALUES ($1, $2, $3, $4);
	`, s.table)

	_, err := s.pool.Exec(ctx, query,
		o.ID,
		o.Customer,
		o.Amount.String(),
		o.CreatedAt,
	)
	return err
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT id, customer, amount::text, created_at
		FROM %s
		WHERE id = $1;
	`, s.table)

	var (
		o      domain.Order
		amount string
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.Customer,
		&amount,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	o.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("decode stored amount: %w", err)
	}
	return &o, nil
}

func (s *OrderStore) ensureTable(ctx context.Context) error {
	stmt := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			customer TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`, s.table)
	_, err := s.pool.Exec(ctx, stmt)
	return err
}
