package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the durable record of one accepted submission. The ID is the sole
// lookup key; Customer is stored exactly as submitted.
type Order struct {
	ID        string          `json:"id"`
	Customer  string          `json:"customer"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// New validates the submission and builds the record. Nothing that fails
// validation is ever handed to a store.
func New(id, customer string, amount decimal.Decimal) (*Order, error) {
	if id == "" {
		return nil, &ValidationError{Reason: "Order id is required."}
	}
	if strings.TrimSpace(customer) == "" {
		return nil, &ValidationError{Reason: "Customer is required."}
	}
	if amount.IsNegative() {
		return nil, &ValidationError{Reason: "Amount must be a positive number."}
	}

	return &Order{
		ID:        id,
		Customer:  customer,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}, nil
}
