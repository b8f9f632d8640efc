package encoding

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
)

// placedEventWire keeps the amount as a bare JSON number, exactly as the
// caller submitted it.
type placedEventWire struct {
	Customer string      `json:"customer"`
	Amount   json.Number `json:"amount"`
}

// JSONCodec is the default body encoding.
type JSONCodec struct{}

func (JSONCodec) Encode(evt order.PlacedEvent) ([]byte, error) {
	return json.Marshal(placedEventWire{
		Customer: evt.Customer,
		Amount:   json.Number(evt.Amount.String()),
	})
}

func (JSONCodec) Decode(data []byte) (order.PlacedEvent, error) {
	var w placedEventWire
	if err := json.Unmarshal(data, &w); err != nil {
		return order.PlacedEvent{}, fmt.Errorf("decode order event: %w", err)
	}

	amount, err := decimal.NewFromString(w.Amount.String())
	if err != nil {
		return order.PlacedEvent{}, fmt.Errorf("decode order event amount: %w", err)
	}

	return order.PlacedEvent{Customer: w.Customer, Amount: amount}, nil
}
