package order

import "github.com/shopspring/decimal"

// PlacedEvent is the notification body published after a successful write. It
// carries the business fields only, not the id.
type PlacedEvent struct {
	Customer string
	Amount   decimal.Decimal
}
