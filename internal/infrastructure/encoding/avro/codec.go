package avro

import (
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"
	"github.com/shopspring/decimal"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
)

// Codec encodes order notifications as Avro binary using PlacedEventSchema.
// The mutex keeps the wrapped goavro codec safe for concurrent requests.
type Codec struct {
	codec *goavro.Codec
	mu    sync.Mutex
}

func NewCodec() (*Codec, error) {
	c, err := goavro.NewCodec(PlacedEventSchema)
	if err != nil {
		return nil, fmt.Errorf("create avro codec: %w", err)
	}
	return &Codec{codec: c}, nil
}

func (c *Codec) Encode(evt order.PlacedEvent) ([]byte, error) {
	// The schema uses double for the amount; subscribers that need the exact
	// decimal read the "amount" message attribute instead.
	amount, _ := evt.Amount.Float64()
	native := map[string]interface{}{
		"customer": evt.Customer,
		"amount":   amount,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	binary, err := c.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encode order event: %w", err)
	}
	return binary, nil
}

func (c *Codec) Decode(data []byte) (order.PlacedEvent, error) {
	c.mu.Lock()
	native, _, err := c.codec.NativeFromBinary(data)
	c.mu.Unlock()
	if err != nil {
		return order.PlacedEvent{}, fmt.Errorf("decode order event: %w", err)
	}

	record, ok := native.(map[string]interface{})
	if !ok {
		return order.PlacedEvent{}, fmt.Errorf("order event is not an avro record")
	}

	customer, _ := record["customer"].(string)
	amount, _ := record["amount"].(float64)

	return order.PlacedEvent{
		Customer: customer,
		Amount:   decimal.NewFromFloat(amount),
	}, nil
}
