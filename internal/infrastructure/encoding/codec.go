package encoding

import (
	"fmt"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/infrastructure/encoding/avro"
)

// Codec converts order notifications to and from their wire body.
type Codec interface {
	Encode(evt order.PlacedEvent) ([]byte, error)
	Decode(data []byte) (order.PlacedEvent, error)
}

// Supported EVENT_ENCODING values.
const (
	JSON = "json"
	Avro = "avro"
)

// New returns the codec selected by the EVENT_ENCODING setting. JSON is the
// default and matches what downstream subscribers historically consumed.
func New(name string) (Codec, error) {
	switch name {
	case "", JSON:
		return JSONCodec{}, nil
	case Avro:
		c, err := avro.NewCodec()
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown event encoding %q", name)
	}
}
