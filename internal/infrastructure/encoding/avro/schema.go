package avro

// PlacedEventSchema is the Avro schema for the order notification body. The
// field set mirrors the JSON encoding: business fields only, no id.
const PlacedEventSchema = `{
	"type": "record",
	"name": "OrderPlaced",
	"namespace": "com.orders.notification",
	"fields": [
		{"name": "customer", "type": "string"},
		{"name": "amount", "type": "double"}
	]
}`
