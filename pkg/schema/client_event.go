package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields": [
		{"name": "session_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "product_name", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "query", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// ClientEventV1 is the wire shape of one storefront gesture.
// OccurredAt is unix milliseconds.
type ClientEventV1 struct {
	SessionID   string `avro:"session_id"`
	EventType   string `avro:"event_type"`
	ProductID   string `avro:"product_id"`
	ProductName string `avro:"product_name"`
	Category    string `avro:"category"`
	Query       string `avro:"query"`
	Quantity    int64  `avro:"quantity"`
	OccurredAt  int64  `avro:"occurred_at"`
}
