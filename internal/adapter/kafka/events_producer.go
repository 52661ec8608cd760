package kafka

import (
	"context"
	"log/slog"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.EventProducer = (*EventsProducer)(nil)

// An EventsProducer streams [domain.ClientEvent] records keyed by
// session id. Produce is asynchronous: the storefront operation that
// emitted the event never waits on the broker, and a delivery failure
// only shows up in the log.
type EventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewEventsProducer(opts ...ProducerOpt) (EventsProducer, error) {
	const op = "NewEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return EventsProducer{}, opErr(err, op)
		}
	}
	return EventsProducer{options.cl, options.encoder}, nil
}

func (p EventsProducer) Close() {
	const op = "EventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p EventsProducer) ProduceEvent(
	ctx context.Context, e domain.ClientEvent,
) error {
	const op = "EventsProducer.ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	b, err := p.encoder.Encode(clientEventToSchemaV1(e))
	if err != nil {
		return opErr(err, op)
	}

	r := &kgo.Record{Key: []byte(e.SessionID), Value: b}
	p.cl.Produce(ctx, r, func(_ *kgo.Record, err error) {
		if err != nil {
			slog.Warn("client event delivery failed",
				"op", op, "type", e.Type, "err", err)
		}
	})
	return nil
}
