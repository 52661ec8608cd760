package kafka

import (
	"context"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

var _ port.EventProducer = (*NoopProducer)(nil)

// NoopProducer stands in when no broker is configured: the storefront
// runs fully local and events are discarded.
type NoopProducer struct{}

func (NoopProducer) ProduceEvent(context.Context, domain.ClientEvent) error {
	return nil
}

func (NoopProducer) Close() {}
