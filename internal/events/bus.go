// Package events wraps the process-wide event bus. Notifications are
// delivered synchronously and in order from the publishing call site and do
// not cross process boundaries.
package events

import (
	"github.com/asaskevich/EventBus"

	"github.com/insiderdeals/storefront/internal/domain"
)

// TopicCatalogUpdated carries the full updated product slice after every
// catalog save.
const TopicCatalogUpdated = "catalog.updated"

type Bus struct {
	bus EventBus.Bus
}

func New() *Bus {
	return &Bus{bus: EventBus.New()}
}

// PublishCatalogUpdated notifies all subscribers with the new catalog.
// Delivery completes before PublishCatalogUpdated returns.
func (b *Bus) PublishCatalogUpdated(products []domain.Product) {
	b.bus.Publish(TopicCatalogUpdated, products)
}

func (b *Bus) SubscribeCatalogUpdated(fn func(products []domain.Product)) error {
	return b.bus.Subscribe(TopicCatalogUpdated, fn)
}

func (b *Bus) UnsubscribeCatalogUpdated(fn func(products []domain.Product)) error {
	return b.bus.Unsubscribe(TopicCatalogUpdated, fn)
}
