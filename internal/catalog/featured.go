package catalog

import (
	"sync"

	"github.com/insiderdeals/storefront/internal/domain"
	"github.com/insiderdeals/storefront/internal/events"
)

// FeaturedLimit caps the landing-view promotion slots.
const FeaturedLimit = 3

// FeaturedView is the landing-page consumer of the catalog: it caches the
// featured products and refreshes whenever a catalog change is broadcast.
type FeaturedView struct {
	mu    sync.RWMutex
	limit int
	items []domain.Product
}

// NewFeaturedView seeds the view from the current catalog and subscribes it
// to catalog updates.
func NewFeaturedView(svc *Service, bus *events.Bus, limit int) (*FeaturedView, error) {
	v := &FeaturedView{limit: limit}
	v.refresh(svc.Load())
	if err := bus.SubscribeCatalogUpdated(v.refresh); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *FeaturedView) refresh(products []domain.Product) {
	items := domain.Featured(products, v.limit)
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
}

// Items returns the cached featured products.
func (v *FeaturedView) Items() []domain.Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]domain.Product(nil), v.items...)
}
