package app

import (
	"github.com/robfig/cron/v3"

	"github.com/insiderdeals/storefront/config"
	"github.com/insiderdeals/storefront/internal/auth"
	"github.com/insiderdeals/storefront/internal/catalog"
	"github.com/insiderdeals/storefront/internal/events"
	"github.com/insiderdeals/storefront/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the durable key-value store
type StoreProvider interface {
	Store() store.KVStore
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() *events.Bus
}

// CatalogProvider provides the catalog service
type CatalogProvider interface {
	Catalog() *catalog.Service
}

// BlogProvider provides the read-only blog store
type BlogProvider interface {
	Blogs() *catalog.BlogStore
}

// FeaturedProvider provides the landing-page featured view
type FeaturedProvider interface {
	Featured() *catalog.FeaturedView
}

// AuthProvider provides the admin gate
type AuthProvider interface {
	Auth() *auth.Authenticator
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Handlers should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	BusProvider
	CatalogProvider
	BlogProvider
	FeaturedProvider
	AuthProvider
	SchedulerProvider
}
