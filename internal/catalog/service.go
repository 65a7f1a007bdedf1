// Package catalog implements the product catalog: durable storage with a
// static seed fallback, the save/notify pipeline, and the pure filter/sort
// pipeline the listing views consume.
package catalog

import (
	"io"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/insiderdeals/storefront/internal/domain"
	"github.com/insiderdeals/storefront/internal/events"
	"github.com/insiderdeals/storefront/internal/store"
	"github.com/insiderdeals/storefront/pkg/common"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound is returned by Update and Delete for an unknown product ID.
var ErrNotFound = errors.New("catalog: product not found")

// Service owns the catalog lifecycle. The persisted catalog, once written,
// fully shadows the seed file until Reset.
type Service struct {
	kv       store.KVStore
	bus      *events.Bus
	seedPath string
}

func NewService(kv store.KVStore, bus *events.Bus, seedPath string) *Service {
	return &Service{kv: kv, bus: bus, seedPath: seedPath}
}

// Load returns the current catalog. The persisted value wins; when it is
// absent or unreadable the seed document is read, cached into the store and
// returned. Failures degrade to an empty catalog, never an error.
func (s *Service) Load() []domain.Product {
	raw, err := s.kv.Get(store.KeyCatalog)
	if err == nil {
		var products []domain.Product
		if uerr := json.Unmarshal(raw, &products); uerr == nil {
			return products
		}
		zap.L().Warn("persisted catalog is unreadable, falling back to seed",
			zap.String("key", store.KeyCatalog))
	} else if !errors.Is(err, store.ErrNotFound) {
		zap.L().Error("catalog read failed", zap.Error(err))
		return []domain.Product{}
	}

	products, err := s.readSeed()
	if err != nil {
		zap.L().Error("catalog seed load failed", zap.String("file", s.seedPath), zap.Error(err))
		return []domain.Product{}
	}

	if data, merr := json.Marshal(products); merr == nil {
		if perr := s.kv.Put(store.KeyCatalog, data); perr != nil {
			zap.L().Error("catalog seed cache failed", zap.Error(perr))
		}
	}
	return products
}

func (s *Service) readSeed() ([]domain.Product, error) {
	data, err := os.ReadFile(s.seedPath)
	if err != nil {
		return nil, errors.Wrap(err, "read seed document")
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "parse seed document")
	}
	return products, nil
}

// Save serializes the full catalog under the single catalog key
// (last-writer-wins, no versioning) and then publishes the change
// notification. Subscribers run before Save returns.
func (s *Service) Save(products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "serialize catalog")
	}
	if err := s.kv.Put(store.KeyCatalog, data); err != nil {
		return errors.Wrap(err, "persist catalog")
	}
	s.bus.PublishCatalogUpdated(products)
	return nil
}

// Add validates p, assigns a generated unique ID and appends it to the
// catalog. The stored product is returned.
func (s *Service) Add(p domain.Product) (domain.Product, error) {
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	p.ID = common.UUIDint64()
	products := append(s.Load(), p)
	if err := s.Save(products); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update replaces the product with p's ID in place; the ID is preserved.
func (s *Service) Update(p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	products, replaced := domain.ReplaceByID(s.Load(), p)
	if !replaced {
		return ErrNotFound
	}
	return s.Save(products)
}

// Delete removes the product by ID. Deleting the only product leaves an
// empty catalog that round-trips through Load.
func (s *Service) Delete(id int64) error {
	products, removed := domain.RemoveByID(s.Load(), id)
	if !removed {
		return ErrNotFound
	}
	return s.Save(products)
}

// Export writes an indented JSON snapshot of the current catalog. It is a
// side effect only and has no bearing on persisted state.
func (s *Service) Export(w io.Writer) error {
	data, err := json.MarshalIndent(s.Load(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "serialize catalog snapshot")
	}
	_, err = w.Write(data)
	return err
}

// Reset drops the persisted catalog so the next Load re-reads the seed
// document. This is the explicit replacement for the original's implicit
// seed shadowing.
func (s *Service) Reset() error {
	if err := s.kv.Delete(store.KeyCatalog); err != nil {
		return errors.Wrap(err, "drop persisted catalog")
	}
	s.bus.PublishCatalogUpdated(s.Load())
	return nil
}

// Categories returns the distinct categories in the catalog, sorted.
func (s *Service) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.Load() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
