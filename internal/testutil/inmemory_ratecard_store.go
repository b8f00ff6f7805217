package testutil

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	"github.com/quotedesk/quotedesk/internal/types"
)

// InMemoryRateEntryStore implements ratecard.Repository
type InMemoryRateEntryStore struct {
	*InMemoryStore[*ratecard.RateEntry]
}

// NewInMemoryRateEntryStore creates a new in-memory rate entry store
func NewInMemoryRateEntryStore() *InMemoryRateEntryStore {
	return &InMemoryRateEntryStore{
		InMemoryStore: NewInMemoryStore[*ratecard.RateEntry](),
	}
}

func copyRateEntry(e *ratecard.RateEntry) *ratecard.RateEntry {
	if e == nil {
		return nil
	}
	copied := *e
	return &copied
}

func (s *InMemoryRateEntryStore) Create(ctx context.Context, entry *ratecard.RateEntry) error {
	return s.InMemoryStore.Create(ctx, entry.ID, copyRateEntry(entry))
}

func (s *InMemoryRateEntryStore) Get(ctx context.Context, id string) (*ratecard.RateEntry, error) {
	entry, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyRateEntry(entry), nil
}

func rateEntryFilterFn(filter *ratecard.Filter) func(ctx context.Context, e *ratecard.RateEntry) bool {
	return func(ctx context.Context, e *ratecard.RateEntry) bool {
		if e.TenantID != types.GetTenantID(ctx) || e.Status == types.StatusDeleted {
			return false
		}
		if filter == nil {
			return true
		}
		if filter.BuildType != nil && e.BuildType != *filter.BuildType {
			return false
		}
		if filter.CoreMaterial != "" && e.CoreMaterial != filter.CoreMaterial {
			return false
		}
		if filter.FinishMaterial != "" && e.FinishMaterial != filter.FinishMaterial {
			return false
		}
		if filter.HardwareBrand != "" && e.HardwareBrand != filter.HardwareBrand {
			return false
		}
		return true
	}
}

func (s *InMemoryRateEntryStore) List(ctx context.Context, filter *ratecard.Filter) ([]*ratecard.RateEntry, error) {
	entries := s.InMemoryStore.List(ctx, rateEntryFilterFn(filter))
	result := make([]*ratecard.RateEntry, len(entries))
	for i, e := range entries {
		result[i] = copyRateEntry(e)
	}
	return result, nil
}

func (s *InMemoryRateEntryStore) Count(ctx context.Context, filter *ratecard.Filter) (int, error) {
	return len(s.InMemoryStore.List(ctx, rateEntryFilterFn(filter))), nil
}

func (s *InMemoryRateEntryStore) Update(ctx context.Context, entry *ratecard.RateEntry) error {
	return s.InMemoryStore.Update(ctx, entry.ID, copyRateEntry(entry))
}

func (s *InMemoryRateEntryStore) UpdateBaseRate(ctx context.Context, id string, baseRate decimal.Decimal) error {
	entry, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return err
	}
	updated := copyRateEntry(entry)
	updated.BaseRate = baseRate
	return s.InMemoryStore.Update(ctx, id, updated)
}

func (s *InMemoryRateEntryStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// InMemoryBrandAdderStore implements ratecard.AdderRepository
type InMemoryBrandAdderStore struct {
	*InMemoryStore[*ratecard.BrandAdder]
}

// NewInMemoryBrandAdderStore creates a new in-memory brand adder store
func NewInMemoryBrandAdderStore() *InMemoryBrandAdderStore {
	return &InMemoryBrandAdderStore{
		InMemoryStore: NewInMemoryStore[*ratecard.BrandAdder](),
	}
}

func copyBrandAdder(a *ratecard.BrandAdder) *ratecard.BrandAdder {
	if a == nil {
		return nil
	}
	copied := *a
	return &copied
}

func (s *InMemoryBrandAdderStore) Create(ctx context.Context, adder *ratecard.BrandAdder) error {
	return s.InMemoryStore.Create(ctx, adder.ID, copyBrandAdder(adder))
}

func (s *InMemoryBrandAdderStore) Get(ctx context.Context, id string) (*ratecard.BrandAdder, error) {
	adder, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyBrandAdder(adder), nil
}

func (s *InMemoryBrandAdderStore) List(ctx context.Context, filter *ratecard.Filter) ([]*ratecard.BrandAdder, error) {
	adders := s.InMemoryStore.List(ctx, func(ctx context.Context, a *ratecard.BrandAdder) bool {
		if a.TenantID != types.GetTenantID(ctx) || a.Status == types.StatusDeleted {
			return false
		}
		if filter != nil && filter.FinishMaterial != "" && a.FinishMaterial != filter.FinishMaterial {
			return false
		}
		return true
	})
	result := make([]*ratecard.BrandAdder, len(adders))
	for i, a := range adders {
		result[i] = copyBrandAdder(a)
	}
	return result, nil
}

func (s *InMemoryBrandAdderStore) Update(ctx context.Context, adder *ratecard.BrandAdder) error {
	return s.InMemoryStore.Update(ctx, adder.ID, copyBrandAdder(adder))
}

func (s *InMemoryBrandAdderStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// InMemoryCatalogItemStore implements ratecard.CatalogRepository
type InMemoryCatalogItemStore struct {
	*InMemoryStore[*ratecard.CatalogItem]
}

// NewInMemoryCatalogItemStore creates a new in-memory catalog item store
func NewInMemoryCatalogItemStore() *InMemoryCatalogItemStore {
	return &InMemoryCatalogItemStore{
		InMemoryStore: NewInMemoryStore[*ratecard.CatalogItem](),
	}
}

func copyCatalogItem(c *ratecard.CatalogItem) *ratecard.CatalogItem {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func (s *InMemoryCatalogItemStore) Create(ctx context.Context, item *ratecard.CatalogItem) error {
	return s.InMemoryStore.Create(ctx, item.ID, copyCatalogItem(item))
}

func (s *InMemoryCatalogItemStore) Get(ctx context.Context, id string) (*ratecard.CatalogItem, error) {
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyCatalogItem(item), nil
}

func (s *InMemoryCatalogItemStore) List(ctx context.Context, filter *ratecard.Filter) ([]*ratecard.CatalogItem, error) {
	items := s.InMemoryStore.List(ctx, func(ctx context.Context, c *ratecard.CatalogItem) bool {
		if c.TenantID != types.GetTenantID(ctx) || c.Status == types.StatusDeleted {
			return false
		}
		if filter != nil && filter.Catalog != nil && c.Catalog != *filter.Catalog {
			return false
		}
		return true
	})
	result := make([]*ratecard.CatalogItem, len(items))
	for i, c := range items {
		result[i] = copyCatalogItem(c)
	}
	return result, nil
}

func (s *InMemoryCatalogItemStore) Update(ctx context.Context, item *ratecard.CatalogItem) error {
	return s.InMemoryStore.Update(ctx, item.ID, copyCatalogItem(item))
}

func (s *InMemoryCatalogItemStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
