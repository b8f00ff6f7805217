package testutil

import (
	"context"

	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	"github.com/quotedesk/quotedesk/internal/types"
)

// InMemoryInteriorItemStore implements quotation.InteriorItemRepository
type InMemoryInteriorItemStore struct {
	*InMemoryStore[*quotation.InteriorItem]
}

// NewInMemoryInteriorItemStore creates a new in-memory interior item store
func NewInMemoryInteriorItemStore() *InMemoryInteriorItemStore {
	return &InMemoryInteriorItemStore{
		InMemoryStore: NewInMemoryStore[*quotation.InteriorItem](),
	}
}

func copyInteriorItem(i *quotation.InteriorItem) *quotation.InteriorItem {
	if i == nil {
		return nil
	}
	copied := *i
	if i.RateOverride != nil {
		override := *i.RateOverride
		copied.RateOverride = &override
	}
	return &copied
}

func (s *InMemoryInteriorItemStore) Create(ctx context.Context, item *quotation.InteriorItem) error {
	return s.InMemoryStore.Create(ctx, item.ID, copyInteriorItem(item))
}

func (s *InMemoryInteriorItemStore) Get(ctx context.Context, id string) (*quotation.InteriorItem, error) {
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyInteriorItem(item), nil
}

func (s *InMemoryInteriorItemStore) ListByQuotation(ctx context.Context, quotationID string) ([]*quotation.InteriorItem, error) {
	items := s.InMemoryStore.List(ctx, func(ctx context.Context, i *quotation.InteriorItem) bool {
		return i.QuotationID == quotationID &&
			i.TenantID == types.GetTenantID(ctx) &&
			i.Status != types.StatusDeleted
	})
	result := make([]*quotation.InteriorItem, len(items))
	for i, item := range items {
		result[i] = copyInteriorItem(item)
	}
	return result, nil
}

func (s *InMemoryInteriorItemStore) Update(ctx context.Context, item *quotation.InteriorItem) error {
	return s.InMemoryStore.Update(ctx, item.ID, copyInteriorItem(item))
}

func (s *InMemoryInteriorItemStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// InMemoryCeilingItemStore implements quotation.CeilingItemRepository
type InMemoryCeilingItemStore struct {
	*InMemoryStore[*quotation.CeilingItem]
}

// NewInMemoryCeilingItemStore creates a new in-memory ceiling item store
func NewInMemoryCeilingItemStore() *InMemoryCeilingItemStore {
	return &InMemoryCeilingItemStore{
		InMemoryStore: NewInMemoryStore[*quotation.CeilingItem](),
	}
}

func copyCeilingItem(c *quotation.CeilingItem) *quotation.CeilingItem {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func (s *InMemoryCeilingItemStore) Create(ctx context.Context, item *quotation.CeilingItem) error {
	return s.InMemoryStore.Create(ctx, item.ID, copyCeilingItem(item))
}

func (s *InMemoryCeilingItemStore) Get(ctx context.Context, id string) (*quotation.CeilingItem, error) {
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyCeilingItem(item), nil
}

func (s *InMemoryCeilingItemStore) ListByQuotation(ctx context.Context, quotationID string) ([]*quotation.CeilingItem, error) {
	items := s.InMemoryStore.List(ctx, func(ctx context.Context, c *quotation.CeilingItem) bool {
		return c.QuotationID == quotationID &&
			c.TenantID == types.GetTenantID(ctx) &&
			c.Status != types.StatusDeleted
	})
	result := make([]*quotation.CeilingItem, len(items))
	for i, item := range items {
		result[i] = copyCeilingItem(item)
	}
	return result, nil
}

func (s *InMemoryCeilingItemStore) Update(ctx context.Context, item *quotation.CeilingItem) error {
	return s.InMemoryStore.Update(ctx, item.ID, copyCeilingItem(item))
}

func (s *InMemoryCeilingItemStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// InMemoryOtherItemStore implements quotation.OtherItemRepository
type InMemoryOtherItemStore struct {
	*InMemoryStore[*quotation.OtherItem]
}

// NewInMemoryOtherItemStore creates a new in-memory other item store
func NewInMemoryOtherItemStore() *InMemoryOtherItemStore {
	return &InMemoryOtherItemStore{
		InMemoryStore: NewInMemoryStore[*quotation.OtherItem](),
	}
}

func copyOtherItem(o *quotation.OtherItem) *quotation.OtherItem {
	if o == nil {
		return nil
	}
	copied := *o
	return &copied
}

func (s *InMemoryOtherItemStore) Create(ctx context.Context, item *quotation.OtherItem) error {
	return s.InMemoryStore.Create(ctx, item.ID, copyOtherItem(item))
}

func (s *InMemoryOtherItemStore) Get(ctx context.Context, id string) (*quotation.OtherItem, error) {
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyOtherItem(item), nil
}

func (s *InMemoryOtherItemStore) ListByQuotation(ctx context.Context, quotationID string) ([]*quotation.OtherItem, error) {
	items := s.InMemoryStore.List(ctx, func(ctx context.Context, o *quotation.OtherItem) bool {
		return o.QuotationID == quotationID &&
			o.TenantID == types.GetTenantID(ctx) &&
			o.Status != types.StatusDeleted
	})
	result := make([]*quotation.OtherItem, len(items))
	for i, item := range items {
		result[i] = copyOtherItem(item)
	}
	return result, nil
}

func (s *InMemoryOtherItemStore) Update(ctx context.Context, item *quotation.OtherItem) error {
	return s.InMemoryStore.Update(ctx, item.ID, copyOtherItem(item))
}

func (s *InMemoryOtherItemStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
