package testutil

import (
	"context"
	"strings"

	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	"github.com/quotedesk/quotedesk/internal/types"
)

// InMemoryQuotationStore implements quotation.Repository
type InMemoryQuotationStore struct {
	*InMemoryStore[*quotation.Quotation]

	// TotalsWrites counts UpdateTotals calls so tests can assert that an
	// unchanged recomputation does not write.
	TotalsWrites int
}

// NewInMemoryQuotationStore creates a new in-memory quotation store
func NewInMemoryQuotationStore() *InMemoryQuotationStore {
	return &InMemoryQuotationStore{
		InMemoryStore: NewInMemoryStore[*quotation.Quotation](),
	}
}

func copyQuotation(q *quotation.Quotation) *quotation.Quotation {
	if q == nil {
		return nil
	}
	copied := *q
	return &copied
}

func (s *InMemoryQuotationStore) Create(ctx context.Context, q *quotation.Quotation) error {
	return s.InMemoryStore.Create(ctx, q.ID, copyQuotation(q))
}

func (s *InMemoryQuotationStore) Get(ctx context.Context, id string) (*quotation.Quotation, error) {
	q, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyQuotation(q), nil
}

func quotationFilterFn(filter *types.QuotationFilter) func(ctx context.Context, q *quotation.Quotation) bool {
	return func(ctx context.Context, q *quotation.Quotation) bool {
		if q.TenantID != types.GetTenantID(ctx) || q.Status == types.StatusDeleted {
			return false
		}
		if filter == nil {
			return true
		}
		if len(filter.QuotationIDs) > 0 {
			found := false
			for _, id := range filter.QuotationIDs {
				if q.ID == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		if len(filter.Statuses) > 0 {
			found := false
			for _, st := range filter.Statuses {
				if q.QuoteStatus == st {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		if filter.ClientName != "" &&
			!strings.Contains(strings.ToLower(q.ClientName), strings.ToLower(filter.ClientName)) {
			return false
		}
		return true
	}
}

func (s *InMemoryQuotationStore) List(ctx context.Context, filter *types.QuotationFilter) ([]*quotation.Quotation, error) {
	quotations := s.InMemoryStore.List(ctx, quotationFilterFn(filter))
	result := make([]*quotation.Quotation, len(quotations))
	for i, q := range quotations {
		result[i] = copyQuotation(q)
	}
	return result, nil
}

func (s *InMemoryQuotationStore) Count(ctx context.Context, filter *types.QuotationFilter) (int, error) {
	return len(s.InMemoryStore.List(ctx, quotationFilterFn(filter))), nil
}

func (s *InMemoryQuotationStore) Update(ctx context.Context, q *quotation.Quotation) error {
	return s.InMemoryStore.Update(ctx, q.ID, copyQuotation(q))
}

func (s *InMemoryQuotationStore) UpdateTotals(ctx context.Context, id string, totals quotation.Totals) error {
	q, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return err
	}
	updated := copyQuotation(q)
	updated.Totals = totals
	if err := s.InMemoryStore.Update(ctx, id, updated); err != nil {
		return err
	}
	s.TotalsWrites++
	return nil
}

func (s *InMemoryQuotationStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
