package quotation

import (
	"context"

	"github.com/quotedesk/quotedesk/internal/types"
)

// Repository defines the interface for quotation persistence operations
type Repository interface {
	Create(ctx context.Context, q *Quotation) error
	Get(ctx context.Context, id string) (*Quotation, error)
	List(ctx context.Context, filter *types.QuotationFilter) ([]*Quotation, error)
	Count(ctx context.Context, filter *types.QuotationFilter) (int, error)
	Update(ctx context.Context, q *Quotation) error
	// UpdateTotals persists only the derived totals snapshot.
	UpdateTotals(ctx context.Context, id string, totals Totals) error
	Delete(ctx context.Context, id string) error
}

// InteriorItemRepository defines persistence for interior line items
type InteriorItemRepository interface {
	Create(ctx context.Context, item *InteriorItem) error
	Get(ctx context.Context, id string) (*InteriorItem, error)
	ListByQuotation(ctx context.Context, quotationID string) ([]*InteriorItem, error)
	Update(ctx context.Context, item *InteriorItem) error
	Delete(ctx context.Context, id string) error
}

// CeilingItemRepository defines persistence for false-ceiling line items
type CeilingItemRepository interface {
	Create(ctx context.Context, item *CeilingItem) error
	Get(ctx context.Context, id string) (*CeilingItem, error)
	ListByQuotation(ctx context.Context, quotationID string) ([]*CeilingItem, error)
	Update(ctx context.Context, item *CeilingItem) error
	Delete(ctx context.Context, id string) error
}

// OtherItemRepository defines persistence for miscellaneous line items
type OtherItemRepository interface {
	Create(ctx context.Context, item *OtherItem) error
	Get(ctx context.Context, id string) (*OtherItem, error)
	ListByQuotation(ctx context.Context, quotationID string) ([]*OtherItem, error)
	Update(ctx context.Context, item *OtherItem) error
	Delete(ctx context.Context, id string) error
}
