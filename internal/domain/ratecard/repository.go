package ratecard

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/types"
)

// Repository defines the interface for rate entry persistence operations
type Repository interface {
	Create(ctx context.Context, entry *RateEntry) error
	Get(ctx context.Context, id string) (*RateEntry, error)
	List(ctx context.Context, filter *Filter) ([]*RateEntry, error)
	Count(ctx context.Context, filter *Filter) (int, error)
	Update(ctx context.Context, entry *RateEntry) error
	UpdateBaseRate(ctx context.Context, id string, baseRate decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

// AdderRepository defines the interface for brand adder persistence
type AdderRepository interface {
	Create(ctx context.Context, adder *BrandAdder) error
	Get(ctx context.Context, id string) (*BrandAdder, error)
	List(ctx context.Context, filter *Filter) ([]*BrandAdder, error)
	Update(ctx context.Context, adder *BrandAdder) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepository defines the interface for catalog item persistence
type CatalogRepository interface {
	Create(ctx context.Context, item *CatalogItem) error
	Get(ctx context.Context, id string) (*CatalogItem, error)
	List(ctx context.Context, filter *Filter) ([]*CatalogItem, error)
	Update(ctx context.Context, item *CatalogItem) error
	Delete(ctx context.Context, id string) error
}

// Filter defines query parameters for rate table listings.
type Filter struct {
	QueryFilter *types.QueryFilter

	BuildType      *types.BuildType   `json:"build_type,omitempty" form:"build_type"`
	CoreMaterial   string             `json:"core_material,omitempty" form:"core_material"`
	FinishMaterial string             `json:"finish_material,omitempty" form:"finish_material"`
	HardwareBrand  string             `json:"hardware_brand,omitempty" form:"hardware_brand"`
	Catalog        *types.CatalogType `json:"catalog,omitempty" form:"catalog"`
}

// GetLimit implements BaseFilter interface
func (f *Filter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return 0
	}
	return f.QueryFilter.GetLimit()
}

// GetOffset implements BaseFilter interface
func (f *Filter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return 0
	}
	return f.QueryFilter.GetOffset()
}
