package types

import (
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/samber/lo"
)

const (
	filterDefaultLimit = 50
	filterMaxLimit     = 1000
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// QueryFilter carries pagination and ordering parameters shared by all list
// endpoints.
type QueryFilter struct {
	Limit  *int       `json:"limit,omitempty" form:"limit"`
	Offset *int       `json:"offset,omitempty" form:"offset"`
	Sort   *string    `json:"sort,omitempty" form:"sort"`
	Order  *SortOrder `json:"order,omitempty" form:"order"`
}

// NewDefaultQueryFilter returns a query filter with the default page size.
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(filterDefaultLimit),
		Offset: lo.ToPtr(0),
		Order:  lo.ToPtr(OrderDesc),
	}
}

// NewNoLimitQueryFilter returns a query filter without pagination, used by
// internal lookups that must see every row.
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Offset: lo.ToPtr(0),
		Order:  lo.ToPtr(OrderDesc),
	}
}

func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return 0
	}
	return *f.Limit
}

func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f *QueryFilter) GetOrder() SortOrder {
	if f == nil || f.Order == nil {
		return OrderDesc
	}
	return *f.Order
}

func (f *QueryFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Limit != nil && (*f.Limit < 0 || *f.Limit > filterMaxLimit) {
		return ierr.NewError("limit out of range").
			WithHint("Limit must be between 0 and 1000").
			WithReportableDetails(map[string]interface{}{
				"limit": *f.Limit,
			}).
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset must be non-negative").
			WithHint("Offset must be non-negative").
			Mark(ierr.ErrValidation)
	}
	if f.Order != nil && *f.Order != OrderAsc && *f.Order != OrderDesc {
		return ierr.NewError("invalid sort order").
			WithHint("Order must be either asc or desc").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ListResponse is the standard paginated list envelope.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewListResponse builds a list response envelope.
func NewListResponse[T any](items []T, total, limit, offset int) ListResponse[T] {
	return ListResponse[T]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
