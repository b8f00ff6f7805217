package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
	"github.com/quotedesk/quotedesk/internal/validator"
)

// CreateRateEntryRequest creates a row of the rate table.
type CreateRateEntryRequest struct {
	BuildType      types.BuildType `json:"build_type" validate:"required"`
	CoreMaterial   string          `json:"core_material" validate:"required"`
	FinishMaterial string          `json:"finish_material" validate:"required"`
	HardwareBrand  string          `json:"hardware_brand" validate:"required"`
	BaseRate       decimal.Decimal `json:"base_rate"`
}

func (r *CreateRateEntryRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.BuildType.Validate(); err != nil {
		return err
	}
	if r.BaseRate.IsNegative() {
		return ierr.NewError("base_rate must be non-negative").
			WithHint("Rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateRateEntryRequest) ToRateEntry(ctx context.Context) *ratecard.RateEntry {
	return &ratecard.RateEntry{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATE_ENTRY),
		BuildType:      r.BuildType,
		CoreMaterial:   r.CoreMaterial,
		FinishMaterial: r.FinishMaterial,
		HardwareBrand:  r.HardwareBrand,
		BaseRate:       r.BaseRate,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// UpdateRateEntryRequest updates an existing rate entry.
type UpdateRateEntryRequest struct {
	BaseRate *decimal.Decimal `json:"base_rate,omitempty"`
}

func (r *UpdateRateEntryRequest) Validate() error {
	if r.BaseRate != nil && r.BaseRate.IsNegative() {
		return ierr.NewError("base_rate must be non-negative").
			WithHint("Rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PatchBaseRateRequest carries the raw text-field value of an inline rate
// edit. The value is sanitized (digits, one decimal separator, two
// fractional digits) before being parsed; commits are debounced.
type PatchBaseRateRequest struct {
	Value string `json:"value" validate:"required"`
}

func (r *PatchBaseRateRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// RateEntryResponse represents a rate entry in API responses
type RateEntryResponse struct {
	ID             string          `json:"id"`
	BuildType      types.BuildType `json:"build_type"`
	CoreMaterial   string          `json:"core_material"`
	FinishMaterial string          `json:"finish_material"`
	HardwareBrand  string          `json:"hardware_brand"`
	BaseRate       decimal.Decimal `json:"base_rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewRateEntryResponse(e *ratecard.RateEntry) *RateEntryResponse {
	return &RateEntryResponse{
		ID:             e.ID,
		BuildType:      e.BuildType,
		CoreMaterial:   e.CoreMaterial,
		FinishMaterial: e.FinishMaterial,
		HardwareBrand:  e.HardwareBrand,
		BaseRate:       e.BaseRate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ListRateEntriesResponse represents the response for listing rate entries
type ListRateEntriesResponse = types.ListResponse[*RateEntryResponse]

// CreateBrandAdderRequest creates a per-sqft finish surcharge.
type CreateBrandAdderRequest struct {
	FinishMaterial string          `json:"finish_material" validate:"required"`
	Adder          decimal.Decimal `json:"adder"`
}

func (r *CreateBrandAdderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Adder.IsNegative() {
		return ierr.NewError("adder must be non-negative").
			WithHint("Adder cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateBrandAdderRequest) ToBrandAdder(ctx context.Context) *ratecard.BrandAdder {
	return &ratecard.BrandAdder{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BRAND_ADDER),
		FinishMaterial: r.FinishMaterial,
		Adder:          r.Adder,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// UpdateBrandAdderRequest updates an existing brand adder.
type UpdateBrandAdderRequest struct {
	Adder *decimal.Decimal `json:"adder,omitempty"`
}

func (r *UpdateBrandAdderRequest) Validate() error {
	if r.Adder != nil && r.Adder.IsNegative() {
		return ierr.NewError("adder must be non-negative").
			WithHint("Adder cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// BrandAdderResponse represents a brand adder in API responses
type BrandAdderResponse struct {
	ID             string          `json:"id"`
	FinishMaterial string          `json:"finish_material"`
	Adder          decimal.Decimal `json:"adder"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewBrandAdderResponse(a *ratecard.BrandAdder) *BrandAdderResponse {
	return &BrandAdderResponse{
		ID:             a.ID,
		FinishMaterial: a.FinishMaterial,
		Adder:          a.Adder,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ListBrandAddersResponse represents the response for listing brand adders
type ListBrandAddersResponse = types.ListResponse[*BrandAdderResponse]

// CreateCatalogItemRequest creates a painting / false-ceiling catalog entry.
type CreateCatalogItemRequest struct {
	Catalog  types.CatalogType `json:"catalog" validate:"required"`
	Name     string            `json:"name" validate:"required"`
	Unit     string            `json:"unit"`
	UnitRate decimal.Decimal   `json:"unit_rate"`
}

func (r *CreateCatalogItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Catalog.Validate(); err != nil {
		return err
	}
	if r.UnitRate.IsNegative() {
		return ierr.NewError("unit_rate must be non-negative").
			WithHint("Rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateCatalogItemRequest) ToCatalogItem(ctx context.Context) *ratecard.CatalogItem {
	return &ratecard.CatalogItem{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CATALOG_ITEM),
		Catalog:   r.Catalog,
		Name:      r.Name,
		Unit:      r.Unit,
		UnitRate:  r.UnitRate,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// UpdateCatalogItemRequest updates an existing catalog item.
type UpdateCatalogItemRequest struct {
	Name     *string          `json:"name,omitempty"`
	Unit     *string          `json:"unit,omitempty"`
	UnitRate *decimal.Decimal `json:"unit_rate,omitempty"`
}

func (r *UpdateCatalogItemRequest) Validate() error {
	if r.UnitRate != nil && r.UnitRate.IsNegative() {
		return ierr.NewError("unit_rate must be non-negative").
			WithHint("Rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CatalogItemResponse represents a catalog item in API responses
type CatalogItemResponse struct {
	ID        string            `json:"id"`
	Catalog   types.CatalogType `json:"catalog"`
	Name      string            `json:"name"`
	Unit      string            `json:"unit"`
	UnitRate  decimal.Decimal   `json:"unit_rate"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewCatalogItemResponse(c *ratecard.CatalogItem) *CatalogItemResponse {
	return &CatalogItemResponse{
		ID:        c.ID,
		Catalog:   c.Catalog,
		Name:      c.Name,
		Unit:      c.Unit,
		UnitRate:  c.UnitRate,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ListCatalogItemsResponse represents the response for listing catalog items
type ListCatalogItemsResponse = types.ListResponse[*CatalogItemResponse]

// ResolveRateRequest is the rate-resolution probe used by the scope-entry
// screen while an item is being edited.
type ResolveRateRequest struct {
	BuildType      types.BuildType `json:"build_type" form:"build_type" validate:"required"`
	CoreMaterial   string          `json:"core_material" form:"core_material"`
	FinishMaterial string          `json:"finish_material" form:"finish_material"`
	HardwareBrand  string          `json:"hardware_brand" form:"hardware_brand"`
}

func (r *ResolveRateRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.BuildType.Validate()
}

// ResolveRateResponse carries the resolved per-sqft rate.
type ResolveRateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}
