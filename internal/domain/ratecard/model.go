package ratecard

import (
	"github.com/shopspring/decimal"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// RateEntry is a row of the rate table: the per-sqft base rate for one
// (build type, core material, finish material, hardware brand) combination.
type RateEntry struct {
	ID             string          `json:"id"`
	BuildType      types.BuildType `json:"build_type"`
	CoreMaterial   string          `json:"core_material"`
	FinishMaterial string          `json:"finish_material"`
	HardwareBrand  string          `json:"hardware_brand"`
	BaseRate       decimal.Decimal `json:"base_rate"`
	types.BaseModel
}

// Key returns the lookup key for this entry.
func (r *RateEntry) Key() RateKey {
	return RateKey{
		BuildType:      r.BuildType,
		CoreMaterial:   r.CoreMaterial,
		FinishMaterial: r.FinishMaterial,
		HardwareBrand:  r.HardwareBrand,
	}
}

// Validate validates the rate entry.
func (r *RateEntry) Validate() error {
	if err := r.BuildType.Validate(); err != nil {
		return err
	}
	if r.CoreMaterial == "" {
		return ierr.NewError("core_material is required").Mark(ierr.ErrValidation)
	}
	if r.FinishMaterial == "" {
		return ierr.NewError("finish_material is required").Mark(ierr.ErrValidation)
	}
	if r.HardwareBrand == "" {
		return ierr.NewError("hardware_brand is required").Mark(ierr.ErrValidation)
	}
	if r.BaseRate.IsNegative() {
		return ierr.NewError("base_rate must be non-negative").
			WithHint("Rate cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"base_rate": r.BaseRate.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// BrandAdder is a per-sqft surcharge applied on top of the base rate for a
// specific finish material. The acrylic adder lives here.
type BrandAdder struct {
	ID             string          `json:"id"`
	FinishMaterial string          `json:"finish_material"`
	Adder          decimal.Decimal `json:"adder"`
	types.BaseModel
}

// Validate validates the brand adder.
func (a *BrandAdder) Validate() error {
	if a.FinishMaterial == "" {
		return ierr.NewError("finish_material is required").Mark(ierr.ErrValidation)
	}
	if a.Adder.IsNegative() {
		return ierr.NewError("adder must be non-negative").
			WithHint("Adder cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CatalogItem is an admin-managed painting or false-ceiling catalog entry.
type CatalogItem struct {
	ID       string            `json:"id"`
	Catalog  types.CatalogType `json:"catalog"`
	Name     string            `json:"name"`
	Unit     string            `json:"unit"`
	UnitRate decimal.Decimal   `json:"unit_rate"`
	types.BaseModel
}

// Validate validates the catalog item.
func (c *CatalogItem) Validate() error {
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if c.Name == "" {
		return ierr.NewError("name is required").Mark(ierr.ErrValidation)
	}
	if c.UnitRate.IsNegative() {
		return ierr.NewError("unit_rate must be non-negative").
			WithHint("Rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
