package quotation

import (
	"github.com/shopspring/decimal"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// CeilingItem is a false-ceiling line item. There is no material pricing
// axis here: the per-sqft rate comes from the false-ceiling catalog entry
// the item was picked from, and may be zero for unpriced measurements.
type CeilingItem struct {
	ID          string `json:"id"`
	QuotationID string `json:"quotation_id"`
	RoomType    string `json:"room_type"`
	Description string `json:"description"`

	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Area   decimal.Decimal `json:"area"`

	CatalogItemID string          `json:"catalog_item_id,omitempty"`
	UnitRate      decimal.Decimal `json:"unit_rate"`

	types.BaseModel
}

// LineTotal is the priced total of the item: unit rate x area.
func (c *CeilingItem) LineTotal() decimal.Decimal {
	return types.RoundCurrency(c.UnitRate.Mul(c.Area))
}

// DeriveCeilingArea computes the false-ceiling area: length x width when
// both are positive, else zero. Rounded to two decimals.
func DeriveCeilingArea(length, width decimal.Decimal) decimal.Decimal {
	if length.IsPositive() && width.IsPositive() {
		return types.RoundArea(length.Mul(width))
	}
	return decimal.Zero
}

// Recalculate rederives the area from the current dimensions.
func (c *CeilingItem) Recalculate() {
	c.Area = DeriveCeilingArea(c.Length, c.Width)
}

// Validate validates the ceiling item.
func (c *CeilingItem) Validate() error {
	if c.QuotationID == "" {
		return ierr.NewError("quotation_id is required").Mark(ierr.ErrValidation)
	}
	if c.Length.IsNegative() || c.Width.IsNegative() {
		return ierr.NewError("dimensions must be non-negative").
			WithHint("Length and width cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if c.UnitRate.IsNegative() {
		return ierr.NewError("unit_rate must be non-negative").
			WithHint("Rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
