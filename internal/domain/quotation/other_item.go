package quotation

import (
	"github.com/shopspring/decimal"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// OtherItem is a miscellaneous line item (painting, lump sums, counted
// extras). For totals purposes other items are grouped with the
// false-ceiling side of the quotation.
type OtherItem struct {
	ID          string `json:"id"`
	QuotationID string `json:"quotation_id"`
	ItemType    string `json:"item_type"`
	Description string `json:"description"`

	ValueType types.OtherItemValueType `json:"value_type"`
	Value     decimal.Decimal          `json:"value"`
	UnitPrice decimal.Decimal          `json:"unit_price"`
	Total     decimal.Decimal          `json:"total"`

	types.BaseModel
}

// Recalculate rederives the line total: value x unit price for counted
// items, the value itself for lump sums.
func (o *OtherItem) Recalculate() {
	if o.ValueType == types.OtherItemValueTypeCount {
		o.Total = types.RoundCurrency(o.Value.Mul(o.UnitPrice))
		return
	}
	o.Total = types.RoundCurrency(o.Value)
}

// Validate validates the other item.
func (o *OtherItem) Validate() error {
	if o.QuotationID == "" {
		return ierr.NewError("quotation_id is required").Mark(ierr.ErrValidation)
	}
	if err := o.ValueType.Validate(); err != nil {
		return err
	}
	if o.Value.IsNegative() || o.UnitPrice.IsNegative() {
		return ierr.NewError("value and unit_price must be non-negative").
			WithHint("Amounts cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
