package quotation

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/types"
)

// GSTRate is the fixed 18% GST applied to every discounted subtotal. Not
// configurable.
var GSTRate = decimal.NewFromFloat(0.18)

// AggregateTotals recomputes the totals snapshot from the three item
// collections. Other items are bucketed into the false-ceiling subtotal.
// Pure and idempotent: identical inputs yield identical totals.
func AggregateTotals(interiors []*InteriorItem, ceilings []*CeilingItem, others []*OtherItem) Totals {
	interiorsSubtotal := decimal.Zero
	for _, item := range interiors {
		interiorsSubtotal = interiorsSubtotal.Add(item.TotalPrice)
	}

	fcSubtotal := decimal.Zero
	for _, item := range ceilings {
		fcSubtotal = fcSubtotal.Add(item.LineTotal())
	}
	for _, item := range others {
		fcSubtotal = fcSubtotal.Add(item.Total)
	}

	return Totals{
		InteriorsSubtotal: types.RoundCurrency(interiorsSubtotal),
		FCSubtotal:        types.RoundCurrency(fcSubtotal),
		GrandSubtotal:     types.RoundCurrency(interiorsSubtotal.Add(fcSubtotal)),
		UpdatedAt:         time.Now().UTC(),
	}
}

// Breakdown is the displayed money column of one document: subtotal,
// discount, taxable amount, GST, and the payable total.
type Breakdown struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	Tax            decimal.Decimal `json:"tax"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}

// ApplyDiscountAndTax applies a discount to a subtotal, clamps the result
// at zero, then applies the fixed 18% GST. The same formula backs the
// combined view and each per-category document.
func ApplyDiscountAndTax(subtotal decimal.Decimal, discountType types.DiscountType, discountValue decimal.Decimal) Breakdown {
	var discountAmount decimal.Decimal
	if discountType == types.DiscountTypePercent {
		discountAmount = subtotal.Mul(discountValue).Div(decimal.NewFromInt(100))
	} else {
		discountAmount = discountValue
	}
	discountAmount = types.RoundCurrency(discountAmount)

	taxable := subtotal.Sub(discountAmount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax := types.RoundCurrency(taxable.Mul(GSTRate))

	return Breakdown{
		Subtotal:       types.RoundCurrency(subtotal),
		DiscountAmount: discountAmount,
		TaxableAmount:  types.RoundCurrency(taxable),
		Tax:            tax,
		FinalTotal:     types.RoundCurrency(taxable.Add(tax)),
	}
}

// AllocateDiscount splits one combined discount across the interiors and
// false-ceiling subtotals so the two separately presented documents
// reconcile with the combined quote.
//
// Percent discounts apply the same percentage to each subtotal, which
// reconciles exactly. Fixed-amount discounts are allocated proportionally
// by each subtotal's share of the grand subtotal; a zero grand subtotal
// yields zero allocations on both sides.
func AllocateDiscount(interiorsSubtotal, fcSubtotal decimal.Decimal, discountType types.DiscountType, discountValue decimal.Decimal) (interiorsDiscount, fcDiscount decimal.Decimal) {
	if discountType == types.DiscountTypePercent {
		hundred := decimal.NewFromInt(100)
		return types.RoundCurrency(interiorsSubtotal.Mul(discountValue).Div(hundred)),
			types.RoundCurrency(fcSubtotal.Mul(discountValue).Div(hundred))
	}

	grand := interiorsSubtotal.Add(fcSubtotal)
	if grand.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	interiorsDiscount = types.RoundCurrency(discountValue.Mul(interiorsSubtotal).Div(grand))
	// Assign the remainder to the false-ceiling side so the two halves sum
	// to the combined discount despite rounding.
	fcDiscount = types.RoundCurrency(discountValue.Sub(interiorsDiscount))
	return interiorsDiscount, fcDiscount
}

// AllocatedBreakdowns returns the per-document money columns for the
// interiors and false-ceiling documents, each applying the shared
// discount/tax formula to its own allocated discount.
func AllocatedBreakdowns(totals Totals, discountType types.DiscountType, discountValue decimal.Decimal) (interiors, fc Breakdown) {
	interiorsDiscount, fcDiscount := AllocateDiscount(totals.InteriorsSubtotal, totals.FCSubtotal, discountType, discountValue)
	interiors = ApplyDiscountAndTax(totals.InteriorsSubtotal, types.DiscountTypeAmount, interiorsDiscount)
	fc = ApplyDiscountAndTax(totals.FCSubtotal, types.DiscountTypeAmount, fcDiscount)
	return interiors, fc
}
