package quotation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/quotedesk/quotedesk/internal/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregateTotalsBucketsOthersIntoFC(t *testing.T) {
	interiors := []*InteriorItem{
		{TotalPrice: d("1000")},
		{TotalPrice: d("500.50")},
	}
	ceilings := []*CeilingItem{
		{Area: d("10"), UnitRate: d("65")},
	}
	others := []*OtherItem{
		{Total: d("200")},
		{Total: d("99.25")},
	}

	totals := AggregateTotals(interiors, ceilings, others)

	assert.True(t, d("1500.50").Equal(totals.InteriorsSubtotal), "got %s", totals.InteriorsSubtotal)
	assert.True(t, d("949.25").Equal(totals.FCSubtotal), "got %s", totals.FCSubtotal)
	assert.True(t, d("2449.75").Equal(totals.GrandSubtotal), "got %s", totals.GrandSubtotal)
}

func TestAggregateTotalsIdempotent(t *testing.T) {
	interiors := []*InteriorItem{{TotalPrice: d("1234.56")}}
	ceilings := []*CeilingItem{{Area: d("3"), UnitRate: d("100")}}

	first := AggregateTotals(interiors, ceilings, nil)
	second := AggregateTotals(interiors, ceilings, nil)

	assert.True(t, first.Equal(second))
}

func TestAggregateTotalsEmpty(t *testing.T) {
	totals := AggregateTotals(nil, nil, nil)

	assert.True(t, totals.InteriorsSubtotal.IsZero())
	assert.True(t, totals.FCSubtotal.IsZero())
	assert.True(t, totals.GrandSubtotal.IsZero())
}

func TestApplyDiscountAndTaxPercent(t *testing.T) {
	b := ApplyDiscountAndTax(d("100000"), types.DiscountTypePercent, d("10"))

	assert.True(t, d("10000").Equal(b.DiscountAmount), "got %s", b.DiscountAmount)
	assert.True(t, d("90000").Equal(b.TaxableAmount), "got %s", b.TaxableAmount)
	assert.True(t, d("16200").Equal(b.Tax), "got %s", b.Tax)
	assert.True(t, d("106200").Equal(b.FinalTotal), "got %s", b.FinalTotal)
}

func TestApplyDiscountAndTaxAmount(t *testing.T) {
	b := ApplyDiscountAndTax(d("5000"), types.DiscountTypeAmount, d("500"))

	assert.True(t, d("500").Equal(b.DiscountAmount))
	assert.True(t, d("4500").Equal(b.TaxableAmount))
	assert.True(t, d("810").Equal(b.Tax))
	assert.True(t, d("5310").Equal(b.FinalTotal))
}

func TestApplyDiscountAndTaxClampsAtZero(t *testing.T) {
	// Discount larger than the subtotal: taxable clamps to zero, no
	// negative totals and no negative tax.
	b := ApplyDiscountAndTax(d("1000"), types.DiscountTypeAmount, d("1500"))

	assert.True(t, d("1500").Equal(b.DiscountAmount))
	assert.True(t, b.TaxableAmount.IsZero())
	assert.True(t, b.Tax.IsZero())
	assert.True(t, b.FinalTotal.IsZero())
}

func TestAllocateDiscountPercent(t *testing.T) {
	interiorsDiscount, fcDiscount := AllocateDiscount(d("80000"), d("20000"), types.DiscountTypePercent, d("10"))

	assert.True(t, d("8000").Equal(interiorsDiscount))
	assert.True(t, d("2000").Equal(fcDiscount))
}

func TestAllocateDiscountAmountProportional(t *testing.T) {
	interiorsDiscount, fcDiscount := AllocateDiscount(d("75000"), d("25000"), types.DiscountTypeAmount, d("10000"))

	assert.True(t, d("7500").Equal(interiorsDiscount))
	assert.True(t, d("2500").Equal(fcDiscount))
}

func TestAllocateDiscountAmountRemainderToFC(t *testing.T) {
	// 1000 split over an uneven ratio rounds the interiors share; the
	// false-ceiling side absorbs the remainder so the halves always sum to
	// the combined discount.
	value := d("1000")
	interiorsDiscount, fcDiscount := AllocateDiscount(d("33333"), d("66667"), types.DiscountTypeAmount, value)

	assert.True(t, interiorsDiscount.Add(fcDiscount).Equal(value),
		"allocations %s + %s should sum to %s", interiorsDiscount, fcDiscount, value)
}

func TestAllocateDiscountZeroGrandSubtotal(t *testing.T) {
	interiorsDiscount, fcDiscount := AllocateDiscount(decimal.Zero, decimal.Zero, types.DiscountTypeAmount, d("500"))

	assert.True(t, interiorsDiscount.IsZero())
	assert.True(t, fcDiscount.IsZero())
}

func TestAllocatedBreakdownsReconcile(t *testing.T) {
	totals := Totals{
		InteriorsSubtotal: d("80000"),
		FCSubtotal:        d("20000"),
		GrandSubtotal:     d("100000"),
	}

	combined := ApplyDiscountAndTax(totals.GrandSubtotal, types.DiscountTypePercent, d("10"))
	interiors, fc := AllocatedBreakdowns(totals, types.DiscountTypePercent, d("10"))

	assert.True(t, interiors.DiscountAmount.Add(fc.DiscountAmount).Equal(combined.DiscountAmount))
	assert.True(t, interiors.FinalTotal.Add(fc.FinalTotal).Equal(combined.FinalTotal),
		"per-document totals %s + %s should equal combined %s",
		interiors.FinalTotal, fc.FinalTotal, combined.FinalTotal)
}
