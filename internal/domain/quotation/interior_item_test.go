package quotation

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// fixedResolver returns the same rate for every combination.
type fixedResolver struct {
	rate decimal.Decimal
}

func (r fixedResolver) Resolve(_ types.BuildType, _, _, _ string) decimal.Decimal {
	return r.rate
}

func TestDeriveInteriorSqft(t *testing.T) {
	tests := []struct {
		name   string
		length string
		height string
		width  string
		want   string
	}{
		{"height takes precedence", "10", "8", "5", "80"},
		{"width when height missing", "10", "0", "5", "50"},
		{"zero without a second dimension", "10", "0", "0", "0"},
		{"zero length", "0", "8", "5", "0"},
		{"fractional rounds to two places", "10.25", "7.333", "0", "75.16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveInteriorSqft(d(tt.length), d(tt.height), d(tt.width))
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRecalculateUsesAutoRate(t *testing.T) {
	item := &InteriorItem{
		Length:    d("10"),
		Height:    d("8"),
		BuildType: types.BuildTypeHandmade,
	}
	item.Recalculate(fixedResolver{rate: d("1450")})

	assert.True(t, d("80").Equal(item.Sqft))
	assert.True(t, d("1450").Equal(item.RateAuto))
	assert.True(t, d("1450").Equal(item.UnitPrice))
	assert.True(t, d("116000").Equal(item.TotalPrice), "got %s", item.TotalPrice)
	assert.False(t, item.IsRateOverridden)
}

func TestApplyInstallsOverride(t *testing.T) {
	item := &InteriorItem{
		Length:    d("10"),
		Height:    d("8"),
		BuildType: types.BuildTypeHandmade,
	}
	resolver := fixedResolver{rate: d("1450")}
	item.Recalculate(resolver)

	err := item.Apply(InteriorItemUpdate{RateOverride: lo.ToPtr(d("1200"))}, resolver)
	require.NoError(t, err)

	assert.True(t, item.IsRateOverridden)
	assert.True(t, d("1200").Equal(item.UnitPrice))
	assert.True(t, d("96000").Equal(item.TotalPrice))
	// The automatic rate is still tracked alongside the override.
	assert.True(t, d("1450").Equal(item.RateAuto))
}

func TestApplyResetsOverrideOnDependentFieldChange(t *testing.T) {
	resolver := fixedResolver{rate: d("1450")}

	fields := []struct {
		name   string
		update InteriorItemUpdate
	}{
		{"core material", InteriorItemUpdate{CoreMaterial: lo.ToPtr("MDF")}},
		{"finish material", InteriorItemUpdate{FinishMaterial: lo.ToPtr("Acrylic")}},
		{"hardware brand", InteriorItemUpdate{HardwareBrand: lo.ToPtr("Hettich")}},
		{"description", InteriorItemUpdate{Description: lo.ToPtr("TV unit rework")}},
	}
	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			item := &InteriorItem{
				Length:         d("10"),
				Height:         d("8"),
				CoreMaterial:   "BWP Ply",
				FinishMaterial: "Laminate",
				HardwareBrand:  "Nimmi",
				Description:    "TV unit",
				BuildType:      types.BuildTypeHandmade,
			}
			item.Recalculate(resolver)
			require.NoError(t, item.Apply(InteriorItemUpdate{RateOverride: lo.ToPtr(d("999"))}, resolver))
			require.True(t, item.IsRateOverridden)

			require.NoError(t, item.Apply(f.update, resolver))

			assert.False(t, item.IsRateOverridden)
			assert.Nil(t, item.RateOverride)
			assert.True(t, d("1450").Equal(item.UnitPrice), "got %s", item.UnitPrice)
		})
	}
}

func TestApplyKeepsOverrideOnDimensionChange(t *testing.T) {
	resolver := fixedResolver{rate: d("1450")}
	item := &InteriorItem{
		Length:    d("10"),
		Height:    d("8"),
		BuildType: types.BuildTypeHandmade,
	}
	item.Recalculate(resolver)
	require.NoError(t, item.Apply(InteriorItemUpdate{RateOverride: lo.ToPtr(d("1200"))}, resolver))

	// Resizing does not touch the pricing axes; the manual rate survives.
	require.NoError(t, item.Apply(InteriorItemUpdate{Length: lo.ToPtr(d("12"))}, resolver))

	assert.True(t, item.IsRateOverridden)
	assert.True(t, d("1200").Equal(item.UnitPrice))
	assert.True(t, d("96").Equal(item.Sqft))
	assert.True(t, d("115200").Equal(item.TotalPrice))
}

func TestApplyClearOverride(t *testing.T) {
	resolver := fixedResolver{rate: d("1450")}
	item := &InteriorItem{
		Length:    d("10"),
		Height:    d("8"),
		BuildType: types.BuildTypeHandmade,
	}
	item.Recalculate(resolver)
	require.NoError(t, item.Apply(InteriorItemUpdate{RateOverride: lo.ToPtr(d("1200"))}, resolver))

	require.NoError(t, item.Apply(InteriorItemUpdate{ClearOverride: true}, resolver))

	assert.False(t, item.IsRateOverridden)
	assert.Nil(t, item.RateOverride)
	assert.True(t, d("1450").Equal(item.UnitPrice))
}

func TestApplyRejectsNegativeOverride(t *testing.T) {
	resolver := fixedResolver{rate: d("1450")}
	item := &InteriorItem{Length: d("10"), Height: d("8"), BuildType: types.BuildTypeHandmade}
	item.Recalculate(resolver)

	err := item.Apply(InteriorItemUpdate{RateOverride: lo.ToPtr(d("-5"))}, resolver)

	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.False(t, item.IsRateOverridden)
}
