package ratecard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/quotedesk/quotedesk/internal/types"
)

func entry(bt types.BuildType, material, finish, hardware string, rate int64) *RateEntry {
	return &RateEntry{
		BuildType:      bt,
		CoreMaterial:   material,
		FinishMaterial: finish,
		HardwareBrand:  hardware,
		BaseRate:       decimal.NewFromInt(rate),
	}
}

func testResolver() *Resolver {
	entries := []*RateEntry{
		entry(types.BuildTypeHandmade, "BWP Ply", "Acrylic", "Hettich", 2200),
		entry(types.BuildTypeHandmade, "BWP Ply", "Laminate", DefaultHardwareBrand, 1450),
		entry(types.BuildTypeHandmade, "BWP Ply", DefaultFinishMaterial, DefaultHardwareBrand, 1350),
		entry(types.BuildTypeHandmade, DefaultCoreMaterial, DefaultFinishMaterial, DefaultHardwareBrand, 1200),
		entry(types.BuildTypeFactory, DefaultCoreMaterial, DefaultFinishMaterial, DefaultHardwareBrand, 1500),
	}
	adders := []*BrandAdder{
		{FinishMaterial: FinishAcrylic, Adder: decimal.NewFromInt(150)},
	}
	return NewResolver(entries, adders)
}

func TestResolveExactMatch(t *testing.T) {
	r := testResolver()

	rate := r.Resolve(types.BuildTypeHandmade, "BWP Ply", "Laminate", DefaultHardwareBrand)
	assert.True(t, decimal.NewFromInt(1450).Equal(rate), "got %s", rate)
}

func TestResolveFallbackCascade(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name     string
		material string
		finish   string
		hardware string
		want     int64
	}{
		// Recognized finish+material but unseen hardware combination: drops
		// to the default-hardware row.
		{"hardware falls back", "BWP Ply", "Laminate", "Blum", 1450},
		// Unseen finish value: normalized to the generic finish row.
		{"finish falls back", "BWP Ply", "Veneer XL", "Blum", 1350},
		// Unseen material value: fully generic row.
		{"material falls back", "Particle Board", "Veneer XL", "Blum", 1200},
		// Empty axes resolve to defaults throughout.
		{"empty axes", "", "", "", 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := r.Resolve(types.BuildTypeHandmade, tt.material, tt.finish, tt.hardware)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(rate), "got %s", rate)
		})
	}
}

func TestResolveNeverErrors(t *testing.T) {
	empty := NewResolver(nil, nil)

	rate := empty.Resolve(types.BuildTypeHandmade, "anything", "anything", "anything")
	assert.True(t, rate.IsZero())
}

func TestResolveAcrylicAdder(t *testing.T) {
	r := testResolver()

	// Exact acrylic row plus the finish adder.
	rate := r.Resolve(types.BuildTypeHandmade, "BWP Ply", FinishAcrylic, "Hettich")
	assert.True(t, decimal.NewFromInt(2350).Equal(rate), "got %s", rate)
}

func TestResolveBuildTypesIndependent(t *testing.T) {
	r := testResolver()

	handmade := r.Resolve(types.BuildTypeHandmade, "", "", "")
	factory := r.Resolve(types.BuildTypeFactory, "", "", "")

	assert.True(t, decimal.NewFromInt(1200).Equal(handmade))
	assert.True(t, decimal.NewFromInt(1500).Equal(factory))
}
