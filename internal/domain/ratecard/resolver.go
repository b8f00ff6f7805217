package ratecard

import (
	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/types"
)

// Fallback values used when a lookup axis carries a value the rate table
// has never seen. Rate resolution is total: it always produces a numeric
// rate, never an error.
const (
	DefaultCoreMaterial   = "Generic Ply"
	DefaultFinishMaterial = "Generic Laminate"
	DefaultHardwareBrand  = "Nimmi"

	// FinishAcrylic carries a fixed per-sqft adder on top of the base
	// resolved rate. Business rule inherited from the rate card owners;
	// do not drop it silently.
	FinishAcrylic = "Acrylic"
)

// RateKey is the four-axis lookup key of the rate table.
type RateKey struct {
	BuildType      types.BuildType
	CoreMaterial   string
	FinishMaterial string
	HardwareBrand  string
}

// Resolver answers rate lookups against an immutable snapshot of the rate
// table. It is pure and safe for concurrent use; build a new Resolver when
// the underlying table changes.
type Resolver struct {
	rates  map[RateKey]decimal.Decimal
	adders map[string]decimal.Decimal

	materials map[string]struct{}
	finishes  map[string]struct{}
	hardware  map[string]struct{}
}

// NewResolver builds a resolver from the current rate entries and brand
// adders. The recognized value set of each axis is derived from the
// entries themselves.
func NewResolver(entries []*RateEntry, adders []*BrandAdder) *Resolver {
	r := &Resolver{
		rates:     make(map[RateKey]decimal.Decimal, len(entries)),
		adders:    make(map[string]decimal.Decimal, len(adders)),
		materials: make(map[string]struct{}),
		finishes:  make(map[string]struct{}),
		hardware:  make(map[string]struct{}),
	}
	for _, e := range entries {
		r.rates[e.Key()] = e.BaseRate
		r.materials[e.CoreMaterial] = struct{}{}
		r.finishes[e.FinishMaterial] = struct{}{}
		r.hardware[e.HardwareBrand] = struct{}{}
	}
	for _, a := range adders {
		r.adders[a.FinishMaterial] = a.Adder
	}
	return r
}

// Resolve returns the per-sqft rate for the given combination. Unrecognized
// axis values fall back to the generic defaults; an unseen combination of
// recognized values degrades axis by axis (hardware, then finish, then
// material) down to the fully generic row. A finish carrying a brand adder
// (e.g. Acrylic) gets the adder applied on top of the base rate.
func (r *Resolver) Resolve(buildType types.BuildType, coreMaterial, finishMaterial, hardwareBrand string) decimal.Decimal {
	if buildType != types.BuildTypeFactory {
		buildType = types.BuildTypeHandmade
	}
	material := normalize(coreMaterial, r.materials, DefaultCoreMaterial)
	finish := normalize(finishMaterial, r.finishes, DefaultFinishMaterial)
	hardware := normalize(hardwareBrand, r.hardware, DefaultHardwareBrand)

	base := r.lookup(buildType, material, finish, hardware)

	if adder, ok := r.adders[finish]; ok {
		base = base.Add(adder)
	}
	return base
}

func (r *Resolver) lookup(buildType types.BuildType, material, finish, hardware string) decimal.Decimal {
	candidates := []RateKey{
		{buildType, material, finish, hardware},
		{buildType, material, finish, DefaultHardwareBrand},
		{buildType, material, DefaultFinishMaterial, DefaultHardwareBrand},
		{buildType, DefaultCoreMaterial, DefaultFinishMaterial, DefaultHardwareBrand},
	}
	for _, k := range candidates {
		if rate, ok := r.rates[k]; ok {
			return rate
		}
	}
	return decimal.Zero
}

func normalize(value string, known map[string]struct{}, fallback string) string {
	if value == "" {
		return fallback
	}
	if _, ok := known[value]; ok {
		return value
	}
	return fallback
}
