package types

import ierr "github.com/quotedesk/quotedesk/internal/errors"

// BuildType is the pricing mode for interior work: on-site handmade vs
// factory-finished. It is the first axis of the rate lookup key.
type BuildType string

const (
	BuildTypeHandmade BuildType = "handmade"
	BuildTypeFactory  BuildType = "factory"
)

func (b BuildType) Validate() error {
	switch b {
	case BuildTypeHandmade, BuildTypeFactory:
		return nil
	}
	return ierr.NewError("invalid build type").
		WithHint("Build type must be either handmade or factory").
		WithReportableDetails(map[string]interface{}{
			"build_type": b,
		}).
		Mark(ierr.ErrValidation)
}

// OtherItemValueType selects how OtherItem.Value is interpreted: a direct
// lumpsum amount, or a count multiplied by the unit price.
type OtherItemValueType string

const (
	OtherItemValueTypeLumpsum OtherItemValueType = "lumpsum"
	OtherItemValueTypeCount   OtherItemValueType = "count"
)

func (v OtherItemValueType) Validate() error {
	switch v {
	case OtherItemValueTypeLumpsum, OtherItemValueTypeCount:
		return nil
	}
	return ierr.NewError("invalid value type").
		WithHint("Value type must be either lumpsum or count").
		WithReportableDetails(map[string]interface{}{
			"value_type": v,
		}).
		Mark(ierr.ErrValidation)
}

// CatalogType partitions admin catalog entries.
type CatalogType string

const (
	CatalogTypePainting     CatalogType = "painting"
	CatalogTypeFalseCeiling CatalogType = "false_ceiling"
)

func (c CatalogType) Validate() error {
	switch c {
	case CatalogTypePainting, CatalogTypeFalseCeiling:
		return nil
	}
	return ierr.NewError("invalid catalog type").
		WithHint("Catalog must be either painting or false_ceiling").
		WithReportableDetails(map[string]interface{}{
			"catalog": c,
		}).
		Mark(ierr.ErrValidation)
}
