package quotation

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// RateResolver answers per-sqft rate lookups. Satisfied by
// ratecard.Resolver; kept as an interface here so item math stays free of
// the rate table's storage concerns.
type RateResolver interface {
	Resolve(buildType types.BuildType, coreMaterial, finishMaterial, hardwareBrand string) decimal.Decimal
}

// InteriorItem is a priced interior work line item. Sqft, UnitPrice, and
// TotalPrice are derived fields; Recalculate keeps them consistent.
type InteriorItem struct {
	ID          string `json:"id"`
	QuotationID string `json:"quotation_id"`
	RoomType    string `json:"room_type"`
	Description string `json:"description"`

	Length decimal.Decimal `json:"length"`
	Height decimal.Decimal `json:"height"`
	Width  decimal.Decimal `json:"width"`
	Sqft   decimal.Decimal `json:"sqft"`

	CoreMaterial   string          `json:"core_material"`
	FinishMaterial string          `json:"finish_material"`
	HardwareBrand  string          `json:"hardware_brand"`
	BuildType      types.BuildType `json:"build_type"`

	UnitPrice        decimal.Decimal  `json:"unit_price"`
	RateAuto         decimal.Decimal  `json:"rate_auto"`
	RateOverride     *decimal.Decimal `json:"rate_override,omitempty"`
	IsRateOverridden bool             `json:"is_rate_overridden"`
	TotalPrice       decimal.Decimal  `json:"total_price"`

	types.BaseModel
}

// DeriveInteriorSqft computes the surface area of an interior item from its
// raw dimensions. Height takes precedence over width: length x height when
// both are positive (vertical surface), else length x width (horizontal
// surface), else zero. Rounded to two decimals.
func DeriveInteriorSqft(length, height, width decimal.Decimal) decimal.Decimal {
	switch {
	case length.IsPositive() && height.IsPositive():
		return types.RoundArea(length.Mul(height))
	case length.IsPositive() && width.IsPositive():
		return types.RoundArea(length.Mul(width))
	default:
		return decimal.Zero
	}
}

// Recalculate rederives sqft, the automatic rate, the effective unit price,
// and the line total. Called after every field change.
func (i *InteriorItem) Recalculate(resolver RateResolver) {
	i.Sqft = DeriveInteriorSqft(i.Length, i.Height, i.Width)
	i.RateAuto = resolver.Resolve(i.BuildType, i.CoreMaterial, i.FinishMaterial, i.HardwareBrand)
	if i.IsRateOverridden && i.RateOverride != nil {
		i.UnitPrice = *i.RateOverride
	} else {
		i.IsRateOverridden = false
		i.RateOverride = nil
		i.UnitPrice = i.RateAuto
	}
	i.TotalPrice = types.RoundCurrency(i.UnitPrice.Mul(i.Sqft))
}

// InteriorItemUpdate is a partial update to an interior item. Nil fields
// are left untouched.
type InteriorItemUpdate struct {
	RoomType       *string
	Description    *string
	Length         *decimal.Decimal
	Height         *decimal.Decimal
	Width          *decimal.Decimal
	CoreMaterial   *string
	FinishMaterial *string
	HardwareBrand  *string
	BuildType      *types.BuildType
	// RateOverride set to a non-negative value installs a manual rate;
	// ClearOverride reverts to the automatic rate.
	RateOverride  *decimal.Decimal
	ClearOverride bool
}

// resetsOverride reports whether the update touches a field that feeds the
// automatic rate. Any such change invalidates a manual override.
func (u InteriorItemUpdate) resetsOverride(i *InteriorItem) bool {
	changed := func(next *string, current string) bool {
		return next != nil && *next != current
	}
	if changed(u.CoreMaterial, i.CoreMaterial) ||
		changed(u.FinishMaterial, i.FinishMaterial) ||
		changed(u.HardwareBrand, i.HardwareBrand) ||
		changed(u.Description, i.Description) {
		return true
	}
	return false
}

// Apply is the state transition for interior item edits. A change to
// material, finish, hardware, or description clears any manual rate
// override and reverts to the freshly computed automatic rate; derived
// fields are recomputed on every path.
func (i *InteriorItem) Apply(u InteriorItemUpdate, resolver RateResolver) error {
	if u.RateOverride != nil && u.RateOverride.IsNegative() {
		return ierr.NewError("rate override must be non-negative").
			WithHint("Manual rate cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"rate_override": u.RateOverride.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	resetOverride := u.resetsOverride(i)

	if u.RoomType != nil {
		i.RoomType = *u.RoomType
	}
	if u.Description != nil {
		i.Description = *u.Description
	}
	if u.Length != nil {
		i.Length = *u.Length
	}
	if u.Height != nil {
		i.Height = *u.Height
	}
	if u.Width != nil {
		i.Width = *u.Width
	}
	if u.CoreMaterial != nil {
		i.CoreMaterial = *u.CoreMaterial
	}
	if u.FinishMaterial != nil {
		i.FinishMaterial = *u.FinishMaterial
	}
	if u.HardwareBrand != nil {
		i.HardwareBrand = *u.HardwareBrand
	}
	if u.BuildType != nil {
		i.BuildType = *u.BuildType
	}

	switch {
	case resetOverride || u.ClearOverride:
		i.IsRateOverridden = false
		i.RateOverride = nil
	case u.RateOverride != nil:
		i.IsRateOverridden = true
		i.RateOverride = lo.ToPtr(*u.RateOverride)
	}

	i.Recalculate(resolver)
	return nil
}

// Validate validates the interior item.
func (i *InteriorItem) Validate() error {
	if i.QuotationID == "" {
		return ierr.NewError("quotation_id is required").Mark(ierr.ErrValidation)
	}
	if err := i.BuildType.Validate(); err != nil {
		return err
	}
	if i.Length.IsNegative() || i.Height.IsNegative() || i.Width.IsNegative() {
		return ierr.NewError("dimensions must be non-negative").
			WithHint("Length, height and width cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
