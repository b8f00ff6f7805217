package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
	"github.com/quotedesk/quotedesk/internal/validator"
)

// Dimension and rate fields arrive as the raw text-field strings the scope
// entry screen commits; they pass through the shared decimal input
// sanitizer before parsing so a stray separator or extra fractional digit
// never reaches storage.

// CreateInteriorItemRequest adds a priced interior line item.
type CreateInteriorItemRequest struct {
	RoomType       string          `json:"room_type"`
	Description    string          `json:"description"`
	Length         string          `json:"length,omitempty"`
	Height         string          `json:"height,omitempty"`
	Width          string          `json:"width,omitempty"`
	CoreMaterial   string          `json:"core_material"`
	FinishMaterial string          `json:"finish_material"`
	HardwareBrand  string          `json:"hardware_brand"`
	BuildType      types.BuildType `json:"build_type" validate:"required"`
	RateOverride   *string         `json:"rate_override,omitempty"`
}

func (r *CreateInteriorItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.BuildType.Validate()
}

func (r *CreateInteriorItemRequest) ToInteriorItem(ctx context.Context, quotationID string) (*quotation.InteriorItem, error) {
	length, err := parseDimension("length", r.Length)
	if err != nil {
		return nil, err
	}
	height, err := parseDimension("height", r.Height)
	if err != nil {
		return nil, err
	}
	width, err := parseDimension("width", r.Width)
	if err != nil {
		return nil, err
	}

	item := &quotation.InteriorItem{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INTERIOR_ITEM),
		QuotationID:    quotationID,
		RoomType:       r.RoomType,
		Description:    r.Description,
		Length:         length,
		Height:         height,
		Width:          width,
		CoreMaterial:   r.CoreMaterial,
		FinishMaterial: r.FinishMaterial,
		HardwareBrand:  r.HardwareBrand,
		BuildType:      r.BuildType,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	if r.RateOverride != nil {
		rate, err := parseRate("rate_override", *r.RateOverride)
		if err != nil {
			return nil, err
		}
		item.RateOverride = lo.ToPtr(rate)
		item.IsRateOverridden = true
	}
	return item, nil
}

// UpdateInteriorItemRequest is a partial edit of an interior item. Nil
// fields are untouched; setting a field that feeds the automatic rate
// clears any manual override.
type UpdateInteriorItemRequest struct {
	RoomType          *string          `json:"room_type,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Length            *string          `json:"length,omitempty"`
	Height            *string          `json:"height,omitempty"`
	Width             *string          `json:"width,omitempty"`
	CoreMaterial      *string          `json:"core_material,omitempty"`
	FinishMaterial    *string          `json:"finish_material,omitempty"`
	HardwareBrand     *string          `json:"hardware_brand,omitempty"`
	BuildType         *types.BuildType `json:"build_type,omitempty"`
	RateOverride      *string          `json:"rate_override,omitempty"`
	ClearRateOverride bool             `json:"clear_rate_override,omitempty"`
}

func (r *UpdateInteriorItemRequest) Validate() error {
	if r.BuildType != nil {
		return r.BuildType.Validate()
	}
	return nil
}

func (r *UpdateInteriorItemRequest) ToUpdate() (quotation.InteriorItemUpdate, error) {
	u := quotation.InteriorItemUpdate{
		RoomType:       r.RoomType,
		Description:    r.Description,
		CoreMaterial:   r.CoreMaterial,
		FinishMaterial: r.FinishMaterial,
		HardwareBrand:  r.HardwareBrand,
		BuildType:      r.BuildType,
		ClearOverride:  r.ClearRateOverride,
	}

	var err error
	if u.Length, err = parseDimensionPtr("length", r.Length); err != nil {
		return u, err
	}
	if u.Height, err = parseDimensionPtr("height", r.Height); err != nil {
		return u, err
	}
	if u.Width, err = parseDimensionPtr("width", r.Width); err != nil {
		return u, err
	}
	if r.RateOverride != nil {
		rate, err := parseRate("rate_override", *r.RateOverride)
		if err != nil {
			return u, err
		}
		u.RateOverride = lo.ToPtr(rate)
	}
	return u, nil
}

// InteriorItemResponse represents an interior item in API responses
type InteriorItemResponse struct {
	ID               string           `json:"id"`
	QuotationID      string           `json:"quotation_id"`
	RoomType         string           `json:"room_type"`
	Description      string           `json:"description"`
	Length           decimal.Decimal  `json:"length"`
	Height           decimal.Decimal  `json:"height"`
	Width            decimal.Decimal  `json:"width"`
	Sqft             decimal.Decimal  `json:"sqft"`
	CoreMaterial     string           `json:"core_material"`
	FinishMaterial   string           `json:"finish_material"`
	HardwareBrand    string           `json:"hardware_brand"`
	BuildType        types.BuildType  `json:"build_type"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	RateAuto         decimal.Decimal  `json:"rate_auto"`
	RateOverride     *decimal.Decimal `json:"rate_override,omitempty"`
	IsRateOverridden bool             `json:"is_rate_overridden"`
	TotalPrice       decimal.Decimal  `json:"total_price"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func NewInteriorItemResponse(i *quotation.InteriorItem) *InteriorItemResponse {
	return &InteriorItemResponse{
		ID:               i.ID,
		QuotationID:      i.QuotationID,
		RoomType:         i.RoomType,
		Description:      i.Description,
		Length:           i.Length,
		Height:           i.Height,
		Width:            i.Width,
		Sqft:             i.Sqft,
		CoreMaterial:     i.CoreMaterial,
		FinishMaterial:   i.FinishMaterial,
		HardwareBrand:    i.HardwareBrand,
		BuildType:        i.BuildType,
		UnitPrice:        i.UnitPrice,
		RateAuto:         i.RateAuto,
		RateOverride:     i.RateOverride,
		IsRateOverridden: i.IsRateOverridden,
		TotalPrice:       i.TotalPrice,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// CreateCeilingItemRequest adds a false-ceiling line item.
type CreateCeilingItemRequest struct {
	RoomType      string `json:"room_type"`
	Description   string `json:"description"`
	Length        string `json:"length,omitempty"`
	Width         string `json:"width,omitempty"`
	CatalogItemID string `json:"catalog_item_id,omitempty"`
	UnitRate      string `json:"unit_rate,omitempty"`
}

func (r *CreateCeilingItemRequest) Validate() error {
	return nil
}

func (r *CreateCeilingItemRequest) ToCeilingItem(ctx context.Context, quotationID string) (*quotation.CeilingItem, error) {
	length, err := parseDimension("length", r.Length)
	if err != nil {
		return nil, err
	}
	width, err := parseDimension("width", r.Width)
	if err != nil {
		return nil, err
	}
	unitRate, err := parseRate("unit_rate", r.UnitRate)
	if err != nil {
		return nil, err
	}

	return &quotation.CeilingItem{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CEILING_ITEM),
		QuotationID:   quotationID,
		RoomType:      r.RoomType,
		Description:   r.Description,
		Length:        length,
		Width:         width,
		CatalogItemID: r.CatalogItemID,
		UnitRate:      unitRate,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}, nil
}

// UpdateCeilingItemRequest is a partial edit of a ceiling item.
type UpdateCeilingItemRequest struct {
	RoomType    *string `json:"room_type,omitempty"`
	Description *string `json:"description,omitempty"`
	Length      *string `json:"length,omitempty"`
	Width       *string `json:"width,omitempty"`
	UnitRate    *string `json:"unit_rate,omitempty"`
}

func (r *UpdateCeilingItemRequest) Validate() error {
	return nil
}

// CeilingItemResponse represents a ceiling item in API responses
type CeilingItemResponse struct {
	ID            string          `json:"id"`
	QuotationID   string          `json:"quotation_id"`
	RoomType      string          `json:"room_type"`
	Description   string          `json:"description"`
	Length        decimal.Decimal `json:"length"`
	Width         decimal.Decimal `json:"width"`
	Area          decimal.Decimal `json:"area"`
	CatalogItemID string          `json:"catalog_item_id,omitempty"`
	UnitRate      decimal.Decimal `json:"unit_rate"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewCeilingItemResponse(c *quotation.CeilingItem) *CeilingItemResponse {
	return &CeilingItemResponse{
		ID:            c.ID,
		QuotationID:   c.QuotationID,
		RoomType:      c.RoomType,
		Description:   c.Description,
		Length:        c.Length,
		Width:         c.Width,
		Area:          c.Area,
		CatalogItemID: c.CatalogItemID,
		UnitRate:      c.UnitRate,
		Total:         c.LineTotal(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CreateOtherItemRequest adds a miscellaneous line item.
type CreateOtherItemRequest struct {
	ItemType    string                   `json:"item_type"`
	Description string                   `json:"description"`
	ValueType   types.OtherItemValueType `json:"value_type" validate:"required"`
	Value       string                   `json:"value,omitempty"`
	UnitPrice   string                   `json:"unit_price,omitempty"`
}

func (r *CreateOtherItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.ValueType.Validate()
}

func (r *CreateOtherItemRequest) ToOtherItem(ctx context.Context, quotationID string) (*quotation.OtherItem, error) {
	value, err := parseRate("value", r.Value)
	if err != nil {
		return nil, err
	}
	unitPrice, err := parseRate("unit_price", r.UnitPrice)
	if err != nil {
		return nil, err
	}

	return &quotation.OtherItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_OTHER_ITEM),
		QuotationID: quotationID,
		ItemType:    r.ItemType,
		Description: r.Description,
		ValueType:   r.ValueType,
		Value:       value,
		UnitPrice:   unitPrice,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}, nil
}

// UpdateOtherItemRequest is a partial edit of an other item.
type UpdateOtherItemRequest struct {
	ItemType    *string                   `json:"item_type,omitempty"`
	Description *string                   `json:"description,omitempty"`
	ValueType   *types.OtherItemValueType `json:"value_type,omitempty"`
	Value       *string                   `json:"value,omitempty"`
	UnitPrice   *string                   `json:"unit_price,omitempty"`
}

func (r *UpdateOtherItemRequest) Validate() error {
	if r.ValueType != nil {
		return r.ValueType.Validate()
	}
	return nil
}

// OtherItemResponse represents an other item in API responses
type OtherItemResponse struct {
	ID          string                   `json:"id"`
	QuotationID string                   `json:"quotation_id"`
	ItemType    string                   `json:"item_type"`
	Description string                   `json:"description"`
	ValueType   types.OtherItemValueType `json:"value_type"`
	Value       decimal.Decimal          `json:"value"`
	UnitPrice   decimal.Decimal          `json:"unit_price"`
	Total       decimal.Decimal          `json:"total"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

func NewOtherItemResponse(o *quotation.OtherItem) *OtherItemResponse {
	return &OtherItemResponse{
		ID:          o.ID,
		QuotationID: o.QuotationID,
		ItemType:    o.ItemType,
		Description: o.Description,
		ValueType:   o.ValueType,
		Value:       o.Value,
		UnitPrice:   o.UnitPrice,
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ParseDimensionField sanitizes and parses one raw numeric input string,
// rejecting negative values. Used by services applying partial edits field
// by field.
func ParseDimensionField(field, raw string) (decimal.Decimal, error) {
	return parseDimension(field, raw)
}

func parseDimension(field, raw string) (decimal.Decimal, error) {
	d, err := types.ParseDecimalInput(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ierr.NewErrorf("%s must be non-negative", field).
			WithHintf("%s cannot be negative", field).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

func parseDimensionPtr(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := parseDimension(field, *raw)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(d), nil
}

func parseRate(field, raw string) (decimal.Decimal, error) {
	return parseDimension(field, raw)
}
