package dto

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
	"github.com/quotedesk/quotedesk/internal/validator"
)

// CreateQuotationRequest creates a new quotation in draft status.
type CreateQuotationRequest struct {
	// QuotationNumber is generated when omitted.
	QuotationNumber string             `json:"quotation_number,omitempty"`
	ClientName      string             `json:"client_name" validate:"required"`
	ClientAddress   string             `json:"client_address,omitempty"`
	ProjectName     string             `json:"project_name,omitempty"`
	SiteAddress     string             `json:"site_address,omitempty"`
	Terms           string             `json:"terms,omitempty"`
	DiscountType    types.DiscountType `json:"discount_type,omitempty"`
	DiscountValue   decimal.Decimal    `json:"discount_value,omitempty"`
}

func (r *CreateQuotationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.DiscountType != "" {
		if err := r.DiscountType.Validate(); err != nil {
			return err
		}
	}
	if r.DiscountValue.IsNegative() {
		return ierr.NewError("discount_value must be non-negative").
			WithHint("Discount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateQuotationRequest) ToQuotation(ctx context.Context) *quotation.Quotation {
	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTATION)

	number := r.QuotationNumber
	if number == "" {
		// Derive a stable human-facing number from the id suffix.
		number = fmt.Sprintf("QTN-%s", strings.ToUpper(id[len(id)-8:]))
	}

	discountType := r.DiscountType
	if discountType == "" {
		discountType = types.DiscountTypePercent
	}

	return &quotation.Quotation{
		ID:              id,
		QuotationNumber: number,
		ClientName:      r.ClientName,
		ClientAddress:   r.ClientAddress,
		ProjectName:     r.ProjectName,
		SiteAddress:     r.SiteAddress,
		Terms:           r.Terms,
		DiscountType:    discountType,
		DiscountValue:   r.DiscountValue,
		QuoteStatus:     types.QuotationStatusDraft,
		Totals:          quotation.Totals{UpdatedAt: time.Now().UTC()},
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

// UpdateQuotationRequest updates client/project metadata. Nil fields are
// left untouched.
type UpdateQuotationRequest struct {
	ClientName    *string `json:"client_name,omitempty"`
	ClientAddress *string `json:"client_address,omitempty"`
	ProjectName   *string `json:"project_name,omitempty"`
	SiteAddress   *string `json:"site_address,omitempty"`
	Terms         *string `json:"terms,omitempty"`
}

func (r *UpdateQuotationRequest) Validate() error {
	if r.ClientName != nil && *r.ClientName == "" {
		return ierr.NewError("client_name cannot be empty").
			WithHint("Client name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UpdateDiscountRequest changes the quotation's discount.
type UpdateDiscountRequest struct {
	DiscountType  types.DiscountType `json:"discount_type" validate:"required"`
	DiscountValue decimal.Decimal    `json:"discount_value"`
}

func (r *UpdateDiscountRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.DiscountType.Validate(); err != nil {
		return err
	}
	if r.DiscountValue.IsNegative() {
		return ierr.NewError("discount_value must be non-negative").
			WithHint("Discount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UpdateStatusRequest moves the quotation through its lifecycle.
type UpdateStatusRequest struct {
	Status types.QuotationStatus `json:"status" validate:"required"`
}

func (r *UpdateStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Status.Validate()
}

// UpdateAnnexuresRequest toggles which annexures the agreement pack
// includes.
type UpdateAnnexuresRequest struct {
	Interiors    *bool `json:"interiors,omitempty"`
	FalseCeiling *bool `json:"false_ceiling,omitempty"`
}

// QuotationResponse represents a quotation in API responses
type QuotationResponse struct {
	ID              string                `json:"id"`
	QuotationNumber string                `json:"quotation_number"`
	ClientName      string                `json:"client_name"`
	ClientAddress   string                `json:"client_address,omitempty"`
	ProjectName     string                `json:"project_name,omitempty"`
	SiteAddress     string                `json:"site_address,omitempty"`
	DiscountType    types.DiscountType    `json:"discount_type"`
	DiscountValue   decimal.Decimal       `json:"discount_value"`
	Status          types.QuotationStatus `json:"status"`
	Annexures       types.AnnexureFlags   `json:"annexures"`
	Terms           string                `json:"terms,omitempty"`
	Totals          quotation.Totals      `json:"totals"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func NewQuotationResponse(q *quotation.Quotation) *QuotationResponse {
	return &QuotationResponse{
		ID:              q.ID,
		QuotationNumber: q.QuotationNumber,
		ClientName:      q.ClientName,
		ClientAddress:   q.ClientAddress,
		ProjectName:     q.ProjectName,
		SiteAddress:     q.SiteAddress,
		DiscountType:    q.DiscountType,
		DiscountValue:   q.DiscountValue,
		Status:          q.QuoteStatus,
		Annexures:       q.Annexures,
		Terms:           q.Terms,
		Totals:          q.Totals,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// ListQuotationsResponse represents the response for listing quotations
type ListQuotationsResponse = types.ListResponse[*QuotationResponse]

// QuotationSummaryResponse is the reconciled money view: the combined
// quote plus the two per-document breakdowns produced by the discount
// allocator.
type QuotationSummaryResponse struct {
	Totals       quotation.Totals    `json:"totals"`
	Combined     quotation.Breakdown `json:"combined"`
	Interiors    quotation.Breakdown `json:"interiors"`
	FalseCeiling quotation.Breakdown `json:"false_ceiling"`
}
