package types

import ierr "github.com/quotedesk/quotedesk/internal/errors"

// QuotationStatus is the lifecycle state of a quotation.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusApproved QuotationStatus = "approved"
)

func (s QuotationStatus) Validate() error {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted,
		QuotationStatusRejected, QuotationStatusApproved:
		return nil
	}
	return ierr.NewError("invalid quotation status").
		WithHint("Status must be one of draft, sent, accepted, rejected, approved").
		WithReportableDetails(map[string]interface{}{
			"status": s,
		}).
		Mark(ierr.ErrValidation)
}

// IsFinal reports whether the quotation is an immutable snapshot. Approved
// quotations and their documents reject all further edits.
func (s QuotationStatus) IsFinal() bool {
	return s == QuotationStatusApproved
}

// DiscountType selects how Quotation.DiscountValue is interpreted.
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeAmount  DiscountType = "amount"
)

func (d DiscountType) Validate() error {
	switch d {
	case DiscountTypePercent, DiscountTypeAmount:
		return nil
	}
	return ierr.NewError("invalid discount type").
		WithHint("Discount type must be either percent or amount").
		WithReportableDetails(map[string]interface{}{
			"discount_type": d,
		}).
		Mark(ierr.ErrValidation)
}

// AnnexureFlags records which optional annexures are included in the
// agreement pack for a quotation.
type AnnexureFlags struct {
	Interiors    bool `json:"interiors"`
	FalseCeiling bool `json:"false_ceiling"`
}

// QuotationFilter represents the filter options for quotations.
type QuotationFilter struct {
	*QueryFilter
	QuotationIDs []string          `json:"quotation_ids,omitempty" form:"quotation_ids"`
	Statuses     []QuotationStatus `json:"statuses,omitempty" form:"statuses"`
	ClientName   string            `json:"client_name,omitempty" form:"client_name"`
}

// NewQuotationFilter creates a new quotation filter with default values.
func NewQuotationFilter() *QuotationFilter {
	return &QuotationFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *QuotationFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	for _, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
