package quotation

import (
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// Quotation is the aggregate root for one client project quotation. Line
// items are the source of truth; Totals is a derived cache recomputed and
// persisted after every committed item mutation.
type Quotation struct {
	ID              string                `json:"id"`
	QuotationNumber string                `json:"quotation_number"`
	ClientName      string                `json:"client_name"`
	ClientAddress   string                `json:"client_address,omitempty"`
	ProjectName     string                `json:"project_name,omitempty"`
	SiteAddress     string                `json:"site_address,omitempty"`
	DiscountType    types.DiscountType    `json:"discount_type"`
	DiscountValue   decimal.Decimal       `json:"discount_value"`
	QuoteStatus     types.QuotationStatus `json:"quote_status"`
	Annexures       types.AnnexureFlags   `json:"annexures"`
	Terms           string                `json:"terms,omitempty"`
	Totals          Totals                `json:"totals"`
	types.BaseModel
}

// Totals is the cached totals snapshot for a quotation.
type Totals struct {
	InteriorsSubtotal decimal.Decimal `json:"interiors_subtotal"`
	FCSubtotal        decimal.Decimal `json:"fc_subtotal"`
	GrandSubtotal     decimal.Decimal `json:"grand_subtotal"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Equal reports whether two snapshots carry the same amounts. UpdatedAt is
// deliberately ignored so an unchanged recomputation is not persisted.
func (t Totals) Equal(other Totals) bool {
	return t.InteriorsSubtotal.Equal(other.InteriorsSubtotal) &&
		t.FCSubtotal.Equal(other.FCSubtotal) &&
		t.GrandSubtotal.Equal(other.GrandSubtotal)
}

// Validate validates the quotation.
func (q *Quotation) Validate() error {
	if q.QuotationNumber == "" {
		return ierr.NewError("quotation_number is required").Mark(ierr.ErrValidation)
	}
	if q.ClientName == "" {
		return ierr.NewError("client_name is required").Mark(ierr.ErrValidation)
	}
	if err := q.QuoteStatus.Validate(); err != nil {
		return err
	}
	if err := q.DiscountType.Validate(); err != nil {
		return err
	}
	if q.DiscountValue.IsNegative() {
		return ierr.NewError("discount_value must be non-negative").
			WithHint("Discount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// EnsureEditable rejects mutations on an approved quotation, which is an
// immutable snapshot together with its documents.
func (q *Quotation) EnsureEditable() error {
	if q.QuoteStatus.IsFinal() {
		return ierr.NewError("quotation is approved and can no longer be modified").
			WithHint("Approved quotations are immutable snapshots").
			WithReportableDetails(map[string]interface{}{
				"quotation_id": q.ID,
				"status":       q.QuoteStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}
