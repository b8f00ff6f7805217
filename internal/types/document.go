package types

import (
	"fmt"

	ierr "github.com/quotedesk/quotedesk/internal/errors"
)

// DocumentSection names a renderable view of a quotation. Sections are the
// unit of capture for the agreement pack.
type DocumentSection string

const (
	DocumentSectionAgreement    DocumentSection = "agreement"
	DocumentSectionInteriors    DocumentSection = "interiors"
	DocumentSectionFalseCeiling DocumentSection = "false_ceiling"
)

func (s DocumentSection) Validate() error {
	switch s {
	case DocumentSectionAgreement, DocumentSectionInteriors, DocumentSectionFalseCeiling:
		return nil
	}
	return ierr.NewError("invalid document section").
		WithHint("Section must be one of agreement, interiors, false_ceiling").
		WithReportableDetails(map[string]interface{}{
			"section": s,
		}).
		Mark(ierr.ErrValidation)
}

// DisplayName is the human-readable section name used on title pages and in
// missing-section errors.
func (s DocumentSection) DisplayName() string {
	switch s {
	case DocumentSectionAgreement:
		return "Service Agreement"
	case DocumentSectionInteriors:
		return "Interiors"
	case DocumentSectionFalseCeiling:
		return "False Ceiling"
	}
	return string(s)
}

// AgreementPackFilename derives the deterministic download filename for a
// quotation's agreement pack.
func AgreementPackFilename(quotationNumber string) string {
	return fmt.Sprintf("agreement-pack-%s.pdf", quotationNumber)
}
