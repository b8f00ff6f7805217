package service

import (
	"context"

	"github.com/quotedesk/quotedesk/internal/api/dto"
	"github.com/quotedesk/quotedesk/internal/document"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// packOrder is the fixed section order of the agreement pack: the agreement
// first, then the enabled annexures, each preceded by its title page.
var packOrder = []types.DocumentSection{
	types.DocumentSectionInteriors,
	types.DocumentSectionFalseCeiling,
}

// DocumentService renders quotation documents. Previewing a section also
// registers its bytes so pack assembly can reuse exactly what was shown;
// assembling the pack refuses to run until every enabled annexure has a
// registered render.
type DocumentService interface {
	PreviewSection(ctx context.Context, quotationID string, section types.DocumentSection) ([]byte, error)
	AssembleAgreementPack(ctx context.Context, quotationID string) (*dto.AgreementPackResponse, error)
}

type documentService struct {
	ServiceParams
	quotationSvc QuotationService
}

// NewDocumentService creates a new document service.
func NewDocumentService(params ServiceParams, quotationSvc QuotationService) DocumentService {
	return &documentService{
		ServiceParams: params,
		quotationSvc:  quotationSvc,
	}
}

func (s *documentService) PreviewSection(ctx context.Context, quotationID string, section types.DocumentSection) ([]byte, error) {
	if err := section.Validate(); err != nil {
		return nil, err
	}

	// Totals are re-aggregated before rendering so the preview always shows
	// committed line items, never a stale snapshot.
	q, err := s.quotationSvc.RecomputeTotals(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	data, err := s.renderSection(ctx, q, section)
	if err != nil {
		return nil, err
	}

	s.Sections.Put(quotationID, section, data)
	return data, nil
}

func (s *documentService) renderSection(ctx context.Context, q *quotation.Quotation, section types.DocumentSection) ([]byte, error) {
	interiorsBrk, fcBrk := quotation.AllocatedBreakdowns(q.Totals, q.DiscountType, q.DiscountValue)

	switch section {
	case types.DocumentSectionAgreement:
		combined := quotation.ApplyDiscountAndTax(q.Totals.GrandSubtotal, q.DiscountType, q.DiscountValue)
		return s.Renderer.RenderAgreement(q, combined)

	case types.DocumentSectionInteriors:
		items, err := s.InteriorItemRepo.ListByQuotation(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		return s.Renderer.RenderInteriors(q, items, interiorsBrk)

	case types.DocumentSectionFalseCeiling:
		ceilings, err := s.CeilingItemRepo.ListByQuotation(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		others, err := s.OtherItemRepo.ListByQuotation(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		return s.Renderer.RenderFalseCeiling(q, ceilings, others, fcBrk)
	}

	return nil, ierr.NewErrorf("unknown document section %q", section).
		Mark(ierr.ErrValidation)
}

func (s *documentService) AssembleAgreementPack(ctx context.Context, quotationID string) (*dto.AgreementPackResponse, error) {
	q, err := s.quotationSvc.RecomputeTotals(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	sections := s.enabledSections(q)

	// Check every required annexure before rendering anything, so a missing
	// preview fails the whole request with the section's name and no partial
	// work.
	for _, section := range sections {
		if !s.Sections.Has(quotationID, section) {
			_, err := s.Sections.Get(quotationID, section)
			return nil, err
		}
	}

	// The agreement itself is always rendered fresh from current state.
	combined := quotation.ApplyDiscountAndTax(q.Totals.GrandSubtotal, q.DiscountType, q.DiscountValue)
	agreement, err := s.Renderer.RenderAgreement(q, combined)
	if err != nil {
		return nil, err
	}

	parts := [][]byte{agreement}
	for _, section := range sections {
		title, err := s.Renderer.RenderTitlePage(q, section)
		if err != nil {
			return nil, err
		}
		content, err := s.Sections.Get(quotationID, section)
		if err != nil {
			return nil, err
		}
		parts = append(parts, title, content)
	}

	merged, err := document.MergePDFBuffers(parts)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("assembled agreement pack",
		"quotation_id", quotationID,
		"sections", len(sections),
		"bytes", len(merged))

	return &dto.AgreementPackResponse{
		Filename: types.AgreementPackFilename(q.QuotationNumber),
		Data:     merged,
	}, nil
}

func (s *documentService) enabledSections(q *quotation.Quotation) []types.DocumentSection {
	sections := make([]types.DocumentSection, 0, len(packOrder))
	for _, section := range packOrder {
		switch section {
		case types.DocumentSectionInteriors:
			if q.Annexures.Interiors {
				sections = append(sections, section)
			}
		case types.DocumentSectionFalseCeiling:
			if q.Annexures.FalseCeiling {
				sections = append(sections, section)
			}
		}
	}
	return sections
}
