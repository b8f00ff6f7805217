package service

import (
	"context"
	"time"

	"github.com/quotedesk/quotedesk/internal/api/dto"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// QuotationService owns the quotation lifecycle and the money rollup: it
// aggregates line-item totals into the stored subtotals and produces the
// reconciled combined/per-document breakdowns.
type QuotationService interface {
	CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error)
	GetQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error)
	ListQuotations(ctx context.Context, filter *types.QuotationFilter) (*dto.ListQuotationsResponse, error)
	UpdateQuotation(ctx context.Context, id string, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error)
	UpdateDiscount(ctx context.Context, id string, req dto.UpdateDiscountRequest) (*dto.QuotationResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (*dto.QuotationResponse, error)
	UpdateAnnexures(ctx context.Context, id string, req dto.UpdateAnnexuresRequest) (*dto.QuotationResponse, error)
	DeleteQuotation(ctx context.Context, id string) error

	GetSummary(ctx context.Context, id string) (*dto.QuotationSummaryResponse, error)

	// RecomputeTotals re-aggregates line items and persists the stored
	// subtotals only when they changed.
	RecomputeTotals(ctx context.Context, id string) (*quotation.Quotation, error)
}

type quotationService struct {
	ServiceParams
}

// NewQuotationService creates a new quotation service.
func NewQuotationService(params ServiceParams) QuotationService {
	return &quotationService{ServiceParams: params}
}

func (s *quotationService) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q := req.ToQuotation(ctx)
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := s.QuotationRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	s.Logger.Infow("created quotation",
		"quotation_id", q.ID,
		"quotation_number", q.QuotationNumber)
	return dto.NewQuotationResponse(q), nil
}

func (s *quotationService) GetQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewQuotationResponse(q), nil
}

func (s *quotationService) ListQuotations(ctx context.Context, filter *types.QuotationFilter) (*dto.ListQuotationsResponse, error) {
	if filter == nil {
		filter = types.NewQuotationFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	quotations, err := s.QuotationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.QuotationRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuotationResponse, len(quotations))
	for i, q := range quotations {
		responses[i] = dto.NewQuotationResponse(q)
	}
	listResponse := types.NewListResponse(responses, total, filter.GetLimit(), filter.GetOffset())
	return &listResponse, nil
}

func (s *quotationService) UpdateQuotation(ctx context.Context, id string, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		q.ClientName = *req.ClientName
	}
	if req.ClientAddress != nil {
		q.ClientAddress = *req.ClientAddress
	}
	if req.ProjectName != nil {
		q.ProjectName = *req.ProjectName
	}
	if req.SiteAddress != nil {
		q.SiteAddress = *req.SiteAddress
	}
	if req.Terms != nil {
		q.Terms = *req.Terms
	}

	if err := s.QuotationRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	// Client and project details appear on the rendered documents.
	s.Sections.Invalidate(q.ID)
	return dto.NewQuotationResponse(q), nil
}

func (s *quotationService) UpdateDiscount(ctx context.Context, id string, req dto.UpdateDiscountRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}

	q.DiscountType = req.DiscountType
	q.DiscountValue = req.DiscountValue
	if err := s.QuotationRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	s.Sections.Invalidate(q.ID)
	return dto.NewQuotationResponse(q), nil
}

func (s *quotationService) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.QuoteStatus.IsFinal() && req.Status != q.QuoteStatus {
		return nil, ierr.NewError("approved quotations cannot change status").
			WithHint("An approved quotation is locked").
			WithReportableDetails(map[string]interface{}{
				"quotation_id": q.ID,
				"status":       q.QuoteStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	q.QuoteStatus = req.Status
	if err := s.QuotationRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	s.Logger.Infow("quotation status changed",
		"quotation_id", q.ID,
		"status", q.QuoteStatus)
	return dto.NewQuotationResponse(q), nil
}

func (s *quotationService) UpdateAnnexures(ctx context.Context, id string, req dto.UpdateAnnexuresRequest) (*dto.QuotationResponse, error) {
	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}

	if req.Interiors != nil {
		q.Annexures.Interiors = *req.Interiors
	}
	if req.FalseCeiling != nil {
		q.Annexures.FalseCeiling = *req.FalseCeiling
	}

	if err := s.QuotationRepo.Update(ctx, q); err != nil {
		return nil, err
	}
	return dto.NewQuotationResponse(q), nil
}

func (s *quotationService) DeleteQuotation(ctx context.Context, id string) error {
	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := q.EnsureEditable(); err != nil {
		return err
	}

	if err := s.QuotationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Sections.Invalidate(id)
	return nil
}

func (s *quotationService) GetSummary(ctx context.Context, id string) (*dto.QuotationSummaryResponse, error) {
	q, err := s.RecomputeTotals(ctx, id)
	if err != nil {
		return nil, err
	}

	combined := quotation.ApplyDiscountAndTax(q.Totals.GrandSubtotal, q.DiscountType, q.DiscountValue)
	interiors, falseCeiling := quotation.AllocatedBreakdowns(q.Totals, q.DiscountType, q.DiscountValue)

	return &dto.QuotationSummaryResponse{
		Totals:       q.Totals,
		Combined:     combined,
		Interiors:    interiors,
		FalseCeiling: falseCeiling,
	}, nil
}

func (s *quotationService) RecomputeTotals(ctx context.Context, id string) (*quotation.Quotation, error) {
	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	interiors, err := s.InteriorItemRepo.ListByQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	ceilings, err := s.CeilingItemRepo.ListByQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	others, err := s.OtherItemRepo.ListByQuotation(ctx, id)
	if err != nil {
		return nil, err
	}

	totals := quotation.AggregateTotals(interiors, ceilings, others)
	if totals.Equal(q.Totals) {
		// No pricing change, skip the write.
		return q, nil
	}

	totals.UpdatedAt = time.Now().UTC()
	if err := s.QuotationRepo.UpdateTotals(ctx, id, totals); err != nil {
		return nil, err
	}
	q.Totals = totals

	s.Sections.Invalidate(id)
	s.Logger.Debugw("persisted recomputed totals",
		"quotation_id", id,
		"interiors_subtotal", totals.InteriorsSubtotal,
		"fc_subtotal", totals.FCSubtotal,
		"grand_subtotal", totals.GrandSubtotal)
	return q, nil
}
