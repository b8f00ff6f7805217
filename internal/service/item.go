package service

import (
	"context"

	"github.com/quotedesk/quotedesk/internal/api/dto"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
)

// ItemService manages the three kinds of quotation line items. Every
// committed mutation recomputes the item's derived fields, persists it,
// re-aggregates the quotation totals, and drops any rendered document
// sections that showed the old numbers.
type ItemService interface {
	// Interior items
	CreateInteriorItem(ctx context.Context, quotationID string, req dto.CreateInteriorItemRequest) (*dto.InteriorItemResponse, error)
	GetInteriorItem(ctx context.Context, id string) (*dto.InteriorItemResponse, error)
	ListInteriorItems(ctx context.Context, quotationID string) ([]*dto.InteriorItemResponse, error)
	UpdateInteriorItem(ctx context.Context, id string, req dto.UpdateInteriorItemRequest) (*dto.InteriorItemResponse, error)
	DeleteInteriorItem(ctx context.Context, id string) error

	// Ceiling items
	CreateCeilingItem(ctx context.Context, quotationID string, req dto.CreateCeilingItemRequest) (*dto.CeilingItemResponse, error)
	GetCeilingItem(ctx context.Context, id string) (*dto.CeilingItemResponse, error)
	ListCeilingItems(ctx context.Context, quotationID string) ([]*dto.CeilingItemResponse, error)
	UpdateCeilingItem(ctx context.Context, id string, req dto.UpdateCeilingItemRequest) (*dto.CeilingItemResponse, error)
	DeleteCeilingItem(ctx context.Context, id string) error

	// Other items
	CreateOtherItem(ctx context.Context, quotationID string, req dto.CreateOtherItemRequest) (*dto.OtherItemResponse, error)
	GetOtherItem(ctx context.Context, id string) (*dto.OtherItemResponse, error)
	ListOtherItems(ctx context.Context, quotationID string) ([]*dto.OtherItemResponse, error)
	UpdateOtherItem(ctx context.Context, id string, req dto.UpdateOtherItemRequest) (*dto.OtherItemResponse, error)
	DeleteOtherItem(ctx context.Context, id string) error
}

type itemService struct {
	ServiceParams
	rateCardSvc  RateCardService
	quotationSvc QuotationService
}

// NewItemService creates a new item service.
func NewItemService(params ServiceParams, rateCardSvc RateCardService, quotationSvc QuotationService) ItemService {
	return &itemService{
		ServiceParams: params,
		rateCardSvc:   rateCardSvc,
		quotationSvc:  quotationSvc,
	}
}

// editableQuotation loads the parent quotation and rejects the mutation if
// it is locked.
func (s *itemService) editableQuotation(ctx context.Context, quotationID string) (*quotation.Quotation, error) {
	q, err := s.QuotationRepo.Get(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *itemService) afterItemMutation(ctx context.Context, quotationID string) error {
	if _, err := s.quotationSvc.RecomputeTotals(ctx, quotationID); err != nil {
		return err
	}
	s.Sections.Invalidate(quotationID)
	return nil
}

func (s *itemService) CreateInteriorItem(ctx context.Context, quotationID string, req dto.CreateInteriorItemRequest) (*dto.InteriorItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.editableQuotation(ctx, quotationID); err != nil {
		return nil, err
	}

	item, err := req.ToInteriorItem(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	resolver, err := s.rateCardSvc.Resolver(ctx)
	if err != nil {
		return nil, err
	}
	item.Recalculate(resolver)

	if err := s.InteriorItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := s.afterItemMutation(ctx, quotationID); err != nil {
		return nil, err
	}
	return dto.NewInteriorItemResponse(item), nil
}

func (s *itemService) GetInteriorItem(ctx context.Context, id string) (*dto.InteriorItemResponse, error) {
	item, err := s.InteriorItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInteriorItemResponse(item), nil
}

func (s *itemService) ListInteriorItems(ctx context.Context, quotationID string) ([]*dto.InteriorItemResponse, error) {
	items, err := s.InteriorItemRepo.ListByQuotation(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.InteriorItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.NewInteriorItemResponse(item)
	}
	return responses, nil
}

func (s *itemService) UpdateInteriorItem(ctx context.Context, id string, req dto.UpdateInteriorItemRequest) (*dto.InteriorItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.InteriorItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.editableQuotation(ctx, item.QuotationID); err != nil {
		return nil, err
	}

	update, err := req.ToUpdate()
	if err != nil {
		return nil, err
	}

	resolver, err := s.rateCardSvc.Resolver(ctx)
	if err != nil {
		return nil, err
	}
	if err := item.Apply(update, resolver); err != nil {
		return nil, err
	}

	if err := s.InteriorItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	if err := s.afterItemMutation(ctx, item.QuotationID); err != nil {
		return nil, err
	}
	return dto.NewInteriorItemResponse(item), nil
}

func (s *itemService) DeleteInteriorItem(ctx context.Context, id string) error {
	item, err := s.InteriorItemRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.editableQuotation(ctx, item.QuotationID); err != nil {
		return err
	}

	if err := s.InteriorItemRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.afterItemMutation(ctx, item.QuotationID)
}

func (s *itemService) CreateCeilingItem(ctx context.Context, quotationID string, req dto.CreateCeilingItemRequest) (*dto.CeilingItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.editableQuotation(ctx, quotationID); err != nil {
		return nil, err
	}

	item, err := req.ToCeilingItem(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	// Picking from the catalog fills the unit rate unless the request set
	// one explicitly.
	if item.CatalogItemID != "" && item.UnitRate.IsZero() {
		catalogItem, err := s.CatalogRepo.Get(ctx, item.CatalogItemID)
		if err != nil {
			return nil, err
		}
		item.UnitRate = catalogItem.UnitRate
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.Recalculate()

	if err := s.CeilingItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := s.afterItemMutation(ctx, quotationID); err != nil {
		return nil, err
	}
	return dto.NewCeilingItemResponse(item), nil
}

func (s *itemService) GetCeilingItem(ctx context.Context, id string) (*dto.CeilingItemResponse, error) {
	item, err := s.CeilingItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCeilingItemResponse(item), nil
}

func (s *itemService) ListCeilingItems(ctx context.Context, quotationID string) ([]*dto.CeilingItemResponse, error) {
	items, err := s.CeilingItemRepo.ListByQuotation(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.CeilingItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.NewCeilingItemResponse(item)
	}
	return responses, nil
}

func (s *itemService) UpdateCeilingItem(ctx context.Context, id string, req dto.UpdateCeilingItemRequest) (*dto.CeilingItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.CeilingItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.editableQuotation(ctx, item.QuotationID); err != nil {
		return nil, err
	}

	if req.RoomType != nil {
		item.RoomType = *req.RoomType
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Length != nil {
		length, err := dto.ParseDimensionField("length", *req.Length)
		if err != nil {
			return nil, err
		}
		item.Length = length
	}
	if req.Width != nil {
		width, err := dto.ParseDimensionField("width", *req.Width)
		if err != nil {
			return nil, err
		}
		item.Width = width
	}
	if req.UnitRate != nil {
		rate, err := dto.ParseDimensionField("unit_rate", *req.UnitRate)
		if err != nil {
			return nil, err
		}
		item.UnitRate = rate
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.Recalculate()

	if err := s.CeilingItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	if err := s.afterItemMutation(ctx, item.QuotationID); err != nil {
		return nil, err
	}
	return dto.NewCeilingItemResponse(item), nil
}

func (s *itemService) DeleteCeilingItem(ctx context.Context, id string) error {
	item, err := s.CeilingItemRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.editableQuotation(ctx, item.QuotationID); err != nil {
		return err
	}

	if err := s.CeilingItemRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.afterItemMutation(ctx, item.QuotationID)
}

func (s *itemService) CreateOtherItem(ctx context.Context, quotationID string, req dto.CreateOtherItemRequest) (*dto.OtherItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.editableQuotation(ctx, quotationID); err != nil {
		return nil, err
	}

	item, err := req.ToOtherItem(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.Recalculate()

	if err := s.OtherItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := s.afterItemMutation(ctx, quotationID); err != nil {
		return nil, err
	}
	return dto.NewOtherItemResponse(item), nil
}

func (s *itemService) GetOtherItem(ctx context.Context, id string) (*dto.OtherItemResponse, error) {
	item, err := s.OtherItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewOtherItemResponse(item), nil
}

func (s *itemService) ListOtherItems(ctx context.Context, quotationID string) ([]*dto.OtherItemResponse, error) {
	items, err := s.OtherItemRepo.ListByQuotation(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.OtherItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.NewOtherItemResponse(item)
	}
	return responses, nil
}

func (s *itemService) UpdateOtherItem(ctx context.Context, id string, req dto.UpdateOtherItemRequest) (*dto.OtherItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.OtherItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.editableQuotation(ctx, item.QuotationID); err != nil {
		return nil, err
	}

	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ValueType != nil {
		item.ValueType = *req.ValueType
	}
	if req.Value != nil {
		value, err := dto.ParseDimensionField("value", *req.Value)
		if err != nil {
			return nil, err
		}
		item.Value = value
	}
	if req.UnitPrice != nil {
		unitPrice, err := dto.ParseDimensionField("unit_price", *req.UnitPrice)
		if err != nil {
			return nil, err
		}
		item.UnitPrice = unitPrice
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.Recalculate()

	if err := s.OtherItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	if err := s.afterItemMutation(ctx, item.QuotationID); err != nil {
		return nil, err
	}
	return dto.NewOtherItemResponse(item), nil
}

func (s *itemService) DeleteOtherItem(ctx context.Context, id string) error {
	item, err := s.OtherItemRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.editableQuotation(ctx, item.QuotationID); err != nil {
		return err
	}

	if err := s.OtherItemRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.afterItemMutation(ctx, item.QuotationID)
}
