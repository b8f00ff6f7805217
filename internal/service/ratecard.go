package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/quotedesk/quotedesk/internal/api/dto"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

const resolverCacheKey = "ratecard_resolver"

// RateCardService manages the rate table, brand adders, and admin catalogs,
// and answers rate resolutions through a cached resolver snapshot.
type RateCardService interface {
	// Rate entries
	CreateRateEntry(ctx context.Context, req dto.CreateRateEntryRequest) (*dto.RateEntryResponse, error)
	GetRateEntry(ctx context.Context, id string) (*dto.RateEntryResponse, error)
	ListRateEntries(ctx context.Context, filter *ratecard.Filter) (*dto.ListRateEntriesResponse, error)
	UpdateRateEntry(ctx context.Context, id string, req dto.UpdateRateEntryRequest) (*dto.RateEntryResponse, error)
	PatchBaseRate(ctx context.Context, id string, req dto.PatchBaseRateRequest) error
	DeleteRateEntry(ctx context.Context, id string) error

	// Brand adders
	CreateBrandAdder(ctx context.Context, req dto.CreateBrandAdderRequest) (*dto.BrandAdderResponse, error)
	ListBrandAdders(ctx context.Context, filter *ratecard.Filter) (*dto.ListBrandAddersResponse, error)
	UpdateBrandAdder(ctx context.Context, id string, req dto.UpdateBrandAdderRequest) (*dto.BrandAdderResponse, error)
	DeleteBrandAdder(ctx context.Context, id string) error

	// Catalogs
	CreateCatalogItem(ctx context.Context, req dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	GetCatalogItem(ctx context.Context, id string) (*dto.CatalogItemResponse, error)
	ListCatalogItems(ctx context.Context, filter *ratecard.Filter) (*dto.ListCatalogItemsResponse, error)
	UpdateCatalogItem(ctx context.Context, id string, req dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	DeleteCatalogItem(ctx context.Context, id string) error

	// Resolution
	ResolveRate(ctx context.Context, req dto.ResolveRateRequest) (*dto.ResolveRateResponse, error)
	Resolver(ctx context.Context) (*ratecard.Resolver, error)

	// Close flushes pending debounced writes.
	Close()
}

type rateCardService struct {
	ServiceParams
	cache     *gocache.Cache
	debouncer *Debouncer
}

// NewRateCardService creates a new rate card service.
func NewRateCardService(params ServiceParams) RateCardService {
	ttl := time.Duration(params.Config.RateCard.CacheTTLSeconds) * time.Second
	window := time.Duration(params.Config.RateCard.DebounceMillis) * time.Millisecond
	return &rateCardService{
		ServiceParams: params,
		cache:         gocache.New(ttl, 2*ttl),
		debouncer:     NewDebouncer(window),
	}
}

func (s *rateCardService) CreateRateEntry(ctx context.Context, req dto.CreateRateEntryRequest) (*dto.RateEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := req.ToRateEntry(ctx)
	if err := s.RateRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateResolver()
	return dto.NewRateEntryResponse(entry), nil
}

func (s *rateCardService) GetRateEntry(ctx context.Context, id string) (*dto.RateEntryResponse, error) {
	entry, err := s.RateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRateEntryResponse(entry), nil
}

func (s *rateCardService) ListRateEntries(ctx context.Context, filter *ratecard.Filter) (*dto.ListRateEntriesResponse, error) {
	if filter == nil {
		filter = &ratecard.Filter{}
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.QueryFilter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.RateRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.RateRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RateEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = dto.NewRateEntryResponse(e)
	}
	listResponse := types.NewListResponse(responses, total, filter.GetLimit(), filter.GetOffset())
	return &listResponse, nil
}

func (s *rateCardService) UpdateRateEntry(ctx context.Context, id string, req dto.UpdateRateEntryRequest) (*dto.RateEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.RateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BaseRate != nil {
		entry.BaseRate = *req.BaseRate
	}

	if err := s.RateRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateResolver()
	return dto.NewRateEntryResponse(entry), nil
}

// PatchBaseRate is the inline-edit path: the raw text-field value is
// sanitized and parsed immediately (so the caller gets validation errors
// right away), but the repository write is debounced so a burst of
// keystroke commits collapses into one write of the most recent value.
func (s *rateCardService) PatchBaseRate(ctx context.Context, id string, req dto.PatchBaseRateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	rate, err := types.ParseDecimalInput(req.Value)
	if err != nil {
		return err
	}
	if rate.IsNegative() {
		return ierr.NewError("base_rate must be non-negative").
			WithHint("Rate cannot be negative").
			Mark(ierr.ErrValidation)
	}

	// Existence check up front so a typo'd id fails the request, not the
	// deferred commit.
	if _, err := s.RateRepo.Get(ctx, id); err != nil {
		return err
	}

	logger := s.Logger
	s.debouncer.Schedule("rate_base:"+id, func() {
		// The request context is gone by the time the window elapses.
		bg := types.SetTenantID(context.Background(), types.GetTenantID(ctx))
		if err := s.RateRepo.UpdateBaseRate(bg, id, rate); err != nil {
			logger.Errorw("failed to commit debounced rate update",
				"rate_entry_id", id,
				"error", err)
			return
		}
		s.invalidateResolver()
	})
	return nil
}

func (s *rateCardService) DeleteRateEntry(ctx context.Context, id string) error {
	if err := s.RateRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateResolver()
	return nil
}

func (s *rateCardService) CreateBrandAdder(ctx context.Context, req dto.CreateBrandAdderRequest) (*dto.BrandAdderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	adder := req.ToBrandAdder(ctx)
	if err := s.AdderRepo.Create(ctx, adder); err != nil {
		return nil, err
	}

	s.invalidateResolver()
	return dto.NewBrandAdderResponse(adder), nil
}

func (s *rateCardService) ListBrandAdders(ctx context.Context, filter *ratecard.Filter) (*dto.ListBrandAddersResponse, error) {
	if filter == nil {
		filter = &ratecard.Filter{}
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	adders, err := s.AdderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BrandAdderResponse, len(adders))
	for i, a := range adders {
		responses[i] = dto.NewBrandAdderResponse(a)
	}
	listResponse := types.NewListResponse(responses, len(responses), filter.GetLimit(), filter.GetOffset())
	return &listResponse, nil
}

func (s *rateCardService) UpdateBrandAdder(ctx context.Context, id string, req dto.UpdateBrandAdderRequest) (*dto.BrandAdderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	adder, err := s.AdderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Adder != nil {
		adder.Adder = *req.Adder
	}

	if err := s.AdderRepo.Update(ctx, adder); err != nil {
		return nil, err
	}

	s.invalidateResolver()
	return dto.NewBrandAdderResponse(adder), nil
}

func (s *rateCardService) DeleteBrandAdder(ctx context.Context, id string) error {
	if err := s.AdderRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateResolver()
	return nil
}

func (s *rateCardService) CreateCatalogItem(ctx context.Context, req dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := req.ToCatalogItem(ctx)
	if err := s.CatalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return dto.NewCatalogItemResponse(item), nil
}

func (s *rateCardService) GetCatalogItem(ctx context.Context, id string) (*dto.CatalogItemResponse, error) {
	item, err := s.CatalogRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCatalogItemResponse(item), nil
}

func (s *rateCardService) ListCatalogItems(ctx context.Context, filter *ratecard.Filter) (*dto.ListCatalogItemsResponse, error) {
	if filter == nil {
		filter = &ratecard.Filter{}
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	items, err := s.CatalogRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CatalogItemResponse, len(items))
	for i, c := range items {
		responses[i] = dto.NewCatalogItemResponse(c)
	}
	listResponse := types.NewListResponse(responses, len(responses), filter.GetLimit(), filter.GetOffset())
	return &listResponse, nil
}

func (s *rateCardService) UpdateCatalogItem(ctx context.Context, id string, req dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.CatalogRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.UnitRate != nil {
		item.UnitRate = *req.UnitRate
	}

	if err := s.CatalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return dto.NewCatalogItemResponse(item), nil
}

func (s *rateCardService) DeleteCatalogItem(ctx context.Context, id string) error {
	return s.CatalogRepo.Delete(ctx, id)
}

func (s *rateCardService) ResolveRate(ctx context.Context, req dto.ResolveRateRequest) (*dto.ResolveRateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resolver, err := s.Resolver(ctx)
	if err != nil {
		return nil, err
	}

	rate := resolver.Resolve(req.BuildType, req.CoreMaterial, req.FinishMaterial, req.HardwareBrand)
	return &dto.ResolveRateResponse{Rate: rate}, nil
}

// Resolver returns the cached rate resolver, rebuilding it from the
// repositories when the cache is cold or was invalidated by a mutation.
func (s *rateCardService) Resolver(ctx context.Context) (*ratecard.Resolver, error) {
	if cached, ok := s.cache.Get(resolverCacheKey); ok {
		if resolver, ok := cached.(*ratecard.Resolver); ok {
			return resolver, nil
		}
	}

	noLimit := &ratecard.Filter{QueryFilter: types.NewNoLimitQueryFilter()}
	entries, err := s.RateRepo.List(ctx, noLimit)
	if err != nil {
		return nil, err
	}
	adders, err := s.AdderRepo.List(ctx, noLimit)
	if err != nil {
		return nil, err
	}

	resolver := ratecard.NewResolver(entries, adders)
	s.cache.Set(resolverCacheKey, resolver, gocache.DefaultExpiration)
	return resolver, nil
}

func (s *rateCardService) invalidateResolver() {
	s.cache.Delete(resolverCacheKey)
}

func (s *rateCardService) Close() {
	s.debouncer.Close()
}
