// Package testutil provides in-memory repositories and suite scaffolding for
// service tests.
package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"
	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/document"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/types"
)

// Stores bundles the in-memory repositories backing a test suite.
type Stores struct {
	Quotation    *InMemoryQuotationStore
	InteriorItem *InMemoryInteriorItemStore
	CeilingItem  *InMemoryCeilingItemStore
	OtherItem    *InMemoryOtherItemStore
	RateEntry    *InMemoryRateEntryStore
	BrandAdder   *InMemoryBrandAdderStore
	CatalogItem  *InMemoryCatalogItemStore
}

// BaseServiceTestSuite is the common fixture for service-level tests: fresh
// in-memory stores, a context with the default tenant, and ServiceParams
// wired the same way main wires production dependencies.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	log    *logger.Logger
	stores Stores
	params service.ServiceParams
}

// SetupTest initializes fresh stores for every test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.cfg = config.GetDefaultConfig()

	var err error
	s.log, err = logger.NewLogger(s.cfg)
	s.Require().NoError(err)

	ctx := context.Background()
	ctx = types.SetTenantID(ctx, types.DefaultTenantID)
	ctx = types.SetUserID(ctx, "user_test")
	s.ctx = ctx

	s.stores = Stores{
		Quotation:    NewInMemoryQuotationStore(),
		InteriorItem: NewInMemoryInteriorItemStore(),
		CeilingItem:  NewInMemoryCeilingItemStore(),
		OtherItem:    NewInMemoryOtherItemStore(),
		RateEntry:    NewInMemoryRateEntryStore(),
		BrandAdder:   NewInMemoryBrandAdderStore(),
		CatalogItem:  NewInMemoryCatalogItemStore(),
	}

	s.params = service.ServiceParams{
		Logger:           s.log,
		Config:           s.cfg,
		QuotationRepo:    s.stores.Quotation,
		InteriorItemRepo: s.stores.InteriorItem,
		CeilingItemRepo:  s.stores.CeilingItem,
		OtherItemRepo:    s.stores.OtherItem,
		RateRepo:         s.stores.RateEntry,
		AdderRepo:        s.stores.BrandAdder,
		CatalogRepo:      s.stores.CatalogItem,
		Sections:         document.NewSectionRegistry(),
		Renderer:         document.NewRenderer(s.cfg.Document),
	}
}

// GetContext returns the suite context carrying tenant and user.
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the suite configuration.
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

// GetLogger returns the suite logger.
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.log
}

// GetStores returns the in-memory stores.
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetParams returns ServiceParams wired over the in-memory stores.
func (s *BaseServiceTestSuite) GetParams() service.ServiceParams {
	return s.params
}
