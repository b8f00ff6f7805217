package service

import (
	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/document"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	"github.com/quotedesk/quotedesk/internal/logger"
)

// ServiceParams holds the dependencies shared by all services. Every
// service embeds it; tests build one over the in-memory stores.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	QuotationRepo    quotation.Repository
	InteriorItemRepo quotation.InteriorItemRepository
	CeilingItemRepo  quotation.CeilingItemRepository
	OtherItemRepo    quotation.OtherItemRepository

	RateRepo    ratecard.Repository
	AdderRepo   ratecard.AdderRepository
	CatalogRepo ratecard.CatalogRepository

	Sections *document.SectionRegistry
	Renderer *document.Renderer
}
