// Package repository wires concrete repository implementations.
package repository

import (
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	"github.com/quotedesk/quotedesk/internal/logger"
	pgclient "github.com/quotedesk/quotedesk/internal/postgres"
	pgrepo "github.com/quotedesk/quotedesk/internal/repository/postgres"
)

// Repositories bundles every repository the services need.
type Repositories struct {
	Quotation    quotation.Repository
	InteriorItem quotation.InteriorItemRepository
	CeilingItem  quotation.CeilingItemRepository
	OtherItem    quotation.OtherItemRepository
	RateEntry    ratecard.Repository
	BrandAdder   ratecard.AdderRepository
	CatalogItem  ratecard.CatalogRepository
}

// NewPostgresRepositories builds the postgres-backed repository set.
func NewPostgresRepositories(client *pgclient.Client, log *logger.Logger) Repositories {
	return Repositories{
		Quotation:    pgrepo.NewQuotationRepository(client, log),
		InteriorItem: pgrepo.NewInteriorItemRepository(client, log),
		CeilingItem:  pgrepo.NewCeilingItemRepository(client, log),
		OtherItem:    pgrepo.NewOtherItemRepository(client, log),
		RateEntry:    pgrepo.NewRateEntryRepository(client, log),
		BrandAdder:   pgrepo.NewBrandAdderRepository(client, log),
		CatalogItem:  pgrepo.NewCatalogItemRepository(client, log),
	}
}
