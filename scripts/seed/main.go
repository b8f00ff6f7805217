// Seeds a fresh database with the default rate card: the generic fallback
// rows every tenant needs, the acrylic finish adder, and a starter
// false-ceiling/painting catalog. Safe to re-run; rows that already exist
// are skipped.
package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/repository"
	"github.com/quotedesk/quotedesk/internal/types"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.Fatalf("failed to load configuration: %v", err)
	}
	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.L.Fatalf("failed to initialize logger: %v", err)
	}

	client, err := postgres.NewClient(cfg, log)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer client.Close()

	repos := repository.NewPostgresRepositories(client, log)

	ctx := types.SetTenantID(context.Background(), types.DefaultTenantID)
	ctx = types.SetUserID(ctx, "user_seed")

	rate := func(bt types.BuildType, material, finish, hardware string, baseRate int64) *ratecard.RateEntry {
		return &ratecard.RateEntry{
			ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATE_ENTRY),
			BuildType:      bt,
			CoreMaterial:   material,
			FinishMaterial: finish,
			HardwareBrand:  hardware,
			BaseRate:       decimal.NewFromInt(baseRate),
			BaseModel:      types.GetDefaultBaseModel(ctx),
		}
	}

	entries := []*ratecard.RateEntry{
		// Fully generic fallback rows; rate resolution bottoms out here.
		rate(types.BuildTypeHandmade, ratecard.DefaultCoreMaterial, ratecard.DefaultFinishMaterial, ratecard.DefaultHardwareBrand, 1200),
		rate(types.BuildTypeFactory, ratecard.DefaultCoreMaterial, ratecard.DefaultFinishMaterial, ratecard.DefaultHardwareBrand, 1500),

		rate(types.BuildTypeHandmade, "BWP Ply", "Laminate", ratecard.DefaultHardwareBrand, 1450),
		rate(types.BuildTypeHandmade, "BWP Ply", "Acrylic", ratecard.DefaultHardwareBrand, 2050),
		rate(types.BuildTypeHandmade, "BWP Ply", "Veneer", ratecard.DefaultHardwareBrand, 1850),
		rate(types.BuildTypeFactory, "BWP Ply", "Laminate", ratecard.DefaultHardwareBrand, 1750),
		rate(types.BuildTypeFactory, "BWP Ply", "Acrylic", ratecard.DefaultHardwareBrand, 2350),
	}

	seeded := 0
	for _, entry := range entries {
		if err := repos.RateEntry.Create(ctx, entry); err != nil {
			if ierr.IsAlreadyExists(err) {
				continue
			}
			log.Fatalf("failed to seed rate entry: %v", err)
		}
		seeded++
	}
	log.Infow("seeded rate entries", "count", seeded, "skipped", len(entries)-seeded)

	adder := &ratecard.BrandAdder{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BRAND_ADDER),
		FinishMaterial: ratecard.FinishAcrylic,
		Adder:          decimal.NewFromInt(150),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	if err := repos.BrandAdder.Create(ctx, adder); err != nil && !ierr.IsAlreadyExists(err) {
		log.Fatalf("failed to seed acrylic adder: %v", err)
	}

	catalog := func(ct types.CatalogType, name, unit string, unitRate int64) *ratecard.CatalogItem {
		return &ratecard.CatalogItem{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CATALOG_ITEM),
			Catalog:   ct,
			Name:      name,
			Unit:      unit,
			UnitRate:  decimal.NewFromInt(unitRate),
			BaseModel: types.GetDefaultBaseModel(ctx),
		}
	}

	catalogItems := []*ratecard.CatalogItem{
		catalog(types.CatalogTypeFalseCeiling, "Gypsum plain", "sqft", 65),
		catalog(types.CatalogTypeFalseCeiling, "Gypsum cove", "sqft", 85),
		catalog(types.CatalogTypeFalseCeiling, "POP designer", "sqft", 95),
		catalog(types.CatalogTypePainting, "Emulsion two coats", "sqft", 18),
		catalog(types.CatalogTypePainting, "Texture feature wall", "sqft", 45),
	}
	for _, item := range catalogItems {
		if err := repos.CatalogItem.Create(ctx, item); err != nil && !ierr.IsAlreadyExists(err) {
			log.Fatalf("failed to seed catalog item: %v", err)
		}
	}

	log.Info("rate card seeding complete")
}
