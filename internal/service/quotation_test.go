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

type QuotationServiceSuite struct {
	testutil.BaseServiceTestSuite
	quotationSvc service.QuotationService
	itemSvc      service.ItemService
	rateCardSvc  service.RateCardService
}

func TestQuotationService(t *testing.T) {
	suite.Run(t, new(QuotationServiceSuite))
}

func (s *QuotationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.rateCardSvc = service.NewRateCardService(s.GetParams())
	s.quotationSvc = service.NewQuotationService(s.GetParams())
	s.itemSvc = service.NewItemService(s.GetParams(), s.rateCardSvc, s.quotationSvc)
}

func (s *QuotationServiceSuite) TearDownTest() {
	s.rateCardSvc.Close()
}

func (s *QuotationServiceSuite) createQuotation() *dto.QuotationResponse {
	resp, err := s.quotationSvc.CreateQuotation(s.GetContext(), dto.CreateQuotationRequest{
		ClientName:  "Meera Krishnan",
		ProjectName: "3BHK Whitefield",
	})
	s.Require().NoError(err)
	return resp
}

func (s *QuotationServiceSuite) seedRate(baseRate string) {
	_, err := s.rateCardSvc.CreateRateEntry(s.GetContext(), dto.CreateRateEntryRequest{
		BuildType:      types.BuildTypeHandmade,
		CoreMaterial:   "BWP Ply",
		FinishMaterial: "Laminate",
		HardwareBrand:  "Nimmi",
		BaseRate:       decimal.RequireFromString(baseRate),
	})
	s.Require().NoError(err)
}

func (s *QuotationServiceSuite) TestCreateQuotationDefaults() {
	resp := s.createQuotation()

	s.NotEmpty(resp.ID)
	s.NotEmpty(resp.QuotationNumber)
	s.Equal(types.QuotationStatusDraft, resp.Status)
	s.Equal(types.DiscountTypePercent, resp.DiscountType)
	s.True(resp.Totals.GrandSubtotal.IsZero())
}

func (s *QuotationServiceSuite) TestCreateQuotationRequiresClientName() {
	_, err := s.quotationSvc.CreateQuotation(s.GetContext(), dto.CreateQuotationRequest{})

	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *QuotationServiceSuite) TestRecomputeTotalsAggregatesItems() {
	s.seedRate("1450")
	q := s.createQuotation()

	_, err := s.itemSvc.CreateInteriorItem(s.GetContext(), q.ID, dto.CreateInteriorItemRequest{
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

	_, err = s.itemSvc.CreateCeilingItem(s.GetContext(), q.ID, dto.CreateCeilingItemRequest{
		RoomType: "Living Room",
		Length:   "12",
		Width:    "10",
		UnitRate: "65",
	})
	s.Require().NoError(err)

	// Miscellaneous items land in the false-ceiling subtotal.
	_, err = s.itemSvc.CreateOtherItem(s.GetContext(), q.ID, dto.CreateOtherItemRequest{
		ItemType:    "electrical",
		Description: "Cove lighting points",
		ValueType:   types.OtherItemValueTypeLumpsum,
		Value:       "5000",
	})
	s.Require().NoError(err)

	updated, err := s.quotationSvc.GetQuotation(s.GetContext(), q.ID)
	s.Require().NoError(err)

	// 10x8 sqft at 1450/sqft = 116000; ceiling 12x10 at 65 = 7800 plus 5000.
	s.True(decimal.RequireFromString("116000").Equal(updated.Totals.InteriorsSubtotal),
		"got %s", updated.Totals.InteriorsSubtotal)
	s.True(decimal.RequireFromString("12800").Equal(updated.Totals.FCSubtotal),
		"got %s", updated.Totals.FCSubtotal)
	s.True(decimal.RequireFromString("128800").Equal(updated.Totals.GrandSubtotal),
		"got %s", updated.Totals.GrandSubtotal)
}

func (s *QuotationServiceSuite) TestRecomputeTotalsSkipsUnchangedWrite() {
	s.seedRate("1450")
	q := s.createQuotation()

	_, err := s.itemSvc.CreateInteriorItem(s.GetContext(), q.ID, dto.CreateInteriorItemRequest{
		Length:    "10",
		Height:    "8",
		BuildType: types.BuildTypeHandmade,
	})
	s.Require().NoError(err)

	writes := s.GetStores().Quotation.TotalsWrites
	s.Require().Positive(writes)

	// Nothing changed since the item mutation; recomputation must not
	// persist.
	_, err = s.quotationSvc.RecomputeTotals(s.GetContext(), q.ID)
	s.Require().NoError(err)
	s.Equal(writes, s.GetStores().Quotation.TotalsWrites)

	_, err = s.quotationSvc.RecomputeTotals(s.GetContext(), q.ID)
	s.Require().NoError(err)
	s.Equal(writes, s.GetStores().Quotation.TotalsWrites)
}

func (s *QuotationServiceSuite) TestGetSummaryReconciles() {
	s.seedRate("1450")
	q := s.createQuotation()

	_, err := s.itemSvc.CreateInteriorItem(s.GetContext(), q.ID, dto.CreateInteriorItemRequest{
		Length:    "10",
		Height:    "8",
		BuildType: types.BuildTypeHandmade,
	})
	s.Require().NoError(err)
	_, err = s.itemSvc.CreateCeilingItem(s.GetContext(), q.ID, dto.CreateCeilingItemRequest{
		Length:   "10",
		Width:    "10",
		UnitRate: "65",
	})
	s.Require().NoError(err)

	_, err = s.quotationSvc.UpdateDiscount(s.GetContext(), q.ID, dto.UpdateDiscountRequest{
		DiscountType:  types.DiscountTypeAmount,
		DiscountValue: decimal.RequireFromString("10000"),
	})
	s.Require().NoError(err)

	summary, err := s.quotationSvc.GetSummary(s.GetContext(), q.ID)
	s.Require().NoError(err)

	// The two per-document breakdowns must sum back to the combined quote.
	s.True(summary.Interiors.DiscountAmount.Add(summary.FalseCeiling.DiscountAmount).
		Equal(summary.Combined.DiscountAmount))
	s.True(summary.Interiors.FinalTotal.Add(summary.FalseCeiling.FinalTotal).
		Equal(summary.Combined.FinalTotal),
		"%s + %s != %s", summary.Interiors.FinalTotal,
		summary.FalseCeiling.FinalTotal, summary.Combined.FinalTotal)
}

func (s *QuotationServiceSuite) TestGetSummaryClampsOversizedDiscount() {
	q := s.createQuotation()

	_, err := s.quotationSvc.UpdateDiscount(s.GetContext(), q.ID, dto.UpdateDiscountRequest{
		DiscountType:  types.DiscountTypeAmount,
		DiscountValue: decimal.RequireFromString("99999"),
	})
	s.Require().NoError(err)

	summary, err := s.quotationSvc.GetSummary(s.GetContext(), q.ID)
	s.Require().NoError(err)

	s.True(summary.Combined.TaxableAmount.IsZero())
	s.True(summary.Combined.FinalTotal.IsZero())
}

func (s *QuotationServiceSuite) TestApprovedQuotationIsLocked() {
	q := s.createQuotation()

	_, err := s.quotationSvc.UpdateStatus(s.GetContext(), q.ID, dto.UpdateStatusRequest{
		Status: types.QuotationStatusApproved,
	})
	s.Require().NoError(err)

	_, err = s.quotationSvc.UpdateQuotation(s.GetContext(), q.ID, dto.UpdateQuotationRequest{
		ClientName: lo.ToPtr("Someone Else"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.quotationSvc.UpdateDiscount(s.GetContext(), q.ID, dto.UpdateDiscountRequest{
		DiscountType:  types.DiscountTypePercent,
		DiscountValue: decimal.RequireFromString("5"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.quotationSvc.UpdateStatus(s.GetContext(), q.ID, dto.UpdateStatusRequest{
		Status: types.QuotationStatusDraft,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	err = s.quotationSvc.DeleteQuotation(s.GetContext(), q.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *QuotationServiceSuite) TestListQuotationsFilters() {
	first := s.createQuotation()
	_, err := s.quotationSvc.CreateQuotation(s.GetContext(), dto.CreateQuotationRequest{
		ClientName: "Arjun Rao",
	})
	s.Require().NoError(err)

	filter := types.NewQuotationFilter()
	filter.ClientName = "meera"
	list, err := s.quotationSvc.ListQuotations(s.GetContext(), filter)
	s.Require().NoError(err)

	s.Require().Len(list.Items, 1)
	s.Equal(first.ID, list.Items[0].ID)
}

func (s *QuotationServiceSuite) TestDeleteQuotation() {
	q := s.createQuotation()

	err := s.quotationSvc.DeleteQuotation(s.GetContext(), q.ID)
	s.Require().NoError(err)

	_, err = s.quotationSvc.GetQuotation(s.GetContext(), q.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
