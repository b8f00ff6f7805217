package service_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"github.com/quotedesk/quotedesk/internal/api/dto"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/testutil"
	"github.com/quotedesk/quotedesk/internal/types"
)

type DocumentServiceSuite struct {
	testutil.BaseServiceTestSuite
	quotationSvc service.QuotationService
	itemSvc      service.ItemService
	rateCardSvc  service.RateCardService
	documentSvc  service.DocumentService
	quotationID  string
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.rateCardSvc = service.NewRateCardService(s.GetParams())
	s.quotationSvc = service.NewQuotationService(s.GetParams())
	s.itemSvc = service.NewItemService(s.GetParams(), s.rateCardSvc, s.quotationSvc)
	s.documentSvc = service.NewDocumentService(s.GetParams(), s.quotationSvc)

	q, err := s.quotationSvc.CreateQuotation(s.GetContext(), dto.CreateQuotationRequest{
		ClientName:  "Meera Krishnan",
		ProjectName: "3BHK Whitefield",
	})
	s.Require().NoError(err)
	s.quotationID = q.ID

	_, err = s.itemSvc.CreateInteriorItem(s.GetContext(), s.quotationID, dto.CreateInteriorItemRequest{
		RoomType:    "Living Room",
		Description: "TV unit",
		Length:      "10",
		Height:      "8",
		BuildType:   types.BuildTypeHandmade,
	})
	s.Require().NoError(err)

	_, err = s.itemSvc.CreateCeilingItem(s.GetContext(), s.quotationID, dto.CreateCeilingItemRequest{
		RoomType: "Living Room",
		Length:   "12",
		Width:    "10",
		UnitRate: "65",
	})
	s.Require().NoError(err)
}

func (s *DocumentServiceSuite) TearDownTest() {
	s.rateCardSvc.Close()
}

func (s *DocumentServiceSuite) enableAnnexures(interiors, falseCeiling bool) {
	_, err := s.quotationSvc.UpdateAnnexures(s.GetContext(), s.quotationID, dto.UpdateAnnexuresRequest{
		Interiors:    lo.ToPtr(interiors),
		FalseCeiling: lo.ToPtr(falseCeiling),
	})
	s.Require().NoError(err)
}

func (s *DocumentServiceSuite) TestPreviewSectionRendersPDF() {
	data, err := s.documentSvc.PreviewSection(s.GetContext(), s.quotationID, types.DocumentSectionInteriors)
	s.Require().NoError(err)

	s.NotEmpty(data)
	s.Equal("%PDF", string(data[:4]))
}

func (s *DocumentServiceSuite) TestPreviewRejectsUnknownSection() {
	_, err := s.documentSvc.PreviewSection(s.GetContext(), s.quotationID, types.DocumentSection("warranty"))

	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestPackFailsFastOnMissingPreview() {
	s.enableAnnexures(true, true)

	// Only the false-ceiling section was previewed; interiors is missing.
	_, err := s.documentSvc.PreviewSection(s.GetContext(), s.quotationID, types.DocumentSectionFalseCeiling)
	s.Require().NoError(err)

	_, err = s.documentSvc.AssembleAgreementPack(s.GetContext(), s.quotationID)
	s.Require().Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.Contains(err.Error(), "Interiors")
}

func (s *DocumentServiceSuite) TestPackAssemblesAfterPreviews() {
	s.enableAnnexures(true, true)

	_, err := s.documentSvc.PreviewSection(s.GetContext(), s.quotationID, types.DocumentSectionInteriors)
	s.Require().NoError(err)
	_, err = s.documentSvc.PreviewSection(s.GetContext(), s.quotationID, types.DocumentSectionFalseCeiling)
	s.Require().NoError(err)

	pack, err := s.documentSvc.AssembleAgreementPack(s.GetContext(), s.quotationID)
	s.Require().NoError(err)

	s.NotEmpty(pack.Data)
	s.Equal("%PDF", string(pack.Data[:4]))
	s.Contains(pack.Filename, ".pdf")
}

func (s *DocumentServiceSuite) TestPackWithNoAnnexures() {
	s.enableAnnexures(false, false)

	// With no annexures enabled the pack is just the agreement, no previews
	// required.
	pack, err := s.documentSvc.AssembleAgreementPack(s.GetContext(), s.quotationID)
	s.Require().NoError(err)
	s.NotEmpty(pack.Data)
}

func (s *DocumentServiceSuite) TestItemEditInvalidatesPreview() {
	s.enableAnnexures(true, false)

	_, err := s.documentSvc.PreviewSection(s.GetContext(), s.quotationID, types.DocumentSectionInteriors)
	s.Require().NoError(err)

	// A pricing change drops the captured section, so the stale render can
	// never end up in a pack.
	_, err = s.itemSvc.CreateInteriorItem(s.GetContext(), s.quotationID, dto.CreateInteriorItemRequest{
		Length:    "5",
		Height:    "4",
		BuildType: types.BuildTypeHandmade,
	})
	s.Require().NoError(err)

	_, err = s.documentSvc.AssembleAgreementPack(s.GetContext(), s.quotationID)
	s.Require().Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.Contains(err.Error(), "Interiors")
}
