package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/quotedesk/quotedesk/internal/api/dto"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/testutil"
	"github.com/quotedesk/quotedesk/internal/types"
)

type RateCardServiceSuite struct {
	testutil.BaseServiceTestSuite
	rateCardSvc service.RateCardService
}

func TestRateCardService(t *testing.T) {
	suite.Run(t, new(RateCardServiceSuite))
}

func (s *RateCardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	// Short quiescence window so debounce tests settle quickly.
	s.GetConfig().RateCard.DebounceMillis = 100
	s.rateCardSvc = service.NewRateCardService(s.GetParams())
}

func (s *RateCardServiceSuite) TearDownTest() {
	s.rateCardSvc.Close()
}

func (s *RateCardServiceSuite) createRateEntry(baseRate string) *dto.RateEntryResponse {
	entry, err := s.rateCardSvc.CreateRateEntry(s.GetContext(), dto.CreateRateEntryRequest{
		BuildType:      types.BuildTypeHandmade,
		CoreMaterial:   "BWP Ply",
		FinishMaterial: "Laminate",
		HardwareBrand:  "Nimmi",
		BaseRate:       decimal.RequireFromString(baseRate),
	})
	s.Require().NoError(err)
	return entry
}

func (s *RateCardServiceSuite) resolve() decimal.Decimal {
	resp, err := s.rateCardSvc.ResolveRate(s.GetContext(), dto.ResolveRateRequest{
		BuildType:      types.BuildTypeHandmade,
		CoreMaterial:   "BWP Ply",
		FinishMaterial: "Laminate",
		HardwareBrand:  "Nimmi",
	})
	s.Require().NoError(err)
	return resp.Rate
}

func (s *RateCardServiceSuite) TestResolveRate() {
	s.createRateEntry("1450")

	s.True(decimal.RequireFromString("1450").Equal(s.resolve()))
}

func (s *RateCardServiceSuite) TestResolverInvalidatedOnMutation() {
	entry := s.createRateEntry("1450")

	// Warm the cached resolver snapshot.
	s.True(decimal.RequireFromString("1450").Equal(s.resolve()))

	newRate := decimal.RequireFromString("1600")
	_, err := s.rateCardSvc.UpdateRateEntry(s.GetContext(), entry.ID, dto.UpdateRateEntryRequest{
		BaseRate: &newRate,
	})
	s.Require().NoError(err)

	// The mutation drops the snapshot; the next resolve sees the new rate.
	s.True(decimal.RequireFromString("1600").Equal(s.resolve()))
}

func (s *RateCardServiceSuite) TestResolverInvalidatedOnAdderChange() {
	s.createRateEntry("1450")

	_, err := s.rateCardSvc.CreateRateEntry(s.GetContext(), dto.CreateRateEntryRequest{
		BuildType:      types.BuildTypeHandmade,
		CoreMaterial:   "BWP Ply",
		FinishMaterial: "Acrylic",
		HardwareBrand:  "Nimmi",
		BaseRate:       decimal.RequireFromString("2200"),
	})
	s.Require().NoError(err)

	resolveAcrylic := func() decimal.Decimal {
		resp, err := s.rateCardSvc.ResolveRate(s.GetContext(), dto.ResolveRateRequest{
			BuildType:      types.BuildTypeHandmade,
			CoreMaterial:   "BWP Ply",
			FinishMaterial: "Acrylic",
			HardwareBrand:  "Nimmi",
		})
		s.Require().NoError(err)
		return resp.Rate
	}

	s.True(decimal.RequireFromString("2200").Equal(resolveAcrylic()))

	_, err = s.rateCardSvc.CreateBrandAdder(s.GetContext(), dto.CreateBrandAdderRequest{
		FinishMaterial: "Acrylic",
		Adder:          decimal.RequireFromString("150"),
	})
	s.Require().NoError(err)

	s.True(decimal.RequireFromString("2350").Equal(resolveAcrylic()))
}

func (s *RateCardServiceSuite) TestPatchBaseRateDebounces() {
	entry := s.createRateEntry("1450")

	// Keystroke-by-keystroke commits of "1600".
	for _, v := range []string{"1", "16", "160", "1600"} {
		err := s.rateCardSvc.PatchBaseRate(s.GetContext(), entry.ID, dto.PatchBaseRateRequest{Value: v})
		s.Require().NoError(err)
	}

	// Before the window elapses the stored rate is untouched.
	stored, err := s.rateCardSvc.GetRateEntry(s.GetContext(), entry.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1450").Equal(stored.BaseRate))

	s.Eventually(func() bool {
		stored, err := s.rateCardSvc.GetRateEntry(s.GetContext(), entry.ID)
		if err != nil {
			return false
		}
		return decimal.RequireFromString("1600").Equal(stored.BaseRate)
	}, time.Second, 5*time.Millisecond, "only the final keystroke value should be written")
}

func (s *RateCardServiceSuite) TestPatchBaseRateSanitizesInput() {
	entry := s.createRateEntry("1450")

	err := s.rateCardSvc.PatchBaseRate(s.GetContext(), entry.ID, dto.PatchBaseRateRequest{Value: "16.0.0"})
	s.Require().NoError(err)

	s.Eventually(func() bool {
		stored, err := s.rateCardSvc.GetRateEntry(s.GetContext(), entry.ID)
		if err != nil {
			return false
		}
		return decimal.RequireFromString("16").Equal(stored.BaseRate)
	}, time.Second, 5*time.Millisecond)
}

func (s *RateCardServiceSuite) TestPatchBaseRateUnknownEntry() {
	err := s.rateCardSvc.PatchBaseRate(s.GetContext(), "rate_missing", dto.PatchBaseRateRequest{Value: "100"})

	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
