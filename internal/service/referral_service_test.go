package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReferralServiceTestSuite struct {
	suite.Suite
	fixture         *servicesFixture
	referralService *ReferralService
}

func TestReferralServiceSuite(t *testing.T) {
	suite.Run(t, new(ReferralServiceTestSuite))
}

func (s *ReferralServiceTestSuite) SetupTest() {
	s.fixture = newServicesFixture(&s.Suite)
	s.referralService = s.fixture.services.ReferralService
}

func (s *ReferralServiceTestSuite) TestGetConfig() {
	config, err := s.referralService.GetConfig(context.Background())
	s.Require().NoError(err)
	s.Equal(3, config.MaxLevels)
	s.Len(config.LevelPercentages, 3)
	s.True(config.Active)
}

func (s *ReferralServiceTestSuite) TestUpdateConfigValidation() {
	ctx := context.Background()

	// длина процентов обязана совпадать с количеством уровней
	_, mismatchErr := s.referralService.UpdateConfig(ctx, s.fixture.admin, UpdateReferralConfigArgs{
		MaxLevels:        3,
		LevelPercentages: []decimal.Decimal{decimal.NewFromInt(10)},
		Active:           true,
	})
	s.Require().ErrorIs(mismatchErr, domain.ErrInvalidConfig)

	_, zeroErr := s.referralService.UpdateConfig(ctx, s.fixture.admin, UpdateReferralConfigArgs{
		MaxLevels:        0,
		LevelPercentages: nil,
		Active:           true,
	})
	s.Require().ErrorIs(zeroErr, domain.ErrInvalidConfig)

	_, negativeErr := s.referralService.UpdateConfig(ctx, s.fixture.admin, UpdateReferralConfigArgs{
		MaxLevels:        1,
		LevelPercentages: []decimal.Decimal{decimal.NewFromInt(-5)},
		Active:           true,
	})
	s.Require().ErrorIs(negativeErr, domain.ErrInvalidConfig)
}

func (s *ReferralServiceTestSuite) TestUpdateConfigRequiresAdmin() {
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	_, err := s.referralService.UpdateConfig(context.Background(), user, UpdateReferralConfigArgs{
		MaxLevels:        1,
		LevelPercentages: []decimal.Decimal{decimal.NewFromInt(10)},
		Active:           true,
	})
	s.Require().ErrorIs(err, domain.ErrPermissionDenied)
}

func (s *ReferralServiceTestSuite) TestUpdateConfigReplacesWholeConfig() {
	ctx := context.Background()

	updated, err := s.referralService.UpdateConfig(ctx, s.fixture.admin, UpdateReferralConfigArgs{
		MaxLevels:        2,
		LevelPercentages: []decimal.Decimal{decimal.NewFromInt(7), decimal.NewFromInt(3)},
		Active:           false,
	})
	s.Require().NoError(err)
	s.Equal(2, updated.MaxLevels)
	s.False(updated.Active)

	fetched, getErr := s.referralService.GetConfig(ctx)
	s.Require().NoError(getErr)
	s.Equal(2, fetched.MaxLevels)
	s.True(fetched.LevelPercentages[0].Equal(decimal.NewFromInt(7)))
}
