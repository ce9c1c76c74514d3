package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PlanServiceTestSuite struct {
	suite.Suite
	fixture     *servicesFixture
	planService *PlanService
}

func TestPlanServiceSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}

func (s *PlanServiceTestSuite) SetupTest() {
	s.fixture = newServicesFixture(&s.Suite)
	s.planService = s.fixture.services.PlanService
}

func (s *PlanServiceTestSuite) TestSeedDefaults() {
	ctx := context.Background()
	s.Require().NoError(s.planService.SeedDefaults(ctx))

	plans, listErr := s.planService.List(ctx, s.fixture.admin)
	s.Require().NoError(listErr)
	s.Require().Len(plans, 3)

	// Pro Multiplier: 500 + 500 * 2.2% * 45 = 995
	pro := plans[1]
	s.Equal("Pro Multiplier", pro.Name)
	s.True(pro.TotalProfit.Equal(decimal.NewFromInt(995)))

	// повторный seed не дублирует каталог
	s.Require().NoError(s.planService.SeedDefaults(ctx))
	again, againErr := s.planService.List(ctx, s.fixture.admin)
	s.Require().NoError(againErr)
	s.Len(again, 3)
}

func (s *PlanServiceTestSuite) TestCreateRecomputesTotalProfit() {
	ctx := context.Background()

	plan, createErr := s.planService.Create(ctx, s.fixture.admin, PlanArgs{
		Name:         "Test Plan",
		Price:        decimal.NewFromInt(200),
		DailyRate:    decimal.NewFromInt(1),
		DurationDays: 10,
		Active:       true,
	})
	s.Require().NoError(createErr)
	// 200 + 200 * 1% * 10 = 220
	s.True(plan.TotalProfit.Equal(decimal.NewFromInt(220)))
}

func (s *PlanServiceTestSuite) TestValidation() {
	ctx := context.Background()

	_, namelessErr := s.planService.Create(ctx, s.fixture.admin, PlanArgs{
		Price:        decimal.NewFromInt(100),
		DailyRate:    decimal.NewFromInt(1),
		DurationDays: 10,
	})
	s.Require().ErrorIs(namelessErr, domain.ErrMissingFields)

	_, freeErr := s.planService.Create(ctx, s.fixture.admin, PlanArgs{
		Name:         "Free Lunch",
		Price:        decimal.Zero,
		DailyRate:    decimal.NewFromInt(1),
		DurationDays: 10,
	})
	s.Require().ErrorIs(freeErr, domain.ErrInvalidAmount)
}

func (s *PlanServiceTestSuite) TestAdminOnlyMutations() {
	ctx := context.Background()
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	args := PlanArgs{
		Name:         "Test Plan",
		Price:        decimal.NewFromInt(100),
		DailyRate:    decimal.NewFromInt(1),
		DurationDays: 10,
	}

	_, createErr := s.planService.Create(ctx, user, args)
	s.Require().ErrorIs(createErr, domain.ErrPermissionDenied)

	_, updateErr := s.planService.Update(ctx, user, 1, args)
	s.Require().ErrorIs(updateErr, domain.ErrPermissionDenied)

	s.Require().ErrorIs(s.planService.Delete(ctx, user, 1), domain.ErrPermissionDenied)
}

func (s *PlanServiceTestSuite) TestInactivePlansHiddenFromUsers() {
	ctx := context.Background()
	s.Require().NoError(s.planService.SeedDefaults(ctx))
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	plans, listErr := s.planService.List(ctx, user)
	s.Require().NoError(listErr)

	_, toggleErr := s.planService.ToggleActive(ctx, s.fixture.admin, plans[0].ID)
	s.Require().NoError(toggleErr)

	visible, visibleErr := s.planService.List(ctx, user)
	s.Require().NoError(visibleErr)
	s.Len(visible, len(plans)-1)

	// админ продолжает видеть весь каталог
	all, allErr := s.planService.List(ctx, s.fixture.admin)
	s.Require().NoError(allErr)
	s.Len(all, len(plans))
}

func (s *PlanServiceTestSuite) TestUpdateDoesNotTouchExistingHoldings() {
	ctx := context.Background()
	s.Require().NoError(s.planService.SeedDefaults(ctx))

	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(1000))

	plans, plansErr := s.planService.List(ctx, user)
	s.Require().NoError(plansErr)
	starter := plans[0]

	holding, purchaseErr := s.fixture.services.LedgerService.PurchasePlan(ctx, user, starter.ID)
	s.Require().NoError(purchaseErr)

	_, updateErr := s.planService.Update(ctx, s.fixture.admin, starter.ID, PlanArgs{
		Name:         "Starter Yield v2",
		Price:        decimal.NewFromInt(150),
		DailyRate:    decimal.NewFromInt(9),
		DurationDays: 5,
		Active:       true,
	})
	s.Require().NoError(updateErr)

	// холдинг живет на снапшоте условий момента покупки
	holdings, holdErr := s.fixture.services.LedgerService.ListHoldings(ctx, user)
	s.Require().NoError(holdErr)
	s.Require().Len(holdings, 1)
	s.Equal(holding.PlanName, holdings[0].PlanName)
	s.True(holdings[0].Invested.Equal(decimal.NewFromInt(100)))
	s.True(holdings[0].DailyEarning.Equal(decimal.NewFromFloat(1.50)))
}

func (s *PlanServiceTestSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.planService.SeedDefaults(ctx))

	plans, listErr := s.planService.List(ctx, s.fixture.admin)
	s.Require().NoError(listErr)

	s.Require().NoError(s.planService.Delete(ctx, s.fixture.admin, plans[0].ID))

	rest, restErr := s.planService.List(ctx, s.fixture.admin)
	s.Require().NoError(restErr)
	s.Len(rest, len(plans)-1)

	s.Require().ErrorIs(s.planService.Delete(ctx, s.fixture.admin, plans[0].ID), domain.ErrRecordNotFound)
}
