package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerAccrualTestSuite struct {
	suite.Suite
	fixture *servicesFixture
	ledger  *LedgerService
	user    domain.Actor
	holding *domain.Holding
}

func TestLedgerAccrualSuite(t *testing.T) {
	suite.Run(t, new(LedgerAccrualTestSuite))
}

func (s *LedgerAccrualTestSuite) SetupTest() {
	s.fixture = newServicesFixture(&s.Suite)
	s.ledger = s.fixture.services.LedgerService

	ctx := context.Background()
	s.Require().NoError(s.fixture.services.PlanService.SeedDefaults(ctx))

	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.user = user
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(1000))

	plans, plansErr := s.fixture.services.PlanService.List(ctx, user)
	s.Require().NoError(plansErr)

	// Starter Yield: 100 USDT, 1.5% в сутки, 30 дней
	holding, purchaseErr := s.ledger.PurchasePlan(ctx, user, plans[0].ID)
	s.Require().NoError(purchaseErr)
	s.holding = holding
}

func (s *LedgerAccrualTestSuite) TestCreditsOncePerElapsedDay() {
	ctx := context.Background()

	credited, err := s.ledger.ProcessAccruals(ctx, s.holding.StartAt.Add(25*time.Hour))
	s.Require().NoError(err)
	s.Equal(1, credited)

	summary := s.fixture.balance(&s.Suite, s.user)
	s.True(summary.Available.Equal(decimal.NewFromFloat(901.50)))
	s.True(summary.TotalEarned.Equal(decimal.NewFromFloat(1.50)))

	// повторный запуск с тем же моментом времени ничего не доначисляет
	again, againErr := s.ledger.ProcessAccruals(ctx, s.holding.StartAt.Add(25*time.Hour))
	s.Require().NoError(againErr)
	s.Zero(again)
	s.True(s.fixture.balance(&s.Suite, s.user).Available.Equal(decimal.NewFromFloat(901.50)))
}

func (s *LedgerAccrualTestSuite) TestCatchesUpMissedDays() {
	ctx := context.Background()

	credited, err := s.ledger.ProcessAccruals(ctx, s.holding.StartAt.Add(73*time.Hour))
	s.Require().NoError(err)
	s.Equal(3, credited)

	interest, sumErr := s.ledger.ListTransactions(ctx, s.user, repoargs.TransactionFilter{
		Type: domain.TransactionInterest,
	})
	s.Require().NoError(sumErr)
	s.Len(interest, 3)
}

func (s *LedgerAccrualTestSuite) TestMaturityReleasesPrincipal() {
	ctx := context.Background()

	credited, err := s.ledger.ProcessAccruals(ctx, s.holding.EndAt.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(30, credited)

	summary := s.fixture.balance(&s.Suite, s.user)
	// 900 + 100 тела + 30 * 1.50 процентов
	s.True(summary.Available.Equal(decimal.NewFromInt(1045)))
	s.True(summary.Locked.IsZero())

	holdings, holdErr := s.ledger.ListHoldings(ctx, s.user)
	s.Require().NoError(holdErr)
	s.Require().Len(holdings, 1)
	s.Equal(domain.HoldingStatusMatured, holdings[0].Status)

	// дозревший холдинг больше не начисляет
	again, againErr := s.ledger.ProcessAccruals(ctx, s.holding.EndAt.Add(48*time.Hour))
	s.Require().NoError(againErr)
	s.Zero(again)
}
