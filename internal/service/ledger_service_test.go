package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	fixture *servicesFixture
	ledger  *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.fixture = newServicesFixture(&s.Suite)
	s.ledger = s.fixture.services.LedgerService
}

func (s *LedgerServiceTestSuite) TestDepositLifecycle() {
	ctx := context.Background()
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	transaction, depErr := s.ledger.RequestDeposit(ctx, user, RequestDepositArgs{
		Amount:  decimal.NewFromInt(100),
		Network: domain.NetworkTRC20,
	})
	s.Require().NoError(depErr)
	s.Equal(domain.TransactionStatusPending, transaction.Status)

	// заявка не двигает баланс до подтверждения
	s.True(s.fixture.balance(&s.Suite, user).Available.IsZero())

	approved, apprErr := s.ledger.ApproveTransaction(ctx, s.fixture.admin, transaction.ID)
	s.Require().NoError(apprErr)
	s.Equal(domain.TransactionStatusCompleted, approved.Status)
	s.True(s.fixture.balance(&s.Suite, user).Available.Equal(decimal.NewFromInt(100)))

	// повторный approve не должен начислить второй раз
	_, againErr := s.ledger.ApproveTransaction(ctx, s.fixture.admin, transaction.ID)
	var notPending *domain.NotPendingError
	s.Require().ErrorAs(againErr, &notPending)
	s.True(s.fixture.balance(&s.Suite, user).Available.Equal(decimal.NewFromInt(100)))
}

func (s *LedgerServiceTestSuite) TestDepositValidation() {
	ctx := context.Background()
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	_, zeroErr := s.ledger.RequestDeposit(ctx, user, RequestDepositArgs{
		Amount:  decimal.Zero,
		Network: domain.NetworkTRC20,
	})
	s.Require().ErrorIs(zeroErr, domain.ErrInvalidAmount)

	_, netErr := s.ledger.RequestDeposit(ctx, user, RequestDepositArgs{
		Amount:  decimal.NewFromInt(10),
		Network: domain.NetworkType("DOGE"),
	})
	s.Require().ErrorIs(netErr, domain.ErrInvalidNetwork)
}

func (s *LedgerServiceTestSuite) TestDepositRejectLeavesBalanceUntouched() {
	ctx := context.Background()
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	transaction, depErr := s.ledger.RequestDeposit(ctx, user, RequestDepositArgs{
		Amount:  decimal.NewFromInt(100),
		Network: domain.NetworkBEP20,
	})
	s.Require().NoError(depErr)

	rejected, rejErr := s.ledger.RejectTransaction(ctx, s.fixture.admin, transaction.ID)
	s.Require().NoError(rejErr)
	s.Equal(domain.TransactionStatusRejected, rejected.Status)
	s.True(s.fixture.balance(&s.Suite, user).Available.IsZero())
}

func (s *LedgerServiceTestSuite) TestWithdrawalLifecycle() {
	ctx := context.Background()
	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(200))

	transaction, wErr := s.ledger.RequestWithdrawal(ctx, user, RequestWithdrawalArgs{
		Amount:  decimal.NewFromInt(50),
		Address: "TXYZabc123",
	})
	s.Require().NoError(wErr)

	// средства в карантине
	summary := s.fixture.balance(&s.Suite, user)
	s.True(summary.Available.Equal(decimal.NewFromInt(150)))
	s.True(summary.Locked.Equal(decimal.NewFromInt(50)))

	_, apprErr := s.ledger.ApproveTransaction(ctx, s.fixture.admin, transaction.ID)
	s.Require().NoError(apprErr)

	summary = s.fixture.balance(&s.Suite, user)
	s.True(summary.Available.Equal(decimal.NewFromInt(150)))
	s.True(summary.Locked.IsZero())
	s.True(summary.TotalWithdrawn.Equal(decimal.NewFromInt(50)))
}

func (s *LedgerServiceTestSuite) TestWithdrawalRejectRestoresBalance() {
	ctx := context.Background()
	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(200))

	transaction, wErr := s.ledger.RequestWithdrawal(ctx, user, RequestWithdrawalArgs{
		Amount:  decimal.NewFromInt(70),
		Address: "TXYZabc123",
	})
	s.Require().NoError(wErr)

	_, rejErr := s.ledger.RejectTransaction(ctx, s.fixture.admin, transaction.ID)
	s.Require().NoError(rejErr)

	// баланс вернулся ровно к исходному
	summary := s.fixture.balance(&s.Suite, user)
	s.True(summary.Available.Equal(decimal.NewFromInt(200)))
	s.True(summary.Locked.IsZero())
}

func (s *LedgerServiceTestSuite) TestWithdrawalValidation() {
	ctx := context.Background()
	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(100))

	_, belowErr := s.ledger.RequestWithdrawal(ctx, user, RequestWithdrawalArgs{
		Amount:  decimal.NewFromInt(49),
		Address: "TXYZabc123",
	})
	s.Require().ErrorIs(belowErr, domain.ErrBelowMinimum)

	_, aboveErr := s.ledger.RequestWithdrawal(ctx, user, RequestWithdrawalArgs{
		Amount:  decimal.NewFromInt(5001),
		Address: "TXYZabc123",
	})
	s.Require().ErrorIs(aboveErr, domain.ErrAboveMaximum)

	_, addrErr := s.ledger.RequestWithdrawal(ctx, user, RequestWithdrawalArgs{
		Amount:  decimal.NewFromInt(60),
		Address: "   ",
	})
	s.Require().ErrorIs(addrErr, domain.ErrInvalidAddress)
}

func (s *LedgerServiceTestSuite) TestWithdrawalInsufficientBalanceRollsBack() {
	ctx := context.Background()
	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(60))

	_, wErr := s.ledger.RequestWithdrawal(ctx, user, RequestWithdrawalArgs{
		Amount:  decimal.NewFromInt(100),
		Address: "TXYZabc123",
	})
	s.Require().ErrorIs(wErr, domain.ErrNotEnoughBalance)

	// никакой PENDING заявки после отката остаться не должно
	transactions, listErr := s.ledger.ListTransactions(ctx, user, repoargs.TransactionFilter{
		Type:   domain.TransactionWithdrawal,
		Status: domain.TransactionStatusPending,
	})
	s.Require().NoError(listErr)
	s.Empty(transactions)

	summary := s.fixture.balance(&s.Suite, user)
	s.True(summary.Available.Equal(decimal.NewFromInt(60)))
	s.True(summary.Locked.IsZero())
}

func (s *LedgerServiceTestSuite) TestSettlementRequiresAdmin() {
	ctx := context.Background()
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	transaction, depErr := s.ledger.RequestDeposit(ctx, user, RequestDepositArgs{
		Amount:  decimal.NewFromInt(100),
		Network: domain.NetworkTRC20,
	})
	s.Require().NoError(depErr)

	_, apprErr := s.ledger.ApproveTransaction(ctx, user, transaction.ID)
	s.Require().ErrorIs(apprErr, domain.ErrPermissionDenied)

	_, rejErr := s.ledger.RejectTransaction(ctx, user, transaction.ID)
	s.Require().ErrorIs(rejErr, domain.ErrPermissionDenied)
}

func (s *LedgerServiceTestSuite) TestPurchasePlanMovesPriceToLocked() {
	ctx := context.Background()
	s.Require().NoError(s.fixture.services.PlanService.SeedDefaults(ctx))

	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(1000))

	plans, plansErr := s.fixture.services.PlanService.List(ctx, user)
	s.Require().NoError(plansErr)
	s.Require().NotEmpty(plans)
	starter := plans[0]

	holding, purchaseErr := s.ledger.PurchasePlan(ctx, user, starter.ID)
	s.Require().NoError(purchaseErr)

	summary := s.fixture.balance(&s.Suite, user)
	s.True(summary.Available.Equal(decimal.NewFromInt(900)))
	s.True(summary.Locked.Equal(decimal.NewFromInt(100)))

	// холдинг несет снапшот условий: 100 * 1.5% = 1.50 в сутки
	s.Equal(starter.Name, holding.PlanName)
	s.True(holding.Invested.Equal(starter.Price))
	s.True(holding.DailyEarning.Equal(decimal.NewFromFloat(1.50)))
	s.Equal(domain.HoldingStatusActive, holding.Status)

	// покупка фиксируется COMPLETED транзакцией без отдельного approve
	purchases, listErr := s.ledger.ListTransactions(ctx, user, repoargs.TransactionFilter{
		Type: domain.TransactionPlanPurchase,
	})
	s.Require().NoError(listErr)
	s.Require().Len(purchases, 1)
	s.Equal(domain.TransactionStatusCompleted, purchases[0].Status)
}

func (s *LedgerServiceTestSuite) TestPurchaseFailuresLeaveNoTrace() {
	ctx := context.Background()
	s.Require().NoError(s.fixture.services.PlanService.SeedDefaults(ctx))

	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(50))

	plans, plansErr := s.fixture.services.PlanService.List(ctx, user)
	s.Require().NoError(plansErr)
	starter := plans[0]

	_, poorErr := s.ledger.PurchasePlan(ctx, user, starter.ID)
	s.Require().ErrorIs(poorErr, domain.ErrNotEnoughBalance)

	holdings, holdErr := s.ledger.ListHoldings(ctx, user)
	s.Require().NoError(holdErr)
	s.Empty(holdings)

	_, ghostErr := s.ledger.PurchasePlan(ctx, user, 9999)
	s.Require().ErrorIs(ghostErr, domain.ErrRecordNotFound)

	toggled, toggleErr := s.fixture.services.PlanService.ToggleActive(ctx, s.fixture.admin, starter.ID)
	s.Require().NoError(toggleErr)
	s.False(toggled.Active)

	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(1000))
	_, inactiveErr := s.ledger.PurchasePlan(ctx, user, starter.ID)
	s.Require().ErrorIs(inactiveErr, domain.ErrPlanInactive)
}

func (s *LedgerServiceTestSuite) TestCommissionFanOut() {
	ctx := context.Background()
	s.Require().NoError(s.fixture.services.PlanService.SeedDefaults(ctx))

	// цепочка: carol пригласила bob'а, bob пригласил alice
	_, carol := s.fixture.registerUser(&s.Suite, "carol", "")
	bobActor, bob := s.fixture.registerUser(&s.Suite, "bob", carol.ReferralCode)
	aliceActor, alice := s.fixture.registerUser(&s.Suite, "alice", bob.ReferralCode)

	s.fixture.fund(&s.Suite, alice.ID, decimal.NewFromInt(1000))

	plans, plansErr := s.fixture.services.PlanService.List(ctx, aliceActor)
	s.Require().NoError(plansErr)
	starter := plans[0] // 100 USDT

	_, purchaseErr := s.ledger.PurchasePlan(ctx, aliceActor, starter.ID)
	s.Require().NoError(purchaseErr)

	// bob - уровень 1 (10%), carol - уровень 2 (5%)
	bobCommissions, bobErr := s.ledger.ListCommissions(ctx, bobActor)
	s.Require().NoError(bobErr)
	s.Require().Len(bobCommissions, 1)
	s.Equal(1, bobCommissions[0].Level)
	s.True(bobCommissions[0].Amount.Equal(decimal.NewFromInt(10)))
	s.Equal(domain.TransactionStatusPending, bobCommissions[0].Status)

	carolActor := domain.Actor{UserID: carol.ID, Role: carol.Role}
	carolCommissions, carolErr := s.ledger.ListCommissions(ctx, carolActor)
	s.Require().NoError(carolErr)
	s.Require().Len(carolCommissions, 1)
	s.Equal(2, carolCommissions[0].Level)
	s.True(carolCommissions[0].Amount.Equal(decimal.NewFromInt(5)))

	// начисление требует approve: до него баланс bob'а пуст
	s.True(s.fixture.balance(&s.Suite, bobActor).Available.IsZero())

	_, apprErr := s.ledger.ApproveTransaction(ctx, s.fixture.admin, bobCommissions[0].TransactionID)
	s.Require().NoError(apprErr)
	s.True(s.fixture.balance(&s.Suite, bobActor).Available.Equal(decimal.NewFromInt(10)))

	settled, settledErr := s.ledger.ListCommissions(ctx, bobActor)
	s.Require().NoError(settledErr)
	s.Equal(domain.TransactionStatusCompleted, settled[0].Status)

	// отклоненная комиссия не кредитует бенефициара
	_, rejErr := s.ledger.RejectTransaction(ctx, s.fixture.admin, carolCommissions[0].TransactionID)
	s.Require().NoError(rejErr)
	s.True(s.fixture.balance(&s.Suite, carolActor).Available.IsZero())
}

func (s *LedgerServiceTestSuite) TestCommissionFanOutRespectsConfig() {
	ctx := context.Background()
	s.Require().NoError(s.fixture.services.PlanService.SeedDefaults(ctx))

	// конфигурация на 2 уровня
	_, refErr := s.fixture.services.ReferralService.UpdateConfig(ctx, s.fixture.admin, UpdateReferralConfigArgs{
		MaxLevels: 2,
		LevelPercentages: []decimal.Decimal{
			decimal.NewFromInt(10),
			decimal.NewFromInt(5),
		},
		Active: true,
	})
	s.Require().NoError(refErr)

	_, dave := s.fixture.registerUser(&s.Suite, "dave", "")
	_, carol := s.fixture.registerUser(&s.Suite, "carol", dave.ReferralCode)
	_, bob := s.fixture.registerUser(&s.Suite, "bob", carol.ReferralCode)
	aliceActor, alice := s.fixture.registerUser(&s.Suite, "alice", bob.ReferralCode)

	s.fixture.fund(&s.Suite, alice.ID, decimal.NewFromInt(1000))

	plans, plansErr := s.fixture.services.PlanService.List(ctx, aliceActor)
	s.Require().NoError(plansErr)

	_, purchaseErr := s.ledger.PurchasePlan(ctx, aliceActor, plans[0].ID)
	s.Require().NoError(purchaseErr)

	// dave - уровень 3, комиссии быть не должно
	daveActor := domain.Actor{UserID: dave.ID, Role: dave.Role}
	daveCommissions, daveErr := s.ledger.ListCommissions(ctx, daveActor)
	s.Require().NoError(daveErr)
	s.Empty(daveCommissions)
}

func (s *LedgerServiceTestSuite) TestCommissionFanOutDisabled() {
	ctx := context.Background()
	s.Require().NoError(s.fixture.services.PlanService.SeedDefaults(ctx))

	_, refErr := s.fixture.services.ReferralService.UpdateConfig(ctx, s.fixture.admin, UpdateReferralConfigArgs{
		MaxLevels:        1,
		LevelPercentages: []decimal.Decimal{decimal.NewFromInt(10)},
		Active:           false,
	})
	s.Require().NoError(refErr)

	bobActor, bob := s.fixture.registerUser(&s.Suite, "bob", "")
	aliceActor, alice := s.fixture.registerUser(&s.Suite, "alice", bob.ReferralCode)
	s.fixture.fund(&s.Suite, alice.ID, decimal.NewFromInt(1000))

	plans, plansErr := s.fixture.services.PlanService.List(ctx, aliceActor)
	s.Require().NoError(plansErr)

	_, purchaseErr := s.ledger.PurchasePlan(ctx, aliceActor, plans[0].ID)
	s.Require().NoError(purchaseErr)

	commissions, commErr := s.ledger.ListCommissions(ctx, bobActor)
	s.Require().NoError(commErr)
	s.Empty(commissions)
}

func (s *LedgerServiceTestSuite) TestManualEntry() {
	ctx := context.Background()
	user, account := s.fixture.registerUser(&s.Suite, "alice", "")

	// не-админ не может
	_, deniedErr := s.ledger.ManualEntry(ctx, user, ManualEntryArgs{
		AccountID: account.ID,
		Type:      domain.TransactionDeposit,
		Status:    domain.TransactionStatusCompleted,
		Amount:    decimal.NewFromInt(10),
	})
	s.Require().ErrorIs(deniedErr, domain.ErrPermissionDenied)

	// обязательные поля
	_, missingErr := s.ledger.ManualEntry(ctx, s.fixture.admin, ManualEntryArgs{
		Type:   domain.TransactionDeposit,
		Status: domain.TransactionStatusCompleted,
		Amount: decimal.NewFromInt(10),
	})
	s.Require().ErrorIs(missingErr, domain.ErrMissingFields)

	// вставка с применением балансового эффекта
	created, createErr := s.ledger.ManualEntry(ctx, s.fixture.admin, ManualEntryArgs{
		AccountID:          account.ID,
		Type:               domain.TransactionDeposit,
		Status:             domain.TransactionStatusCompleted,
		Amount:             decimal.NewFromInt(25),
		Notes:              "support ticket #42",
		ApplyBalanceChange: true,
	})
	s.Require().NoError(createErr)
	s.Contains(created.Notes, "support ticket #42")
	s.Contains(created.Notes, "manual entry by admin")
	s.True(s.fixture.balance(&s.Suite, user).Available.Equal(decimal.NewFromInt(25)))

	// завершенная запись неизменяема
	_, editErr := s.ledger.ManualEntry(ctx, s.fixture.admin, ManualEntryArgs{
		TransactionID: created.ID,
		AccountID:     account.ID,
		Type:          domain.TransactionDeposit,
		Status:        domain.TransactionStatusRejected,
		Amount:        decimal.NewFromInt(25),
	})
	var notPending *domain.NotPendingError
	s.Require().ErrorAs(editErr, &notPending)
}

func (s *LedgerServiceTestSuite) TestManualEntryEditsPending() {
	ctx := context.Background()
	user, _ := s.fixture.registerUser(&s.Suite, "alice", "")

	pending, depErr := s.ledger.RequestDeposit(ctx, user, RequestDepositArgs{
		Amount:  decimal.NewFromInt(100),
		Network: domain.NetworkTRC20,
	})
	s.Require().NoError(depErr)

	edited, editErr := s.ledger.ManualEntry(ctx, s.fixture.admin, ManualEntryArgs{
		TransactionID:      pending.ID,
		AccountID:          pending.AccountID,
		Type:               domain.TransactionDeposit,
		Status:             domain.TransactionStatusApproved,
		Amount:             decimal.NewFromInt(90),
		ApplyBalanceChange: true,
	})
	s.Require().NoError(editErr)
	s.Equal(domain.TransactionStatusApproved, edited.Status)
	s.True(edited.Amount.Equal(decimal.NewFromInt(90)))
	s.True(s.fixture.balance(&s.Suite, user).Available.Equal(decimal.NewFromInt(90)))
}

func (s *LedgerServiceTestSuite) TestListTransactionsScoping() {
	ctx := context.Background()
	alice, aliceAccount := s.fixture.registerUser(&s.Suite, "alice", "")
	_, bobAccount := s.fixture.registerUser(&s.Suite, "bob", "")

	s.fixture.fund(&s.Suite, aliceAccount.ID, decimal.NewFromInt(10))
	s.fixture.fund(&s.Suite, bobAccount.ID, decimal.NewFromInt(20))

	// не-админ видит только свое, даже если просит чужой счет
	transactions, listErr := s.ledger.ListTransactions(ctx, alice, repoargs.TransactionFilter{
		AccountID: bobAccount.ID,
	})
	s.Require().NoError(listErr)
	s.Require().Len(transactions, 1)
	s.Equal(aliceAccount.ID, transactions[0].AccountID)

	// админ видит все
	all, allErr := s.ledger.ListTransactions(ctx, s.fixture.admin, repoargs.TransactionFilter{})
	s.Require().NoError(allErr)
	s.Len(all, 2)
}

func (s *LedgerServiceTestSuite) TestAdminStats() {
	ctx := context.Background()
	user, account := s.fixture.registerUser(&s.Suite, "alice", "")
	s.fixture.fund(&s.Suite, account.ID, decimal.NewFromInt(300))

	_, wErr := s.ledger.RequestWithdrawal(ctx, user, RequestWithdrawalArgs{
		Amount:  decimal.NewFromInt(50),
		Address: "TXYZabc123",
	})
	s.Require().NoError(wErr)

	_, deniedErr := s.ledger.AdminStats(ctx, user)
	s.Require().ErrorIs(deniedErr, domain.ErrPermissionDenied)

	stats, statsErr := s.ledger.AdminStats(ctx, s.fixture.admin)
	s.Require().NoError(statsErr)
	s.Equal(int64(2), stats.TotalAccounts) // admin + alice
	s.True(stats.TotalDeposits.Equal(decimal.NewFromInt(300)))
	s.Equal(int64(1), stats.PendingWithdrawals)
	s.True(stats.SystemBalance.Equal(decimal.NewFromInt(300)))
}
