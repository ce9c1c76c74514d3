package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type BalanceSummary struct {
	Available      decimal.Decimal
	Locked         decimal.Decimal
	TotalEarned    decimal.Decimal
	TotalWithdrawn decimal.Decimal
}

// GetBalance возвращает сводку балансов счета. Чтение идет вне транзакции и
// может отдать чуть устаревший, но целостный снимок.
func (s *LedgerService) GetBalance(ctx context.Context, actor domain.Actor) (*BalanceSummary, error) {
	account, accErr := s.accountRepo.FindByID(ctx, actor.UserID)
	if accErr != nil {
		return nil, accErr //nolint:wrapcheck
	}

	interest, interestErr := s.transactionRepo.Sum(ctx, repoargs.TransactionFilter{
		AccountID: account.ID,
		Type:      domain.TransactionInterest,
		Status:    domain.TransactionStatusCompleted,
	})
	if interestErr != nil {
		return nil, interestErr //nolint:wrapcheck
	}
	commissions, commissionsErr := s.transactionRepo.Sum(ctx, repoargs.TransactionFilter{
		AccountID: account.ID,
		Type:      domain.TransactionReferralCommission,
		Status:    domain.TransactionStatusCompleted,
	})
	if commissionsErr != nil {
		return nil, commissionsErr //nolint:wrapcheck
	}
	withdrawn, withdrawnErr := s.transactionRepo.Sum(ctx, repoargs.TransactionFilter{
		AccountID: account.ID,
		Type:      domain.TransactionWithdrawal,
		Status:    domain.TransactionStatusCompleted,
	})
	if withdrawnErr != nil {
		return nil, withdrawnErr //nolint:wrapcheck
	}

	return &BalanceSummary{
		Available:      account.Available,
		Locked:         account.Locked,
		TotalEarned:    interest.Add(commissions),
		TotalWithdrawn: withdrawn,
	}, nil
}

// ListTransactions возвращает транзакции по фильтру. Не-админ всегда видит
// только свои записи, какой бы AccountID он ни передал.
func (s *LedgerService) ListTransactions(
	ctx context.Context,
	actor domain.Actor,
	filter repoargs.TransactionFilter,
) ([]domain.Transaction, error) {
	if !actor.IsAdmin() {
		filter.AccountID = actor.UserID
	}
	transactions, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

func (s *LedgerService) ListHoldings(ctx context.Context, actor domain.Actor) ([]domain.Holding, error) {
	holdings, err := s.holdingRepo.GetByAccountID(ctx, actor.UserID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return holdings, nil
}

func (s *LedgerService) ListCommissions(
	ctx context.Context,
	actor domain.Actor,
) ([]domain.ReferralCommission, error) {
	commissions, err := s.commissionRepo.GetByBeneficiaryID(ctx, actor.UserID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return commissions, nil
}

type SystemStats struct {
	TotalAccounts      int64
	TotalDeposits      decimal.Decimal
	PendingWithdrawals int64
	SystemBalance      decimal.Decimal
}

// AdminStats собирает цифры для админской обзорной панели.
func (s *LedgerService) AdminStats(ctx context.Context, actor domain.Actor) (*SystemStats, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	accounts, accountsErr := s.accountRepo.Count(ctx)
	if accountsErr != nil {
		return nil, accountsErr //nolint:wrapcheck
	}
	deposits, depositsErr := s.transactionRepo.Sum(ctx, repoargs.TransactionFilter{
		Type:   domain.TransactionDeposit,
		Status: domain.TransactionStatusCompleted,
	})
	if depositsErr != nil {
		return nil, depositsErr //nolint:wrapcheck
	}
	pending, pendingErr := s.transactionRepo.Count(ctx, repoargs.TransactionFilter{
		Type:   domain.TransactionWithdrawal,
		Status: domain.TransactionStatusPending,
	})
	if pendingErr != nil {
		return nil, pendingErr //nolint:wrapcheck
	}
	balance, balanceErr := s.accountRepo.SumBalances(ctx)
	if balanceErr != nil {
		return nil, fmt.Errorf("admin stats: %w", balanceErr)
	}

	return &SystemStats{
		TotalAccounts:      accounts,
		TotalDeposits:      deposits,
		PendingWithdrawals: pending,
		SystemBalance:      balance,
	}, nil
}
