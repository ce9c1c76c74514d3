package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/monitoring"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
)

// accrualDay - период одного начисления. Проценты капают раз в сутки
// от момента покупки, а не по календарным дням.
const accrualDay = 24 * time.Hour

// ProcessAccruals начисляет проценты по активным холдингам и закрывает
// дозревшие. За каждый полный период от AccruedThrough до now кредитуется
// DailyEarning (COMPLETED INTEREST транзакция, available += earning). Когда
// now >= EndAt, тело инвестиции возвращается из locked в available, холдинг
// помечается MATURED. Вызов идемпотентен: повторный запуск с тем же now не
// начисляет ничего.
func (s *LedgerService) ProcessAccruals(ctx context.Context, now time.Time) (int, error) {
	var credited int
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		holdingRepo, holdingRepoErr := uow.GetAs[HoldingRepository](
			tx, uow.RepositoryName(repoargs.HoldingRepoName))
		if holdingRepoErr != nil {
			return holdingRepoErr //nolint:wrapcheck
		}
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}

		active, listErr := holdingRepo.ListActive(c)
		if listErr != nil {
			return listErr //nolint:wrapcheck
		}

		for _, holding := range active {
			// Начисления не перешагивают дату погашения.
			horizon := now
			if holding.EndAt.Before(horizon) {
				horizon = holding.EndAt
			}

			for !holding.AccruedThrough.Add(accrualDay).After(horizon) {
				holding.AccruedThrough = holding.AccruedThrough.Add(accrualDay)
				if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
					AccountID:      holding.AccountID,
					AvailableDelta: holding.DailyEarning,
				}); adjErr != nil {
					return adjErr //nolint:wrapcheck
				}
				if _, createErr := transactionRepo.Create(c, repoargs.CreateTransaction{
					AccountID: holding.AccountID,
					Type:      domain.TransactionInterest,
					Status:    domain.TransactionStatusCompleted,
					Amount:    holding.DailyEarning,
					Notes:     fmt.Sprintf("daily earning, %s", holding.PlanName),
				}); createErr != nil {
					return createErr //nolint:wrapcheck
				}
				credited++
			}

			if !now.Before(holding.EndAt) {
				if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
					AccountID:      holding.AccountID,
					AvailableDelta: holding.Invested,
					LockedDelta:    holding.Invested.Neg(),
				}); adjErr != nil {
					return adjErr //nolint:wrapcheck
				}
				holding.Status = domain.HoldingStatusMatured
			}

			if _, saveErr := holdingRepo.Save(c, holding); saveErr != nil {
				return saveErr //nolint:wrapcheck
			}
		}
		return nil
	})
	if txErr != nil {
		return 0, fmt.Errorf("processing accruals: %w", txErr)
	}

	monitoring.AccrualsTotal.Add(float64(credited))
	return credited, nil
}
