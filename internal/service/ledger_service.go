package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/monitoring"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
)

const moneyScale = 2

var hundred = decimal.NewFromInt(100)

// LedgerLimits - лимиты вывода средств. Задаются конфигурацией, а не
// бизнес-логикой.
type LedgerLimits struct {
	MinWithdrawal decimal.Decimal
	MaxWithdrawal decimal.Decimal
	WithdrawalFee decimal.Decimal
}

// LedgerService - единственная точка мутации балансов счетов и статусов
// транзакций. Все изменения идут через uow.Do: либо операция применяется
// целиком, либо откатывается целиком.
type LedgerService struct {
	uow             uow.UOW
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	holdingRepo     HoldingRepository
	commissionRepo  CommissionRepository
	limits          LedgerLimits
}

func NewLedgerService(u uow.UOW, limits LedgerLimits) (*LedgerService, error) {
	accountRepo, accountRepoErr := uow.GetRepositoryAs[AccountRepository](
		u, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return nil, accountRepoErr
	}
	transactionRepo, transactionRepoErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	holdingRepo, holdingRepoErr := uow.GetRepositoryAs[HoldingRepository](
		u, uow.RepositoryName(repoargs.HoldingRepoName))
	if holdingRepoErr != nil {
		return nil, holdingRepoErr
	}
	commissionRepo, commissionRepoErr := uow.GetRepositoryAs[CommissionRepository](
		u, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return nil, commissionRepoErr
	}
	return &LedgerService{
		uow:             u,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		holdingRepo:     holdingRepo,
		commissionRepo:  commissionRepo,
		limits:          limits,
	}, nil
}

type RequestDepositArgs struct {
	Amount      decimal.Decimal
	Network     domain.NetworkType
	ExternalRef string
}

// RequestDeposit создает PENDING транзакцию пополнения. Баланс не меняется:
// депозит не существует для леджера, пока админ не подтвердит поступление
// средств.
func (s *LedgerService) RequestDeposit(
	ctx context.Context,
	actor domain.Actor,
	args RequestDepositArgs,
) (*domain.Transaction, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !args.Network.Valid() {
		return nil, domain.ErrInvalidNetwork
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		if _, findErr := accountRepo.FindByID(c, actor.UserID); findErr != nil {
			return findErr //nolint:wrapcheck
		}

		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		var createErr error
		transaction, createErr = transactionRepo.Create(c, repoargs.CreateTransaction{
			AccountID:   actor.UserID,
			Type:        domain.TransactionDeposit,
			Status:      domain.TransactionStatusPending,
			Amount:      args.Amount.Round(moneyScale),
			Network:     args.Network,
			ExternalRef: args.ExternalRef,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("requesting deposit: %w", txErr)
	}
	return transaction, nil
}

type RequestWithdrawalArgs struct {
	Amount  decimal.Decimal
	Address string
}

// RequestWithdrawal резервирует средства под вывод: available -= amount,
// locked += amount, плюс PENDING транзакция. Карантин ставится сразу, чтобы
// юзер не мог потратить те же средства, пока заявка ждет подтверждения.
func (s *LedgerService) RequestWithdrawal(
	ctx context.Context,
	actor domain.Actor,
	args RequestWithdrawalArgs,
) (*domain.Transaction, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if strings.TrimSpace(args.Address) == "" {
		return nil, domain.ErrInvalidAddress
	}
	if args.Amount.LessThan(s.limits.MinWithdrawal) {
		return nil, domain.ErrBelowMinimum
	}
	if args.Amount.GreaterThan(s.limits.MaxWithdrawal) {
		return nil, domain.ErrAboveMaximum
	}

	amount := args.Amount.Round(moneyScale)

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
			AccountID:      actor.UserID,
			AvailableDelta: amount.Neg(),
			LockedDelta:    amount,
		}); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}

		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		var createErr error
		transaction, createErr = transactionRepo.Create(c, repoargs.CreateTransaction{
			AccountID: actor.UserID,
			Type:      domain.TransactionWithdrawal,
			Status:    domain.TransactionStatusPending,
			Amount:    amount,
			Address:   args.Address,
			Fee:       s.limits.WithdrawalFee,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", txErr)
	}
	return transaction, nil
}

// ApproveTransaction подтверждает PENDING транзакцию (settlement). Эффект
// зависит от типа:
//   - DEPOSIT: available += amount - единственный путь появления средств в
//     леджере;
//   - WITHDRAWAL: locked -= amount - зарезервированные средства покидают
//     систему;
//   - REFERRAL_COMMISSION: available += amount бенефициару, связанная запись
//     комиссии тоже закрывается.
//
// Повторный approve вернет *domain.NotPendingError: баланс не должен
// начисляться дважды.
func (s *LedgerService) ApproveTransaction(
	ctx context.Context,
	actor domain.Actor,
	transactionID int64,
) (*domain.Transaction, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		pending, findErr := transactionRepo.FindByID(c, transactionID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if pending.Status != domain.TransactionStatusPending {
			return domain.NewNotPendingError(pending.ID, pending.Status)
		}

		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}

		switch pending.Type {
		case domain.TransactionDeposit:
			if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
				AccountID:      pending.AccountID,
				AvailableDelta: pending.Amount,
			}); adjErr != nil {
				return adjErr //nolint:wrapcheck
			}
		case domain.TransactionWithdrawal:
			if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
				AccountID:   pending.AccountID,
				LockedDelta: pending.Amount.Neg(),
			}); adjErr != nil {
				return adjErr //nolint:wrapcheck
			}
		case domain.TransactionReferralCommission:
			if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
				AccountID:      pending.AccountID,
				AvailableDelta: pending.Amount,
			}); adjErr != nil {
				return adjErr //nolint:wrapcheck
			}
			if commErr := s.settleCommission(c, tx, pending.ID, domain.TransactionStatusCompleted); commErr != nil {
				return commErr
			}
		default:
			// INTEREST и PLAN_PURCHASE в PENDING попадают только через ручной
			// ввод, балансового эффекта при settlement не имеют.
		}

		var updErr error
		transaction, updErr = transactionRepo.UpdateStatus(c, pending.ID, domain.TransactionStatusCompleted)
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("approving transaction %d: %w", transactionID, txErr)
	}

	monitoring.SettlementsTotal.WithLabelValues(string(transaction.Type), "approved").Inc()
	return transaction, nil
}

// RejectTransaction отклоняет PENDING транзакцию. Для WITHDRAWAL карантин
// снимается (locked -= amount, available += amount) - заявка обязана
// вернуть баланс ровно к исходному значению. Отклонение DEPOSIT'а баланс не
// трогает: начисления и не было.
func (s *LedgerService) RejectTransaction(
	ctx context.Context,
	actor domain.Actor,
	transactionID int64,
) (*domain.Transaction, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		pending, findErr := transactionRepo.FindByID(c, transactionID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if pending.Status != domain.TransactionStatusPending {
			return domain.NewNotPendingError(pending.ID, pending.Status)
		}

		if pending.Type == domain.TransactionWithdrawal {
			accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
				tx, uow.RepositoryName(repoargs.AccountRepoName))
			if accountRepoErr != nil {
				return accountRepoErr //nolint:wrapcheck
			}
			if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
				AccountID:      pending.AccountID,
				AvailableDelta: pending.Amount,
				LockedDelta:    pending.Amount.Neg(),
			}); adjErr != nil {
				return adjErr //nolint:wrapcheck
			}
		}
		if pending.Type == domain.TransactionReferralCommission {
			if commErr := s.settleCommission(c, tx, pending.ID, domain.TransactionStatusRejected); commErr != nil {
				return commErr
			}
		}

		var updErr error
		transaction, updErr = transactionRepo.UpdateStatus(c, pending.ID, domain.TransactionStatusRejected)
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("rejecting transaction %d: %w", transactionID, txErr)
	}

	monitoring.SettlementsTotal.WithLabelValues(string(transaction.Type), "rejected").Inc()
	return transaction, nil
}

// PurchasePlan покупает план: цена атомарно переезжает из available в locked,
// создается COMPLETED транзакция покупки (approval'а у покупки нет), холдинг
// со снапшотом условий плана и PENDING комиссии аплайнерам.
func (s *LedgerService) PurchasePlan(
	ctx context.Context,
	actor domain.Actor,
	planID int64,
) (*domain.Holding, error) {
	var holding *domain.Holding
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		planRepo, planRepoErr := uow.GetAs[PlanRepository](
			tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planRepoErr != nil {
			return planRepoErr //nolint:wrapcheck
		}
		plan, planErr := planRepo.FindByID(c, planID)
		if planErr != nil {
			return planErr //nolint:wrapcheck
		}
		if !plan.Active {
			return domain.ErrPlanInactive
		}

		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		buyer, buyerErr := accountRepo.FindByID(c, actor.UserID)
		if buyerErr != nil {
			return buyerErr //nolint:wrapcheck
		}
		if _, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
			AccountID:      buyer.ID,
			AvailableDelta: plan.Price.Neg(),
			LockedDelta:    plan.Price,
		}); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}

		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		if _, createErr := transactionRepo.Create(c, repoargs.CreateTransaction{
			AccountID: buyer.ID,
			Type:      domain.TransactionPlanPurchase,
			Status:    domain.TransactionStatusCompleted,
			Amount:    plan.Price,
			Notes:     plan.Name,
		}); createErr != nil {
			return createErr //nolint:wrapcheck
		}

		holdingRepo, holdingRepoErr := uow.GetAs[HoldingRepository](
			tx, uow.RepositoryName(repoargs.HoldingRepoName))
		if holdingRepoErr != nil {
			return holdingRepoErr //nolint:wrapcheck
		}
		now := time.Now()
		var holdErr error
		holding, holdErr = holdingRepo.Create(c, repoargs.CreateHolding{
			AccountID:    buyer.ID,
			PlanID:       plan.ID,
			PlanName:     plan.Name,
			Invested:     plan.Price,
			DailyEarning: plan.Price.Mul(plan.DailyRate).Div(hundred).Round(moneyScale),
			StartAt:      now,
			EndAt:        now.Add(accrualDay * time.Duration(plan.DurationDays)),
		})
		if holdErr != nil {
			return holdErr //nolint:wrapcheck
		}

		return s.fanOutCommissions(c, tx, buyer, plan)
	})
	if txErr != nil {
		return nil, fmt.Errorf("purchasing plan %d: %w", planID, txErr)
	}

	monitoring.PlanPurchasesTotal.Inc()
	return holding, nil
}

// fanOutCommissions обходит цепочку аплайнеров покупателя вверх, максимум
// config.MaxLevels шагов. На каждом шаге создается PENDING комиссия и
// PENDING транзакция бенефициару: начисление требует отдельного approve'а.
// Обрыв цепочки раньше maxLevels - не ошибка, просто ранний выход.
func (s *LedgerService) fanOutCommissions(
	ctx context.Context,
	tx uow.TX,
	buyer *domain.Account,
	plan *domain.Plan,
) error {
	configRepo, configRepoErr := uow.GetAs[ReferralConfigRepository](
		tx, uow.RepositoryName(repoargs.ReferralConfigRepoName))
	if configRepoErr != nil {
		return configRepoErr //nolint:wrapcheck
	}
	config, configErr := configRepo.Get(ctx)
	if configErr != nil {
		return configErr //nolint:wrapcheck
	}
	if !config.Active || config.MaxLevels < 1 {
		return nil
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
	commissionRepo, commissionRepoErr := uow.GetAs[CommissionRepository](
		tx, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return commissionRepoErr //nolint:wrapcheck
	}

	upliner := buyer.UplinerID
	for level := 1; level <= config.MaxLevels && upliner != nil; level++ {
		beneficiary, findErr := accountRepo.FindByID(ctx, *upliner)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if level-1 >= len(config.LevelPercentages) {
			break
		}
		percentage := config.LevelPercentages[level-1]
		amount := plan.Price.Mul(percentage).Div(hundred).Round(moneyScale)
		if amount.IsPositive() {
			commissionTx, createErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
				AccountID: beneficiary.ID,
				Type:      domain.TransactionReferralCommission,
				Status:    domain.TransactionStatusPending,
				Amount:    amount,
				Notes:     fmt.Sprintf("level %d commission, %s by %s", level, plan.Name, buyer.Username),
			})
			if createErr != nil {
				return createErr //nolint:wrapcheck
			}
			if _, commErr := commissionRepo.Create(ctx, repoargs.CreateCommission{
				SourceID:      buyer.ID,
				BeneficiaryID: beneficiary.ID,
				TransactionID: commissionTx.ID,
				Level:         level,
				PlanName:      plan.Name,
				BaseAmount:    plan.Price,
				Percentage:    percentage,
				Amount:        amount,
			}); commErr != nil {
				return commErr //nolint:wrapcheck
			}
		}
		upliner = beneficiary.UplinerID
	}
	return nil
}

type ManualEntryArgs struct {
	TransactionID      int64 // 0 - вставка новой записи
	AccountID          int64
	Type               domain.TransactionType
	Status             domain.TransactionStatusType
	Amount             decimal.Decimal
	Network            domain.NetworkType
	Notes              string
	ApplyBalanceChange bool
}

// ManualEntry - админский override: вставка или правка транзакции с
// произвольным статусом. Если запрошено применение балансового эффекта и
// итоговый статус APPROVED/COMPLETED - DEPOSIT кредитует, а WITHDRAWAL
// дебетует available. Кто внес правку, всегда фиксируется в notes.
func (s *LedgerService) ManualEntry(
	ctx context.Context,
	actor domain.Actor,
	args ManualEntryArgs,
) (*domain.Transaction, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if args.AccountID == 0 || !args.Amount.IsPositive() {
		return nil, domain.ErrMissingFields
	}

	notes := fmt.Sprintf("manual entry by admin #%d", actor.UserID)
	if strings.TrimSpace(args.Notes) != "" {
		notes = fmt.Sprintf("%s; %s", strings.TrimSpace(args.Notes), notes)
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}

		amount := args.Amount.Round(moneyScale)
		if args.TransactionID == 0 {
			var createErr error
			transaction, createErr = transactionRepo.Create(c, repoargs.CreateTransaction{
				AccountID: args.AccountID,
				Type:      args.Type,
				Status:    args.Status,
				Amount:    amount,
				Network:   args.Network,
				Notes:     notes,
			})
			if createErr != nil {
				return createErr //nolint:wrapcheck
			}
		} else {
			existing, findErr := transactionRepo.FindByID(c, args.TransactionID)
			if findErr != nil {
				return findErr //nolint:wrapcheck
			}
			// Завершенные и отклоненные записи неизменяемы.
			if existing.Status.Terminal() {
				return domain.NewNotPendingError(existing.ID, existing.Status)
			}
			var updErr error
			transaction, updErr = transactionRepo.Update(c, repoargs.UpdateTransaction{
				ID:     args.TransactionID,
				Status: args.Status,
				Amount: amount,
				Notes:  notes,
			})
			if updErr != nil {
				return updErr //nolint:wrapcheck
			}
		}

		if !args.ApplyBalanceChange {
			return nil
		}
		if args.Status != domain.TransactionStatusApproved && args.Status != domain.TransactionStatusCompleted {
			return nil
		}

		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		delta := amount
		if args.Type == domain.TransactionWithdrawal {
			delta = amount.Neg()
		} else if args.Type != domain.TransactionDeposit {
			return nil
		}
		_, adjErr := accountRepo.AdjustBalances(c, repoargs.AdjustBalances{
			AccountID:      args.AccountID,
			AvailableDelta: delta,
		})
		return adjErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("manual transaction entry: %w", txErr)
	}
	return transaction, nil
}

func (s *LedgerService) settleCommission(
	ctx context.Context,
	tx uow.TX,
	transactionID int64,
	status domain.TransactionStatusType,
) error {
	commissionRepo, commissionRepoErr := uow.GetAs[CommissionRepository](
		tx, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return commissionRepoErr //nolint:wrapcheck
	}
	commission, findErr := commissionRepo.FindByTransactionID(ctx, transactionID)
	if findErr != nil {
		return findErr //nolint:wrapcheck
	}
	_, updErr := commissionRepo.UpdateStatus(ctx, commission.ID, status)
	return updErr //nolint:wrapcheck
}
