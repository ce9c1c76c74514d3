package service

import (
	"context"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
	AdjustBalances(ctx context.Context, args repoargs.AdjustBalances) (*domain.Account, error)
	Count(ctx context.Context) (int64, error)
	SumBalances(ctx context.Context) (decimal.Decimal, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TransactionStatusType) (*domain.Transaction, error)
	Update(ctx context.Context, args repoargs.UpdateTransaction) (*domain.Transaction, error)
	List(ctx context.Context, filter repoargs.TransactionFilter) ([]domain.Transaction, error)
	Sum(ctx context.Context, filter repoargs.TransactionFilter) (decimal.Decimal, error)
	Count(ctx context.Context, filter repoargs.TransactionFilter) (int64, error)
}

type PlanRepository interface {
	Create(ctx context.Context, args repoargs.CreatePlan) (*domain.Plan, error)
	FindByID(ctx context.Context, id int64) (*domain.Plan, error)
	Save(ctx context.Context, plan domain.Plan) (*domain.Plan, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, activeOnly bool) ([]domain.Plan, error)
	Count(ctx context.Context) (int64, error)
}

type HoldingRepository interface {
	Create(ctx context.Context, args repoargs.CreateHolding) (*domain.Holding, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.Holding, error)
	ListActive(ctx context.Context) ([]domain.Holding, error)
	Save(ctx context.Context, holding domain.Holding) (*domain.Holding, error)
}

type CommissionRepository interface {
	Create(ctx context.Context, args repoargs.CreateCommission) (*domain.ReferralCommission, error)
	GetByBeneficiaryID(ctx context.Context, beneficiaryID int64) ([]domain.ReferralCommission, error)
	FindByTransactionID(ctx context.Context, transactionID int64) (*domain.ReferralCommission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TransactionStatusType) (*domain.ReferralCommission, error)
}

type ReferralConfigRepository interface {
	Get(ctx context.Context) (*domain.ReferralConfig, error)
	Save(ctx context.Context, config domain.ReferralConfig) (*domain.ReferralConfig, error)
}
