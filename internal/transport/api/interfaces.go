package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/internal/service"
	"github.com/fsdevblog/usdt-yield/internal/transport/advisor"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.Account, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.Account, string, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
}

type LedgerServicer interface {
	RequestDeposit(ctx context.Context, actor domain.Actor, args service.RequestDepositArgs) (*domain.Transaction, error)
	RequestWithdrawal(
		ctx context.Context,
		actor domain.Actor,
		args service.RequestWithdrawalArgs,
	) (*domain.Transaction, error)
	ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID int64) (*domain.Transaction, error)
	RejectTransaction(ctx context.Context, actor domain.Actor, transactionID int64) (*domain.Transaction, error)
	PurchasePlan(ctx context.Context, actor domain.Actor, planID int64) (*domain.Holding, error)
	ManualEntry(ctx context.Context, actor domain.Actor, args service.ManualEntryArgs) (*domain.Transaction, error)
	GetBalance(ctx context.Context, actor domain.Actor) (*service.BalanceSummary, error)
	ListTransactions(
		ctx context.Context,
		actor domain.Actor,
		filter repoargs.TransactionFilter,
	) ([]domain.Transaction, error)
	ListHoldings(ctx context.Context, actor domain.Actor) ([]domain.Holding, error)
	ListCommissions(ctx context.Context, actor domain.Actor) ([]domain.ReferralCommission, error)
	AdminStats(ctx context.Context, actor domain.Actor) (*service.SystemStats, error)
	ProcessAccruals(ctx context.Context, now time.Time) (int, error)
}

type PlanServicer interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Plan, error)
	Create(ctx context.Context, actor domain.Actor, args service.PlanArgs) (*domain.Plan, error)
	Update(ctx context.Context, actor domain.Actor, id int64, args service.PlanArgs) (*domain.Plan, error)
	ToggleActive(ctx context.Context, actor domain.Actor, id int64) (*domain.Plan, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type ReferralServicer interface {
	GetConfig(ctx context.Context) (*domain.ReferralConfig, error)
	UpdateConfig(
		ctx context.Context,
		actor domain.Actor,
		args service.UpdateReferralConfigArgs,
	) (*domain.ReferralConfig, error)
}

type Adviser interface {
	Advise(ctx context.Context, profile advisor.Profile, plans []domain.Plan) string
}
