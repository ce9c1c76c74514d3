package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/usdt-yield/internal/accrual"
	"github.com/fsdevblog/usdt-yield/internal/config"
	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/memrepo"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/internal/service"
	"github.com/fsdevblog/usdt-yield/internal/transport/advisor"
	"github.com/fsdevblog/usdt-yield/internal/transport/api"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)

	unitOfWork, uowErr := initUOW(memrepo.NewStore())
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	limits := service.LedgerLimits{
		MinWithdrawal: a.Config.MinWithdrawal,
		MaxWithdrawal: a.Config.MaxWithdrawal,
		WithdrawalFee: a.Config.WithdrawalFee,
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret), limits)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if seedErr := a.seed(notifyCtx, services); seedErr != nil {
		return fmt.Errorf("app run: %s", seedErr.Error())
	}

	llmClient := advisor.NewOpenAIClient(a.Config.OpenAIAPIKey, a.Config.OpenAIModel)
	adviser := advisor.New(llmClient, a.Config.AdvisorTimeout, a.Logger)

	router := api.New(api.RouterArgs{
		Logger:          a.Logger,
		UserService:     services.UserService,
		LedgerService:   services.LedgerService,
		PlanService:     services.PlanService,
		ReferralService: services.ReferralService,
		Adviser:         adviser,
		JWTSecretKey:    []byte(a.Config.JWTUserSecret),
		CORSOrigins:     a.Config.CORSOrigins,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := accrual.New(services.LedgerService, a.Config.AccrualInterval, a.Logger)
	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// seed наполняет пустой леджер: админский счет, стартовые планы и реферальная
// конфигурация из конфига. Повторный запуск ничего не перетирает.
func (a *App) seed(ctx context.Context, services *service.AppServices) error {
	admin, adminErr := services.UserService.EnsureAdmin(ctx, a.Config.AdminUsername, a.Config.AdminPassword)
	if adminErr != nil {
		return fmt.Errorf("seed: %s", adminErr.Error())
	}

	if planErr := services.PlanService.SeedDefaults(ctx); planErr != nil {
		return fmt.Errorf("seed: %s", planErr.Error())
	}

	refConfig, refErr := services.ReferralService.GetConfig(ctx)
	if refErr != nil {
		return fmt.Errorf("seed: %s", refErr.Error())
	}
	if refConfig.MaxLevels == 0 {
		percentages := make([]decimal.Decimal, 0, len(a.Config.ReferralLevels))
		for _, raw := range a.Config.ReferralLevels {
			percentage, parseErr := decimal.NewFromString(raw)
			if parseErr != nil {
				return fmt.Errorf("seed: parsing referral level %q: %s", raw, parseErr.Error())
			}
			percentages = append(percentages, percentage)
		}
		actor := domain.Actor{UserID: admin.ID, Role: admin.Role}
		if _, updErr := services.ReferralService.UpdateConfig(ctx, actor, service.UpdateReferralConfigArgs{
			MaxLevels:        len(percentages),
			LevelPercentages: percentages,
			Active:           true,
		}); updErr != nil {
			return fmt.Errorf("seed: %s", updErr.Error())
		}
	}
	return nil
}

func initUOW(store *memrepo.Store) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(store)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.AccountRepoName: func(dbtx uow.DBTX) uow.Repository {
			return memrepo.NewAccountRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return memrepo.NewTransactionRepository(dbtx)
		},
		repoargs.PlanRepoName: func(dbtx uow.DBTX) uow.Repository {
			return memrepo.NewPlanRepository(dbtx)
		},
		repoargs.HoldingRepoName: func(dbtx uow.DBTX) uow.Repository {
			return memrepo.NewHoldingRepository(dbtx)
		},
		repoargs.CommissionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return memrepo.NewCommissionRepository(dbtx)
		},
		repoargs.ReferralConfigRepoName: func(dbtx uow.DBTX) uow.Repository {
			return memrepo.NewReferralConfigRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
