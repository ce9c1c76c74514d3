package service

import (
	"context"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/memrepo"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// newTestUOW собирает юнит работы над свежим in-memory хранилищем.
func newTestUOW(s *suite.Suite) *uow.UnitOfWork {
	unitOfWork := uow.NewUnitOfWork(memrepo.NewStore())

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
		s.Require().NoError(unitOfWork.Register(uow.RepositoryName(name), factory))
	}
	return unitOfWork
}

func defaultTestLimits() LedgerLimits {
	return LedgerLimits{
		MinWithdrawal: decimal.NewFromInt(50),
		MaxWithdrawal: decimal.NewFromInt(5000),
		WithdrawalFee: decimal.NewFromInt(1),
	}
}

// servicesFixture поднимает полный сервисный слой с админом и дефолтной
// реферальной конфигурацией.
type servicesFixture struct {
	services *AppServices
	admin    domain.Actor
}

func newServicesFixture(s *suite.Suite) *servicesFixture {
	unitOfWork := newTestUOW(s)
	services, factoryErr := Factory(unitOfWork, []byte("test-secret"), defaultTestLimits())
	s.Require().NoError(factoryErr)

	ctx := context.Background()
	adminAccount, adminErr := services.UserService.EnsureAdmin(ctx, "admin", "admin-password")
	s.Require().NoError(adminErr)
	admin := domain.Actor{UserID: adminAccount.ID, Role: adminAccount.Role}

	_, refErr := services.ReferralService.UpdateConfig(ctx, admin, UpdateReferralConfigArgs{
		MaxLevels: 3,
		LevelPercentages: []decimal.Decimal{
			decimal.NewFromInt(10),
			decimal.NewFromInt(5),
			decimal.NewFromInt(2),
		},
		Active: true,
	})
	s.Require().NoError(refErr)

	return &servicesFixture{services: services, admin: admin}
}

// registerUser создает юзера и возвращает его Actor.
func (f *servicesFixture) registerUser(s *suite.Suite, username, referralCode string) (domain.Actor, *domain.Account) {
	account, _, err := f.services.UserService.Register(context.Background(), RegisterUserArgs{
		Username:     username,
		Password:     "password123",
		ReferralCode: referralCode,
	})
	s.Require().NoError(err)
	return domain.Actor{UserID: account.ID, Role: account.Role}, account
}

// fund кредитует available баланс через админский ручной ввод.
func (f *servicesFixture) fund(s *suite.Suite, accountID int64, amount decimal.Decimal) {
	_, err := f.services.LedgerService.ManualEntry(context.Background(), f.admin, ManualEntryArgs{
		AccountID:          accountID,
		Type:               domain.TransactionDeposit,
		Status:             domain.TransactionStatusCompleted,
		Amount:             amount,
		ApplyBalanceChange: true,
	})
	s.Require().NoError(err)
}

func (f *servicesFixture) balance(s *suite.Suite, actor domain.Actor) *BalanceSummary {
	summary, err := f.services.LedgerService.GetBalance(context.Background(), actor)
	s.Require().NoError(err)
	return summary
}
