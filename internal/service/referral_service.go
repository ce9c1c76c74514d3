package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
)

// ReferralService отвечает за конфигурацию реферальной программы.
type ReferralService struct {
	uow        uow.UOW
	configRepo ReferralConfigRepository
}

func NewReferralService(u uow.UOW) (*ReferralService, error) {
	configRepo, configRepoErr := uow.GetRepositoryAs[ReferralConfigRepository](
		u, uow.RepositoryName(repoargs.ReferralConfigRepoName))
	if configRepoErr != nil {
		return nil, configRepoErr
	}
	return &ReferralService{uow: u, configRepo: configRepo}, nil
}

func (s *ReferralService) GetConfig(ctx context.Context) (*domain.ReferralConfig, error) {
	config, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return config, nil
}

type UpdateReferralConfigArgs struct {
	MaxLevels        int
	LevelPercentages []decimal.Decimal
	Active           bool
}

// UpdateConfig заменяет конфигурацию целиком. Количество процентов обязано
// совпадать с MaxLevels, иначе fan-out не знал бы, сколько платить на
// недоописанном уровне. Уже созданные PENDING комиссии новая конфигурация
// не пересчитывает.
func (s *ReferralService) UpdateConfig(
	ctx context.Context,
	actor domain.Actor,
	args UpdateReferralConfigArgs,
) (*domain.ReferralConfig, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if args.MaxLevels < 1 || len(args.LevelPercentages) != args.MaxLevels {
		return nil, domain.ErrInvalidConfig
	}
	for _, percentage := range args.LevelPercentages {
		if percentage.IsNegative() {
			return nil, domain.ErrInvalidConfig
		}
	}

	var config *domain.ReferralConfig
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		configRepo, configRepoErr := uow.GetAs[ReferralConfigRepository](
			tx, uow.RepositoryName(repoargs.ReferralConfigRepoName))
		if configRepoErr != nil {
			return configRepoErr //nolint:wrapcheck
		}
		var saveErr error
		config, saveErr = configRepo.Save(c, domain.ReferralConfig{
			UpdatedAt:        time.Now(),
			MaxLevels:        args.MaxLevels,
			LevelPercentages: args.LevelPercentages,
			Active:           args.Active,
		})
		return saveErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating referral config: %w", txErr)
	}
	return config, nil
}
