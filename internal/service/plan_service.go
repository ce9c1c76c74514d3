package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
)

// PlanService управляет каталогом инвестиционных планов.
type PlanService struct {
	uow      uow.UOW
	planRepo PlanRepository
}

func NewPlanService(u uow.UOW) (*PlanService, error) {
	planRepo, planRepoErr := uow.GetRepositoryAs[PlanRepository](
		u, uow.RepositoryName(repoargs.PlanRepoName))
	if planRepoErr != nil {
		return nil, planRepoErr
	}
	return &PlanService{uow: u, planRepo: planRepo}, nil
}

// List возвращает планы каталога. Не-админ видит только активные.
func (s *PlanService) List(ctx context.Context, actor domain.Actor) ([]domain.Plan, error) {
	plans, err := s.planRepo.List(ctx, !actor.IsAdmin())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return plans, nil
}

func (s *PlanService) FindByID(ctx context.Context, id int64) (*domain.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return plan, nil
}

type PlanArgs struct {
	Name         string
	Price        decimal.Decimal
	DailyRate    decimal.Decimal
	DurationDays int
	Active       bool
}

// Create добавляет план в каталог. TotalProfit не принимается снаружи, а
// всегда пересчитывается из price/rate/duration.
func (s *PlanService) Create(ctx context.Context, actor domain.Actor, args PlanArgs) (*domain.Plan, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if validateErr := validatePlanArgs(args); validateErr != nil {
		return nil, validateErr
	}

	var plan *domain.Plan
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		planRepo, planRepoErr := uow.GetAs[PlanRepository](
			tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planRepoErr != nil {
			return planRepoErr //nolint:wrapcheck
		}
		var createErr error
		plan, createErr = planRepo.Create(c, repoargs.CreatePlan{
			Name:         strings.TrimSpace(args.Name),
			Price:        args.Price.Round(moneyScale),
			DailyRate:    args.DailyRate,
			DurationDays: args.DurationDays,
			TotalProfit:  computeTotalProfit(args.Price, args.DailyRate, args.DurationDays),
			Active:       args.Active,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating plan: %w", txErr)
	}
	return plan, nil
}

// Update правит условия плана. Изменение условий не трогает уже купленные
// холдинги: они живут на снапшоте условий момента покупки.
func (s *PlanService) Update(ctx context.Context, actor domain.Actor, id int64, args PlanArgs) (*domain.Plan, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if validateErr := validatePlanArgs(args); validateErr != nil {
		return nil, validateErr
	}

	var plan *domain.Plan
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		planRepo, planRepoErr := uow.GetAs[PlanRepository](
			tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planRepoErr != nil {
			return planRepoErr //nolint:wrapcheck
		}
		existing, findErr := planRepo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		existing.Name = strings.TrimSpace(args.Name)
		existing.Price = args.Price.Round(moneyScale)
		existing.DailyRate = args.DailyRate
		existing.DurationDays = args.DurationDays
		existing.TotalProfit = computeTotalProfit(args.Price, args.DailyRate, args.DurationDays)
		existing.Active = args.Active

		var saveErr error
		plan, saveErr = planRepo.Save(c, *existing)
		return saveErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating plan %d: %w", id, txErr)
	}
	return plan, nil
}

// ToggleActive скрывает план с витрины или возвращает его обратно.
func (s *PlanService) ToggleActive(ctx context.Context, actor domain.Actor, id int64) (*domain.Plan, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	var plan *domain.Plan
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		planRepo, planRepoErr := uow.GetAs[PlanRepository](
			tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planRepoErr != nil {
			return planRepoErr //nolint:wrapcheck
		}
		existing, findErr := planRepo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		existing.Active = !existing.Active

		var saveErr error
		plan, saveErr = planRepo.Save(c, *existing)
		return saveErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("toggling plan %d: %w", id, txErr)
	}
	return plan, nil
}

// Delete удаляет план из каталога. Холдинги, купленные по нему, продолжают
// начисляться как ни в чем не бывало.
func (s *PlanService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		planRepo, planRepoErr := uow.GetAs[PlanRepository](
			tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planRepoErr != nil {
			return planRepoErr //nolint:wrapcheck
		}
		return planRepo.Delete(c, id) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("deleting plan %d: %w", id, txErr)
	}
	return nil
}

// SeedDefaults наполняет пустой каталог стартовыми планами. Непустой каталог
// не трогается.
func (s *PlanService) SeedDefaults(ctx context.Context) error {
	count, countErr := s.planRepo.Count(ctx)
	if countErr != nil {
		return countErr //nolint:wrapcheck
	}
	if count > 0 {
		return nil
	}

	defaults := []PlanArgs{
		{Name: "Starter Yield", Price: decimal.NewFromInt(100), DailyRate: decimal.NewFromFloat(1.5), DurationDays: 30, Active: true},
		{Name: "Pro Multiplier", Price: decimal.NewFromInt(500), DailyRate: decimal.NewFromFloat(2.2), DurationDays: 45, Active: true},
		{Name: "Elite Wealth", Price: decimal.NewFromInt(2500), DailyRate: decimal.NewFromFloat(3.5), DurationDays: 60, Active: true},
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		planRepo, planRepoErr := uow.GetAs[PlanRepository](
			tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planRepoErr != nil {
			return planRepoErr //nolint:wrapcheck
		}
		for _, args := range defaults {
			if _, createErr := planRepo.Create(c, repoargs.CreatePlan{
				Name:         args.Name,
				Price:        args.Price.Round(moneyScale),
				DailyRate:    args.DailyRate,
				DurationDays: args.DurationDays,
				TotalProfit:  computeTotalProfit(args.Price, args.DailyRate, args.DurationDays),
				Active:       args.Active,
			}); createErr != nil {
				return createErr //nolint:wrapcheck
			}
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("seeding plans: %w", txErr)
	}
	return nil
}

func validatePlanArgs(args PlanArgs) error {
	if strings.TrimSpace(args.Name) == "" {
		return domain.ErrMissingFields
	}
	if !args.Price.IsPositive() || !args.DailyRate.IsPositive() || args.DurationDays < 1 {
		return domain.ErrInvalidAmount
	}
	return nil
}

// computeTotalProfit = price + price * rate/100 * days, т.е. возврат тела
// инвестиции плюс все суточные начисления.
func computeTotalProfit(price, dailyRate decimal.Decimal, durationDays int) decimal.Decimal {
	earnings := price.Mul(dailyRate).Div(hundred).Mul(decimal.NewFromInt(int64(durationDays)))
	return price.Add(earnings).Round(moneyScale)
}
