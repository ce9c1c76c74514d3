package memrepo

import (
	"context"
	"sort"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
)

type HoldingRepository struct {
	dbtx uow.DBTX
}

func NewHoldingRepository(dbtx uow.DBTX) *HoldingRepository {
	return &HoldingRepository{dbtx: dbtx}
}

func (r *HoldingRepository) Create(ctx context.Context, args repoargs.CreateHolding) (*domain.Holding, error) {
	var holding *domain.Holding
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		now := time.Now()
		created := domain.Holding{
			ID:             st.nextID(holdingSeq),
			CreatedAt:      now,
			UpdatedAt:      now,
			AccountID:      args.AccountID,
			PlanID:         args.PlanID,
			PlanName:       args.PlanName,
			Invested:       args.Invested,
			DailyEarning:   args.DailyEarning,
			StartAt:        args.StartAt,
			EndAt:          args.EndAt,
			AccruedThrough: args.StartAt,
			Status:         domain.HoldingStatusActive,
		}
		st.Holdings[created.ID] = created
		holding = &created
	})
	return holding, nil
}

func (r *HoldingRepository) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Holding, error) {
	var holdings []domain.Holding
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, holding := range st.Holdings {
			if holding.AccountID == accountID {
				holdings = append(holdings, holding)
			}
		}
	})
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].ID < holdings[j].ID })
	return holdings, nil
}

// ListActive возвращает холдинги, подлежащие мониторингу начисления процентов.
func (r *HoldingRepository) ListActive(ctx context.Context) ([]domain.Holding, error) {
	var holdings []domain.Holding
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, holding := range st.Holdings {
			if holding.Status == domain.HoldingStatusActive {
				holdings = append(holdings, holding)
			}
		}
	})
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].ID < holdings[j].ID })
	return holdings, nil
}

func (r *HoldingRepository) Save(ctx context.Context, holding domain.Holding) (*domain.Holding, error) {
	var saved *domain.Holding
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		if _, ok := st.Holdings[holding.ID]; !ok {
			err = repoErr(domain.ErrRecordNotFound, "saving holding %d", holding.ID)
			return
		}
		holding.UpdatedAt = time.Now()
		st.Holdings[holding.ID] = holding
		saved = &holding
	})
	return saved, err
}
