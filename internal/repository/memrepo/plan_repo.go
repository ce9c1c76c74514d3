package memrepo

import (
	"context"
	"sort"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
)

type PlanRepository struct {
	dbtx uow.DBTX
}

func NewPlanRepository(dbtx uow.DBTX) *PlanRepository {
	return &PlanRepository{dbtx: dbtx}
}

func (r *PlanRepository) Create(ctx context.Context, args repoargs.CreatePlan) (*domain.Plan, error) {
	var plan *domain.Plan
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		now := time.Now()
		created := domain.Plan{
			ID:           st.nextID(planSeq),
			CreatedAt:    now,
			UpdatedAt:    now,
			Name:         args.Name,
			Price:        args.Price,
			DailyRate:    args.DailyRate,
			DurationDays: args.DurationDays,
			TotalProfit:  args.TotalProfit,
			Active:       args.Active,
		}
		st.Plans[created.ID] = created
		plan = &created
	})
	return plan, nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id int64) (*domain.Plan, error) {
	var plan *domain.Plan
	var err error
	r.dbtx.View(func(state any) {
		st := mustState(state)
		found, ok := st.Plans[id]
		if !ok {
			err = repoErr(domain.ErrRecordNotFound, "finding plan %d", id)
			return
		}
		plan = &found
	})
	return plan, err
}

func (r *PlanRepository) Save(ctx context.Context, plan domain.Plan) (*domain.Plan, error) {
	var saved *domain.Plan
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		if _, ok := st.Plans[plan.ID]; !ok {
			err = repoErr(domain.ErrRecordNotFound, "saving plan %d", plan.ID)
			return
		}
		plan.UpdatedAt = time.Now()
		st.Plans[plan.ID] = plan
		saved = &plan
	})
	return saved, err
}

func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		if _, ok := st.Plans[id]; !ok {
			err = repoErr(domain.ErrRecordNotFound, "deleting plan %d", id)
			return
		}
		delete(st.Plans, id)
	})
	return err
}

func (r *PlanRepository) List(ctx context.Context, activeOnly bool) ([]domain.Plan, error) {
	var plans []domain.Plan
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, plan := range st.Plans {
			if activeOnly && !plan.Active {
				continue
			}
			plans = append(plans, plan)
		}
	})
	sort.Slice(plans, func(i, j int) bool { return plans[i].ID < plans[j].ID })
	return plans, nil
}

func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	r.dbtx.View(func(state any) {
		count = int64(len(mustState(state).Plans))
	})
	return count, nil
}
