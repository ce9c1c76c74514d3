package memrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
)

type ReferralConfigRepository struct {
	dbtx uow.DBTX
}

func NewReferralConfigRepository(dbtx uow.DBTX) *ReferralConfigRepository {
	return &ReferralConfigRepository{dbtx: dbtx}
}

func (r *ReferralConfigRepository) Get(ctx context.Context) (*domain.ReferralConfig, error) {
	var config domain.ReferralConfig
	r.dbtx.View(func(state any) {
		st := mustState(state)
		config = st.ReferralConfig
		config.LevelPercentages = append([]decimal.Decimal(nil), st.ReferralConfig.LevelPercentages...)
	})
	return &config, nil
}

func (r *ReferralConfigRepository) Save(
	ctx context.Context,
	config domain.ReferralConfig,
) (*domain.ReferralConfig, error) {
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		config.UpdatedAt = time.Now()
		config.LevelPercentages = append([]decimal.Decimal(nil), config.LevelPercentages...)
		st.ReferralConfig = config
	})
	return &config, nil
}
