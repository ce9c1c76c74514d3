package memrepo

import (
	"context"
	"sort"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
)

type CommissionRepository struct {
	dbtx uow.DBTX
}

func NewCommissionRepository(dbtx uow.DBTX) *CommissionRepository {
	return &CommissionRepository{dbtx: dbtx}
}

func (r *CommissionRepository) Create(
	ctx context.Context,
	args repoargs.CreateCommission,
) (*domain.ReferralCommission, error) {
	var commission *domain.ReferralCommission
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		now := time.Now()
		created := domain.ReferralCommission{
			ID:            st.nextID(commissionSeq),
			CreatedAt:     now,
			UpdatedAt:     now,
			SourceID:      args.SourceID,
			BeneficiaryID: args.BeneficiaryID,
			TransactionID: args.TransactionID,
			Level:         args.Level,
			PlanName:      args.PlanName,
			BaseAmount:    args.BaseAmount,
			Percentage:    args.Percentage,
			Amount:        args.Amount,
			Status:        domain.TransactionStatusPending,
		}
		st.Commissions[created.ID] = created
		commission = &created
	})
	return commission, nil
}

func (r *CommissionRepository) GetByBeneficiaryID(
	ctx context.Context,
	beneficiaryID int64,
) ([]domain.ReferralCommission, error) {
	var commissions []domain.ReferralCommission
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, commission := range st.Commissions {
			if commission.BeneficiaryID == beneficiaryID {
				commissions = append(commissions, commission)
			}
		}
	})
	sort.Slice(commissions, func(i, j int) bool { return commissions[i].ID > commissions[j].ID })
	return commissions, nil
}

func (r *CommissionRepository) FindByTransactionID(
	ctx context.Context,
	transactionID int64,
) (*domain.ReferralCommission, error) {
	var commission *domain.ReferralCommission
	var err error
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, existing := range st.Commissions {
			if existing.TransactionID == transactionID {
				found := existing
				commission = &found
				return
			}
		}
		err = repoErr(domain.ErrRecordNotFound, "finding commission by transaction %d", transactionID)
	})
	return commission, err
}

func (r *CommissionRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.TransactionStatusType,
) (*domain.ReferralCommission, error) {
	var commission *domain.ReferralCommission
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		existing, ok := st.Commissions[id]
		if !ok {
			err = repoErr(domain.ErrRecordNotFound, "updating status of commission %d", id)
			return
		}
		existing.Status = status
		existing.UpdatedAt = time.Now()
		st.Commissions[id] = existing
		commission = &existing
	})
	return commission, err
}
