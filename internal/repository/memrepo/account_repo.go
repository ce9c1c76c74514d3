package memrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	dbtx uow.DBTX
}

func NewAccountRepository(dbtx uow.DBTX) *AccountRepository {
	return &AccountRepository{dbtx: dbtx}
}

// Create создает счет с нулевыми балансами. Возвращает domain.ErrDuplicateKey
// при занятом username или реферальном коде.
func (r *AccountRepository) Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	var account *domain.Account
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		for _, existing := range st.Accounts {
			if existing.Username == args.Username || existing.ReferralCode == args.ReferralCode {
				err = repoErr(domain.ErrDuplicateKey, "creating account %s", args.Username)
				return
			}
		}
		now := time.Now()
		created := domain.Account{
			ID:           st.nextID(accountSeq),
			CreatedAt:    now,
			UpdatedAt:    now,
			Username:     args.Username,
			Password:     args.Password,
			Role:         args.Role,
			Available:    decimal.Zero,
			Locked:       decimal.Zero,
			ReferralCode: args.ReferralCode,
			UplinerID:    args.UplinerID,
		}
		st.Accounts[created.ID] = created
		account = &created
	})
	return account, err
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	var account *domain.Account
	var err error
	r.dbtx.View(func(state any) {
		st := mustState(state)
		found, ok := st.Accounts[id]
		if !ok {
			err = repoErr(domain.ErrRecordNotFound, "finding account %d", id)
			return
		}
		account = &found
	})
	return account, err
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account *domain.Account
	var err error
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, existing := range st.Accounts {
			if existing.Username == username {
				found := existing
				account = &found
				return
			}
		}
		err = repoErr(domain.ErrRecordNotFound, "finding account by username %s", username)
	})
	return account, err
}

func (r *AccountRepository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	var account *domain.Account
	var err error
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, existing := range st.Accounts {
			if existing.ReferralCode == code {
				found := existing
				account = &found
				return
			}
		}
		err = repoErr(domain.ErrRecordNotFound, "finding account by referral code %s", code)
	})
	return account, err
}

// AdjustBalances атомарно применяет дельты к паре available/locked. Если любой
// из балансов уходит в минус - возвращает domain.ErrNotEnoughBalance, ничего
// не меняя: балансы счета не бывают отрицательными.
func (r *AccountRepository) AdjustBalances(
	ctx context.Context,
	args repoargs.AdjustBalances,
) (*domain.Account, error) {
	var account *domain.Account
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		existing, ok := st.Accounts[args.AccountID]
		if !ok {
			err = repoErr(domain.ErrRecordNotFound, "adjusting balances of account %d", args.AccountID)
			return
		}
		available := existing.Available.Add(args.AvailableDelta)
		locked := existing.Locked.Add(args.LockedDelta)
		if available.IsNegative() || locked.IsNegative() {
			err = repoErr(domain.ErrNotEnoughBalance, "adjusting balances of account %d", args.AccountID)
			return
		}
		existing.Available = available
		existing.Locked = locked
		existing.UpdatedAt = time.Now()
		st.Accounts[args.AccountID] = existing
		account = &existing
	})
	return account, err
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	r.dbtx.View(func(state any) {
		count = int64(len(mustState(state).Accounts))
	})
	return count, nil
}

// SumBalances возвращает суммарный баланс системы (available + locked по всем
// счетам).
func (r *AccountRepository) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, account := range st.Accounts {
			sum = sum.Add(account.Available).Add(account.Locked)
		}
	})
	return sum, nil
}
