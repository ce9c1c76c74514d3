package memrepo

import (
	"context"
	"sort"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	dbtx uow.DBTX
}

func NewTransactionRepository(dbtx uow.DBTX) *TransactionRepository {
	return &TransactionRepository{dbtx: dbtx}
}

func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		now := time.Now()
		created := domain.Transaction{
			ID:          st.nextID(transactionSeq),
			CreatedAt:   now,
			UpdatedAt:   now,
			AccountID:   args.AccountID,
			Type:        args.Type,
			Status:      args.Status,
			Amount:      args.Amount,
			Network:     args.Network,
			ExternalRef: args.ExternalRef,
			Address:     args.Address,
			Fee:         args.Fee,
			Notes:       args.Notes,
		}
		st.Transactions[created.ID] = created
		transaction = &created
	})
	return transaction, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	var err error
	r.dbtx.View(func(state any) {
		st := mustState(state)
		found, ok := st.Transactions[id]
		if !ok {
			err = repoErr(domain.ErrRecordNotFound, "finding transaction %d", id)
			return
		}
		transaction = &found
	})
	return transaction, err
}

func (r *TransactionRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.TransactionStatusType,
) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		existing, ok := st.Transactions[id]
		if !ok {
			err = repoErr(domain.ErrRecordNotFound, "updating status of transaction %d", id)
			return
		}
		existing.Status = status
		existing.UpdatedAt = time.Now()
		st.Transactions[id] = existing
		transaction = &existing
	})
	return transaction, err
}

// Update применяет правки ручного ввода. Пустые/нулевые поля аргумента не
// трогают существующие значения.
func (r *TransactionRepository) Update(
	ctx context.Context,
	args repoargs.UpdateTransaction,
) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	var err error
	r.dbtx.Update(func(state any) {
		st := mustState(state)
		existing, ok := st.Transactions[args.ID]
		if !ok {
			err = repoErr(domain.ErrRecordNotFound, "updating transaction %d", args.ID)
			return
		}
		if args.Status != "" {
			existing.Status = args.Status
		}
		if !args.Amount.IsZero() {
			existing.Amount = args.Amount
		}
		if args.Notes != "" {
			existing.Notes = args.Notes
		}
		existing.UpdatedAt = time.Now()
		st.Transactions[args.ID] = existing
		transaction = &existing
	})
	return transaction, err
}

// List возвращает транзакции по фильтру, отсортированные по дате создания по
// убыванию.
func (r *TransactionRepository) List(
	ctx context.Context,
	filter repoargs.TransactionFilter,
) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, transaction := range st.Transactions {
			if matchesFilter(transaction, filter) {
				transactions = append(transactions, transaction)
			}
		}
	})
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].CreatedAt.Equal(transactions[j].CreatedAt) {
			return transactions[i].ID > transactions[j].ID
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions, nil
}

func (r *TransactionRepository) Sum(
	ctx context.Context,
	filter repoargs.TransactionFilter,
) (decimal.Decimal, error) {
	sum := decimal.Zero
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, transaction := range st.Transactions {
			if matchesFilter(transaction, filter) {
				sum = sum.Add(transaction.Amount)
			}
		}
	})
	return sum, nil
}

func (r *TransactionRepository) Count(
	ctx context.Context,
	filter repoargs.TransactionFilter,
) (int64, error) {
	var count int64
	r.dbtx.View(func(state any) {
		st := mustState(state)
		for _, transaction := range st.Transactions {
			if matchesFilter(transaction, filter) {
				count++
			}
		}
	})
	return count, nil
}

func matchesFilter(transaction domain.Transaction, filter repoargs.TransactionFilter) bool {
	if filter.AccountID != 0 && transaction.AccountID != filter.AccountID {
		return false
	}
	if filter.Type != "" && transaction.Type != filter.Type {
		return false
	}
	if filter.Status != "" && transaction.Status != filter.Status {
		return false
	}
	return true
}
