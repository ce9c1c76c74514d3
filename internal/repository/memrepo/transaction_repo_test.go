package memrepo

import (
	"context"
	"testing"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	repo *TransactionRepository
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.repo = NewTransactionRepository(&testDBTX{store: NewStore()})
}

func (s *TransactionRepositoryTestSuite) create(
	accountID int64,
	txType domain.TransactionType,
	status domain.TransactionStatusType,
	amount int64,
) *domain.Transaction {
	transaction, err := s.repo.Create(context.Background(), repoargs.CreateTransaction{
		AccountID: accountID,
		Type:      txType,
		Status:    status,
		Amount:    decimal.NewFromInt(amount),
	})
	s.Require().NoError(err)
	return transaction
}

func (s *TransactionRepositoryTestSuite) TestListFiltersAndOrder() {
	s.create(1, domain.TransactionDeposit, domain.TransactionStatusCompleted, 100)
	s.create(1, domain.TransactionWithdrawal, domain.TransactionStatusPending, 50)
	s.create(2, domain.TransactionDeposit, domain.TransactionStatusPending, 70)

	all, allErr := s.repo.List(context.Background(), repoargs.TransactionFilter{})
	s.Require().NoError(allErr)
	s.Require().Len(all, 3)
	// при равном CreatedAt свежие записи идут первыми за счет убывания ID
	s.GreaterOrEqual(all[0].ID, all[1].ID)

	mine, mineErr := s.repo.List(context.Background(), repoargs.TransactionFilter{AccountID: 1})
	s.Require().NoError(mineErr)
	s.Len(mine, 2)

	pending, pendingErr := s.repo.List(context.Background(), repoargs.TransactionFilter{
		Status: domain.TransactionStatusPending,
	})
	s.Require().NoError(pendingErr)
	s.Len(pending, 2)

	deposits, depositsErr := s.repo.List(context.Background(), repoargs.TransactionFilter{
		AccountID: 1,
		Type:      domain.TransactionDeposit,
	})
	s.Require().NoError(depositsErr)
	s.Len(deposits, 1)
}

func (s *TransactionRepositoryTestSuite) TestSumAndCount() {
	s.create(1, domain.TransactionDeposit, domain.TransactionStatusCompleted, 100)
	s.create(1, domain.TransactionDeposit, domain.TransactionStatusCompleted, 30)
	s.create(1, domain.TransactionDeposit, domain.TransactionStatusPending, 999)

	sum, sumErr := s.repo.Sum(context.Background(), repoargs.TransactionFilter{
		Type:   domain.TransactionDeposit,
		Status: domain.TransactionStatusCompleted,
	})
	s.Require().NoError(sumErr)
	s.True(sum.Equal(decimal.NewFromInt(130)))

	count, countErr := s.repo.Count(context.Background(), repoargs.TransactionFilter{
		Status: domain.TransactionStatusPending,
	})
	s.Require().NoError(countErr)
	s.Equal(int64(1), count)
}

func (s *TransactionRepositoryTestSuite) TestUpdateStatus() {
	created := s.create(1, domain.TransactionDeposit, domain.TransactionStatusPending, 100)

	updated, updErr := s.repo.UpdateStatus(context.Background(), created.ID, domain.TransactionStatusCompleted)
	s.Require().NoError(updErr)
	s.Equal(domain.TransactionStatusCompleted, updated.Status)

	_, missErr := s.repo.UpdateStatus(context.Background(), 999, domain.TransactionStatusCompleted)
	s.Require().ErrorIs(missErr, domain.ErrRecordNotFound)
}

func (s *TransactionRepositoryTestSuite) TestUpdateSkipsZeroFields() {
	created := s.create(1, domain.TransactionDeposit, domain.TransactionStatusPending, 100)

	updated, updErr := s.repo.Update(context.Background(), repoargs.UpdateTransaction{
		ID:    created.ID,
		Notes: "edited",
	})
	s.Require().NoError(updErr)
	s.Equal("edited", updated.Notes)
	// нулевые поля аргумента не перетирают существующие значения
	s.Equal(domain.TransactionStatusPending, updated.Status)
	s.True(updated.Amount.Equal(decimal.NewFromInt(100)))
}
