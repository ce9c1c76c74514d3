package repoargs

import (
	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	AccountID   int64
	Type        domain.TransactionType
	Status      domain.TransactionStatusType
	Amount      decimal.Decimal
	Network     domain.NetworkType
	ExternalRef string
	Address     string
	Fee         decimal.Decimal
	Notes       string
}

type UpdateTransaction struct {
	ID     int64
	Status domain.TransactionStatusType
	Amount decimal.Decimal
	Notes  string
}

// TransactionFilter - нулевые поля означают "любое значение".
type TransactionFilter struct {
	AccountID int64
	Type      domain.TransactionType
	Status    domain.TransactionStatusType
}
