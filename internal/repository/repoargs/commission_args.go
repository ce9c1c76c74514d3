package repoargs

import (
	"github.com/shopspring/decimal"
)

type CreateCommission struct {
	SourceID      int64
	BeneficiaryID int64
	TransactionID int64
	Level         int
	PlanName      string
	BaseAmount    decimal.Decimal
	Percentage    decimal.Decimal
	Amount        decimal.Decimal
}
