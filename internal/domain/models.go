package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type Account struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	Password     string
	Role         RoleType
	Available    decimal.Decimal
	Locked       decimal.Decimal
	ReferralCode string
	UplinerID    *int64
}

type Plan struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Price        decimal.Decimal
	DailyRate    decimal.Decimal
	DurationDays int
	TotalProfit  decimal.Decimal
	Active       bool
}

// Holding хранит снапшот условий плана на момент покупки. Последующие правки
// каталога планов на него не влияют.
type Holding struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AccountID      int64
	PlanID         int64
	PlanName       string
	Invested       decimal.Decimal
	DailyEarning   decimal.Decimal
	StartAt        time.Time
	EndAt          time.Time
	AccruedThrough time.Time
	Status         HoldingStatusType
}

type Transaction struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AccountID   int64
	Type        TransactionType
	Status      TransactionStatusType
	Amount      decimal.Decimal
	Network     NetworkType
	ExternalRef string
	Address     string
	Fee         decimal.Decimal
	Notes       string
}

type ReferralCommission struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SourceID      int64
	BeneficiaryID int64
	TransactionID int64
	Level         int
	PlanName      string
	BaseAmount    decimal.Decimal
	Percentage    decimal.Decimal
	Amount        decimal.Decimal
	Status        TransactionStatusType
}

type ReferralConfig struct {
	UpdatedAt        time.Time
	MaxLevels        int
	LevelPercentages []decimal.Decimal
	Active           bool
}
