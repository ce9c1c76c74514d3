package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePlan struct {
	Name         string
	Price        decimal.Decimal
	DailyRate    decimal.Decimal
	DurationDays int
	TotalProfit  decimal.Decimal
	Active       bool
}

type CreateHolding struct {
	AccountID    int64
	PlanID       int64
	PlanName     string
	Invested     decimal.Decimal
	DailyEarning decimal.Decimal
	StartAt      time.Time
	EndAt        time.Time
}
