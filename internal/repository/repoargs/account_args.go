package repoargs

import (
	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateAccount struct {
	Username     string
	Password     string
	Role         domain.RoleType
	ReferralCode string
	UplinerID    *int64
}

// AdjustBalances описывает атомарное изменение пары балансов счета. Пара
// available/locked всегда меняется одним вызовом, половинчатое состояние
// снаружи не видно.
type AdjustBalances struct {
	AccountID      int64
	AvailableDelta decimal.Decimal
	LockedDelta    decimal.Decimal
}
