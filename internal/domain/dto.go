package domain

type TransactionType string

const (
	TransactionDeposit            TransactionType = "DEPOSIT"
	TransactionWithdrawal         TransactionType = "WITHDRAWAL"
	TransactionInterest           TransactionType = "INTEREST"
	TransactionReferralCommission TransactionType = "REFERRAL_COMMISSION"
	TransactionPlanPurchase       TransactionType = "PLAN_PURCHASE"
)

type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "PENDING"
	TransactionStatusApproved  TransactionStatusType = "APPROVED"
	TransactionStatusRejected  TransactionStatusType = "REJECTED"
	TransactionStatusCompleted TransactionStatusType = "COMPLETED"
)

// Terminal сообщает, что статус конечный и запись больше не мутирует.
func (s TransactionStatusType) Terminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusRejected
}

type NetworkType string

const (
	NetworkTRC20 NetworkType = "TRC20"
	NetworkBEP20 NetworkType = "BEP20"
)

func (n NetworkType) Valid() bool {
	return n == NetworkTRC20 || n == NetworkBEP20
}

type HoldingStatusType string

const (
	HoldingStatusActive  HoldingStatusType = "ACTIVE"
	HoldingStatusMatured HoldingStatusType = "MATURED"
)

type RoleType string

const (
	RoleUser  RoleType = "USER"
	RoleAdmin RoleType = "ADMIN"
)

// Actor представляет субъект операции. Сервисный слой проверяет права по нему,
// а не по состоянию UI (никаких ambient-глобалов).
type Actor struct {
	UserID int64
	Role   RoleType
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
