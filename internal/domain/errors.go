package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrBelowMinimum     = errors.New("amount below withdrawal minimum")
	ErrAboveMaximum     = errors.New("amount above withdrawal maximum")
	ErrInvalidAddress   = errors.New("invalid destination address")
	ErrInvalidNetwork   = errors.New("unsupported network")
	ErrPlanInactive     = errors.New("plan is not active")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidConfig    = errors.New("invalid referral configuration")
	ErrPermissionDenied = errors.New("permission denied")
)

// NotPendingError возвращается при попытке settle'а транзакции в конечном
// статусе. Повторный approve обязан падать, а не начислять баланс второй раз.
type NotPendingError struct {
	TransactionID int64
	Status        TransactionStatusType
}

func NewNotPendingError(txID int64, status TransactionStatusType) error {
	return &NotPendingError{TransactionID: txID, Status: status}
}

func (e *NotPendingError) Error() string {
	return fmt.Sprintf("transaction %d is not pending (status %s)", e.TransactionID, e.Status)
}
