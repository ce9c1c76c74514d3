package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionsHandler struct {
	svs LedgerServicer
}

func NewTransactionsHandler(svs LedgerServicer) *TransactionsHandler {
	return &TransactionsHandler{
		svs: svs,
	}
}

type TransactionResponseItem struct {
	ID          int64   `json:"id"`
	AccountID   int64   `json:"accountId"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	Network     string  `json:"network,omitempty"`
	ExternalRef string  `json:"txid,omitempty"`
	Address     string  `json:"address,omitempty"`
	Fee         float64 `json:"fee,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

func newTransactionResponseItem(transaction *domain.Transaction) TransactionResponseItem {
	return TransactionResponseItem{
		ID:          transaction.ID,
		AccountID:   transaction.AccountID,
		Type:        string(transaction.Type),
		Status:      string(transaction.Status),
		Amount:      transaction.Amount.InexactFloat64(),
		Network:     string(transaction.Network),
		ExternalRef: transaction.ExternalRef,
		Address:     transaction.Address,
		Fee:         transaction.Fee.InexactFloat64(),
		Notes:       transaction.Notes,
		CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
	}
}

type DepositParams struct {
	Amount  decimal.Decimal `binding:"required"       json:"amount"`
	Network string          `binding:"required"       json:"network"`
	TxID    string          `binding:"omitempty,max=128" json:"txid"`
}

// Deposit POST RouteGroup + DepositsRoute. Создает заявку на пополнение.
func (h *TransactionsHandler) Deposit(c *gin.Context) {
	actor := getActorFromContext(c)

	var params DepositParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.svs.RequestDeposit(reqCtx, actor, service.RequestDepositArgs{
		Amount:      params.Amount,
		Network:     domain.NetworkType(params.Network),
		ExternalRef: params.TxID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidNetwork):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponseItem(transaction))
}

type WithdrawParams struct {
	Amount  decimal.Decimal `binding:"required"           json:"amount"`
	Address string          `binding:"required,max=128"   json:"address"`
}

// Withdraw POST RouteGroup + WithdrawalsRoute. Создает заявку на вывод и
// резервирует средства.
func (h *TransactionsHandler) Withdraw(c *gin.Context) {
	actor := getActorFromContext(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.svs.RequestWithdrawal(reqCtx, actor, service.RequestWithdrawalArgs{
		Amount:  params.Amount,
		Address: params.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrInvalidAddress),
			errors.Is(err, domain.ErrBelowMinimum),
			errors.Is(err, domain.ErrAboveMaximum):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponseItem(transaction))
}

// Index GET RouteGroup + TransactionsRoute. Список транзакций текущего юзера,
// опционально фильтруется по type/status из query.
func (h *TransactionsHandler) Index(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.ListTransactions(reqCtx, actor, repoargs.TransactionFilter{
		Type:   domain.TransactionType(c.Query("type")),
		Status: domain.TransactionStatusType(c.Query("status")),
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]TransactionResponseItem, len(transactions))
	for i := range transactions {
		response[i] = newTransactionResponseItem(&transactions[i])
	}
	c.JSON(http.StatusOK, response)
}
