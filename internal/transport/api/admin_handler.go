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

// AdminHandler обслуживает админские роуты. Роль проверяется дважды: в
// middleware (до хендлера) и в сервисном слое (по Actor).
type AdminHandler struct {
	ledger          LedgerServicer
	planService     PlanServicer
	referralService ReferralServicer
}

func NewAdminHandler(ledger LedgerServicer, planService PlanServicer, referralService ReferralServicer) *AdminHandler {
	return &AdminHandler{
		ledger:          ledger,
		planService:     planService,
		referralService: referralService,
	}
}

type StatsResponse struct {
	TotalAccounts      int64   `json:"totalAccounts"`
	TotalDeposits      float64 `json:"totalDeposits"`
	PendingWithdrawals int64   `json:"pendingWithdrawals"`
	SystemBalance      float64 `json:"systemBalance"`
}

func (h *AdminHandler) Stats(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.ledger.AdminStats(reqCtx, actor)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &StatsResponse{
		TotalAccounts:      stats.TotalAccounts,
		TotalDeposits:      stats.TotalDeposits.InexactFloat64(),
		PendingWithdrawals: stats.PendingWithdrawals,
		SystemBalance:      stats.SystemBalance.InexactFloat64(),
	})
}

// Transactions GET список транзакций по всем счетам с фильтрами из query.
func (h *AdminHandler) Transactions(c *gin.Context) {
	actor := getActorFromContext(c)

	var accountID int64
	if raw := c.Query("accountId"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid accountId"})
			return
		}
		accountID = id
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.ledger.ListTransactions(reqCtx, actor, repoargs.TransactionFilter{
		AccountID: accountID,
		Type:      domain.TransactionType(c.Query("type")),
		Status:    domain.TransactionStatusType(c.Query("status")),
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

// Approve POST подтверждение PENDING транзакции.
func (h *AdminHandler) Approve(c *gin.Context) {
	h.settle(c, h.ledger.ApproveTransaction)
}

// Reject POST отклонение PENDING транзакции.
func (h *AdminHandler) Reject(c *gin.Context) {
	h.settle(c, h.ledger.RejectTransaction)
}

func (h *AdminHandler) settle(
	c *gin.Context,
	fn func(ctx context.Context, actor domain.Actor, transactionID int64) (*domain.Transaction, error),
) {
	actor := getActorFromContext(c)

	transactionID, ok := parseIDParam(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := fn(reqCtx, actor, transactionID)
	if err != nil {
		var notPending *domain.NotPendingError
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.As(err, &notPending):
			_ = c.AbortWithError(http.StatusConflict, notPending).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newTransactionResponseItem(transaction))
}

type ManualEntryParams struct {
	TransactionID      int64           `json:"transactionId"`
	AccountID          int64           `binding:"required" json:"accountId"`
	Type               string          `binding:"required" json:"type"`
	Status             string          `binding:"required" json:"status"`
	Amount             decimal.Decimal `binding:"required" json:"amount"`
	Network            string          `json:"network"`
	Notes              string          `binding:"max=512"  json:"notes"`
	ApplyBalanceChange bool            `json:"applyBalanceChange"`
}

// ManualEntry POST ручная вставка или правка транзакции.
func (h *AdminHandler) ManualEntry(c *gin.Context) {
	actor := getActorFromContext(c)

	var params ManualEntryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.ledger.ManualEntry(reqCtx, actor, service.ManualEntryArgs{
		TransactionID:      params.TransactionID,
		AccountID:          params.AccountID,
		Type:               domain.TransactionType(params.Type),
		Status:             domain.TransactionStatusType(params.Status),
		Amount:             params.Amount,
		Network:            domain.NetworkType(params.Network),
		Notes:              params.Notes,
		ApplyBalanceChange: params.ApplyBalanceChange,
	})
	if err != nil {
		var notPending *domain.NotPendingError
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.As(err, &notPending):
			_ = c.AbortWithError(http.StatusConflict, notPending).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newTransactionResponseItem(transaction))
}

type PlanParams struct {
	Name         string          `binding:"required,min=1,max=64" json:"name"`
	Price        decimal.Decimal `binding:"required"              json:"price"`
	DailyRate    decimal.Decimal `binding:"required"              json:"dailyInterestRate"`
	DurationDays int             `binding:"required,min=1"        json:"durationDays"`
	Active       bool            `json:"active"`
}

func (p PlanParams) toArgs() service.PlanArgs {
	return service.PlanArgs{
		Name:         p.Name,
		Price:        p.Price,
		DailyRate:    p.DailyRate,
		DurationDays: p.DurationDays,
		Active:       p.Active,
	}
}

// Plans GET полный каталог планов, включая скрытые с витрины.
func (h *AdminHandler) Plans(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	plans, err := h.planService.List(reqCtx, actor)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PlanResponseItem, len(plans))
	for i := range plans {
		response[i] = newPlanResponseItem(&plans[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreatePlan POST добавление плана в каталог.
func (h *AdminHandler) CreatePlan(c *gin.Context) {
	actor := getActorFromContext(c)

	var params PlanParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	plan, err := h.planService.Create(reqCtx, actor, params.toArgs())
	if err != nil {
		h.abortPlanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPlanResponseItem(plan))
}

// UpdatePlan PATCH правка условий плана.
func (h *AdminHandler) UpdatePlan(c *gin.Context) {
	actor := getActorFromContext(c)

	planID, ok := parseIDParam(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	var params PlanParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	plan, err := h.planService.Update(reqCtx, actor, planID, params.toArgs())
	if err != nil {
		h.abortPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlanResponseItem(plan))
}

// TogglePlan POST скрыть план с витрины или вернуть обратно.
func (h *AdminHandler) TogglePlan(c *gin.Context) {
	actor := getActorFromContext(c)

	planID, ok := parseIDParam(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	plan, err := h.planService.ToggleActive(reqCtx, actor, planID)
	if err != nil {
		h.abortPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlanResponseItem(plan))
}

// DeletePlan DELETE удаление плана из каталога.
func (h *AdminHandler) DeletePlan(c *gin.Context) {
	actor := getActorFromContext(c)

	planID, ok := parseIDParam(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.planService.Delete(reqCtx, actor, planID); err != nil {
		h.abortPlanError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func (h *AdminHandler) abortPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrMissingFields), errors.Is(err, domain.ErrInvalidAmount):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

type ReferralConfigResponse struct {
	MaxLevels        int       `json:"maxLevels"`
	LevelPercentages []float64 `json:"levelPercentages"`
	Active           bool      `json:"active"`
	UpdatedAt        string    `json:"updatedAt"`
}

func newReferralConfigResponse(config *domain.ReferralConfig) ReferralConfigResponse {
	percentages := make([]float64, len(config.LevelPercentages))
	for i, percentage := range config.LevelPercentages {
		percentages[i] = percentage.InexactFloat64()
	}
	return ReferralConfigResponse{
		MaxLevels:        config.MaxLevels,
		LevelPercentages: percentages,
		Active:           config.Active,
		UpdatedAt:        config.UpdatedAt.Format(time.RFC3339),
	}
}

// ReferralConfig GET текущая конфигурация реферальной программы.
func (h *AdminHandler) ReferralConfig(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	config, err := h.referralService.GetConfig(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newReferralConfigResponse(config))
}

type ReferralConfigParams struct {
	MaxLevels        int               `binding:"required,min=1" json:"maxLevels"`
	LevelPercentages []decimal.Decimal `binding:"required"       json:"levelPercentages"`
	Active           bool              `json:"active"`
}

// UpdateReferralConfig PUT замена конфигурации реферальной программы целиком.
func (h *AdminHandler) UpdateReferralConfig(c *gin.Context) {
	actor := getActorFromContext(c)

	var params ReferralConfigParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	config, err := h.referralService.UpdateConfig(reqCtx, actor, service.UpdateReferralConfigArgs{
		MaxLevels:        params.MaxLevels,
		LevelPercentages: params.LevelPercentages,
		Active:           params.Active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newReferralConfigResponse(config))
}
