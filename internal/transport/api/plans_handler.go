package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/gin-gonic/gin"
)

type PlansHandler struct {
	planService PlanServicer
	ledger      LedgerServicer
}

func NewPlansHandler(planService PlanServicer, ledger LedgerServicer) *PlansHandler {
	return &PlansHandler{
		planService: planService,
		ledger:      ledger,
	}
}

type PlanResponseItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DailyRate    float64 `json:"dailyInterestRate"`
	DurationDays int     `json:"durationDays"`
	TotalProfit  float64 `json:"totalProfit"`
	Active       bool    `json:"active"`
}

func newPlanResponseItem(plan *domain.Plan) PlanResponseItem {
	return PlanResponseItem{
		ID:           plan.ID,
		Name:         plan.Name,
		Price:        plan.Price.InexactFloat64(),
		DailyRate:    plan.DailyRate.InexactFloat64(),
		DurationDays: plan.DurationDays,
		TotalProfit:  plan.TotalProfit.InexactFloat64(),
		Active:       plan.Active,
	}
}

// Index GET RouteGroup + PlansRoute. Витрина активных планов.
func (h *PlansHandler) Index(c *gin.Context) {
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

// Purchase POST RouteGroup + PlanPurchaseRoute. Покупка плана с текущего
// available баланса.
func (h *PlansHandler) Purchase(c *gin.Context) {
	actor := getActorFromContext(c)

	planID, ok := parseIDParam(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	holding, err := h.ledger.PurchasePlan(reqCtx, actor, planID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrPlanInactive):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, HoldingResponseItem{
		ID:           holding.ID,
		PlanName:     holding.PlanName,
		Invested:     holding.Invested.InexactFloat64(),
		DailyEarning: holding.DailyEarning.InexactFloat64(),
		StartAt:      holding.StartAt.Format(time.RFC3339),
		EndAt:        holding.EndAt.Format(time.RFC3339),
		Status:       string(holding.Status),
	})
}
