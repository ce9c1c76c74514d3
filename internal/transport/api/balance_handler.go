package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	svs LedgerServicer
}

func NewBalanceHandler(svs LedgerServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Available      float64 `json:"available"`
	Locked         float64 `json:"locked"`
	TotalEarned    float64 `json:"totalEarned"`
	TotalWithdrawn float64 `json:"totalWithdrawn"`
}

func (b *BalanceHandler) Index(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.GetBalance(reqCtx, actor)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Available:      balance.Available.InexactFloat64(),
		Locked:         balance.Locked.InexactFloat64(),
		TotalEarned:    balance.TotalEarned.InexactFloat64(),
		TotalWithdrawn: balance.TotalWithdrawn.InexactFloat64(),
	})
}

type HoldingResponseItem struct {
	ID           int64   `json:"id"`
	PlanName     string  `json:"planName"`
	Invested     float64 `json:"invested"`
	DailyEarning float64 `json:"dailyEarning"`
	StartAt      string  `json:"startAt"`
	EndAt        string  `json:"endAt"`
	Status       string  `json:"status"`
}

func (b *BalanceHandler) Holdings(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	holdings, err := b.svs.ListHoldings(reqCtx, actor)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]HoldingResponseItem, len(holdings))
	for i, holding := range holdings {
		response[i] = HoldingResponseItem{
			ID:           holding.ID,
			PlanName:     holding.PlanName,
			Invested:     holding.Invested.InexactFloat64(),
			DailyEarning: holding.DailyEarning.InexactFloat64(),
			StartAt:      holding.StartAt.Format(time.RFC3339),
			EndAt:        holding.EndAt.Format(time.RFC3339),
			Status:       string(holding.Status),
		}
	}
	c.JSON(http.StatusOK, response)
}

type CommissionResponseItem struct {
	ID         int64   `json:"id"`
	Level      int     `json:"level"`
	PlanName   string  `json:"planName"`
	BaseAmount float64 `json:"baseAmount"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

func (b *BalanceHandler) Commissions(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	commissions, err := b.svs.ListCommissions(reqCtx, actor)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CommissionResponseItem, len(commissions))
	for i, commission := range commissions {
		response[i] = newCommissionResponseItem(commission)
	}
	c.JSON(http.StatusOK, response)
}

func newCommissionResponseItem(commission domain.ReferralCommission) CommissionResponseItem {
	return CommissionResponseItem{
		ID:         commission.ID,
		Level:      commission.Level,
		PlanName:   commission.PlanName,
		BaseAmount: commission.BaseAmount.InexactFloat64(),
		Percentage: commission.Percentage.InexactFloat64(),
		Amount:     commission.Amount.InexactFloat64(),
		Status:     string(commission.Status),
		CreatedAt:  commission.CreatedAt.Format(time.RFC3339),
	}
}
