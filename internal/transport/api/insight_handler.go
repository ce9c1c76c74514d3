package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/usdt-yield/internal/transport/advisor"
	"github.com/gin-gonic/gin"
)

// InsightHandler отдает LLM рекомендацию по портфелю юзера. Таймаут тут шире
// обычного: внешний API медленнее нашего сервисного слоя.
type InsightHandler struct {
	ledger      LedgerServicer
	planService PlanServicer
	userService UserServicer
	adviser     Adviser
}

func NewInsightHandler(
	ledger LedgerServicer,
	planService PlanServicer,
	userService UserServicer,
	adviser Adviser,
) *InsightHandler {
	return &InsightHandler{
		ledger:      ledger,
		planService: planService,
		userService: userService,
		adviser:     adviser,
	}
}

type InsightResponse struct {
	Advice string `json:"advice"`
}

// Index GET RouteGroup + InsightRoute.
func (h *InsightHandler) Index(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, AdvisorServiceTimeout)
	defer cancel()

	account, accErr := h.userService.FindByID(reqCtx, actor.UserID)
	if accErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, accErr).SetType(gin.ErrorTypePrivate)
		return
	}
	plans, plansErr := h.planService.List(reqCtx, actor)
	if plansErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, plansErr).SetType(gin.ErrorTypePrivate)
		return
	}

	advice := h.adviser.Advise(reqCtx, advisor.Profile{
		Available: account.Available,
		Locked:    account.Locked,
		Role:      account.Role,
	}, plans)

	c.JSON(http.StatusOK, InsightResponse{Advice: advice})
}
