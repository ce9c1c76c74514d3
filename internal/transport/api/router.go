package api

import (
	"time"

	"github.com/fsdevblog/usdt-yield/internal/monitoring"
	"github.com/fsdevblog/usdt-yield/internal/transport/api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	AdvisorServiceTimeout = 15 * time.Second
)

const (
	RouteGroup    = "/api"
	RegisterRoute = "/user/register"
	LoginRoute    = "/user/login"

	BalanceRoute      = "/user/balance"
	TransactionsRoute = "/user/transactions"
	HoldingsRoute     = "/user/holdings"
	CommissionsRoute  = "/user/commissions"
	InsightRoute      = "/user/insight"
	DepositsRoute     = "/user/deposits"
	WithdrawalsRoute  = "/user/withdrawals"

	PlansRoute        = "/plans"
	PlanPurchaseRoute = "/plans/:id/purchase"

	AdminStatsRoute          = "/admin/stats"
	AdminTransactionsRoute   = "/admin/transactions"
	AdminApproveRoute        = "/admin/transactions/:id/approve"
	AdminRejectRoute         = "/admin/transactions/:id/reject"
	AdminPlansRoute          = "/admin/plans"
	AdminPlanRoute           = "/admin/plans/:id"
	AdminPlanToggleRoute     = "/admin/plans/:id/toggle"
	AdminReferralConfigRoute = "/admin/referral-config"

	MetricsRoute = "/metrics"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	LedgerService   LedgerServicer
	PlanService     PlanServicer
	ReferralService ReferralServicer
	Adviser         Adviser
	JWTSecretKey    []byte
	CORSOrigins     []string
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())
	r.Use(monitoring.Middleware())
	if len(args.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = args.CORSOrigins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
		r.Use(cors.New(corsConfig))
	}

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(args.UserService)
	balanceHandler := NewBalanceHandler(args.LedgerService)
	transactionsHandler := NewTransactionsHandler(args.LedgerService)
	plansHandler := NewPlansHandler(args.PlanService, args.LedgerService)
	adminHandler := NewAdminHandler(args.LedgerService, args.PlanService, args.ReferralService)
	insightHandler := NewInsightHandler(args.LedgerService, args.PlanService, args.UserService, args.Adviser)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(BalanceRoute, balanceHandler.Index)
	api.GET(HoldingsRoute, balanceHandler.Holdings)
	api.GET(CommissionsRoute, balanceHandler.Commissions)
	api.GET(InsightRoute, insightHandler.Index)

	api.GET(TransactionsRoute, transactionsHandler.Index)
	api.POST(DepositsRoute, transactionsHandler.Deposit)
	api.POST(WithdrawalsRoute, transactionsHandler.Withdraw)

	api.GET(PlansRoute, plansHandler.Index)
	api.POST(PlanPurchaseRoute, plansHandler.Purchase)

	admin := api.Group("", middlewares.AdminRequired())
	admin.GET(AdminStatsRoute, adminHandler.Stats)
	admin.GET(AdminTransactionsRoute, adminHandler.Transactions)
	admin.POST(AdminTransactionsRoute, adminHandler.ManualEntry)
	admin.POST(AdminApproveRoute, adminHandler.Approve)
	admin.POST(AdminRejectRoute, adminHandler.Reject)
	admin.GET(AdminPlansRoute, adminHandler.Plans)
	admin.POST(AdminPlansRoute, adminHandler.CreatePlan)
	admin.PATCH(AdminPlanRoute, adminHandler.UpdatePlan)
	admin.DELETE(AdminPlanRoute, adminHandler.DeletePlan)
	admin.POST(AdminPlanToggleRoute, adminHandler.TogglePlan)
	admin.GET(AdminReferralConfigRoute, adminHandler.ReferralConfig)
	admin.PUT(AdminReferralConfigRoute, adminHandler.UpdateReferralConfig)

	return r
}
