// Package advisor генерирует инвестиционные рекомендации через LLM API.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/monitoring"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

//go:generate mockgen -source=advisor.go -destination=mocks/mocks.go -package=mocks

// FallbackAdvice отдается, когда LLM недоступен. Ответ юзеру приходит всегда,
// деградация внешнего API не является ошибкой запроса.
const FallbackAdvice = "The market looks stable. Consider diversifying your " +
	"yield strategies with our Pro and Elite plans for maximum passive returns."

type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Profile struct {
	Available decimal.Decimal
	Locked    decimal.Decimal
	Role      domain.RoleType
}

// Advisor оборачивает LLM клиент в circuit breaker и таймаут. При открытом
// breaker'е внешний API даже не дергается.
type Advisor struct {
	client  Client
	cb      *gobreaker.CircuitBreaker
	l       *logrus.Entry
	timeout time.Duration
}

func New(client Client, timeout time.Duration, l *logrus.Logger) *Advisor {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "advisor",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
	return &Advisor{
		client:  client,
		cb:      cb,
		l:       l.WithFields(logrus.Fields{"component": "advisor"}),
		timeout: timeout,
	}
}

// Advise возвращает короткую рекомендацию по профилю юзера и витрине планов.
// Любая ошибка внешнего API логируется и заменяется статичным советом.
func (a *Advisor) Advise(ctx context.Context, profile Profile, plans []domain.Plan) string {
	prompt := buildPrompt(profile, plans)

	result, err := a.cb.Execute(func() (any, error) {
		reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()
		return a.client.Complete(reqCtx, prompt)
	})
	if err != nil {
		a.l.WithError(err).Warn("advice request failed, serving fallback")
		monitoring.AdvisorFallbacksTotal.Inc()
		return FallbackAdvice
	}

	advice, ok := result.(string)
	if !ok || strings.TrimSpace(advice) == "" {
		monitoring.AdvisorFallbacksTotal.Inc()
		return FallbackAdvice
	}
	return advice
}

func buildPrompt(profile Profile, plans []domain.Plan) string {
	var sb strings.Builder
	sb.WriteString("As a sophisticated investment bot for a USDT Yield platform, ")
	sb.WriteString("analyze this user's profile and suggest the best strategy.\n\n")
	sb.WriteString("User Profile:\n")
	fmt.Fprintf(&sb, "- Current Balance: %s USDT\n", profile.Available.String())
	fmt.Fprintf(&sb, "- Locked (Active) Balance: %s USDT\n", profile.Locked.String())
	fmt.Fprintf(&sb, "- Account Level: %s\n\n", profile.Role)
	sb.WriteString("Available Investment Plans:\n")
	for _, plan := range plans {
		fmt.Fprintf(&sb, "- %s: Cost %s USDT, Daily Interest %s%%, Duration %d days\n",
			plan.Name, plan.Price.String(), plan.DailyRate.String(), plan.DurationDays)
	}
	sb.WriteString("\nProvide a concise, encouraging recommendation (under 100 words) ")
	sb.WriteString("on which plan they should consider next or if they should save up.")
	return sb.String()
}
