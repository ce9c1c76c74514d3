// Package accrual начисляет суточные проценты по активным холдингам.
package accrual

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultServiceTimeout = 5 * time.Second

//go:generate mockgen -source=processor.go -destination=mocks/mocks.go -package=mocks

type Servicer interface {
	ProcessAccruals(ctx context.Context, now time.Time) (int, error)
}

// Processor - фоновый цикл начислений. Раз в interval будит сервисный слой,
// тот сам решает, каким холдингам пора капать. Пропущенные тики не страшны:
// начисление считается от AccruedThrough, а не от времени тика.
type Processor struct {
	svs      Servicer
	l        *logrus.Entry
	interval time.Duration
}

func New(svs Servicer, interval time.Duration, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "accrual",
		"module":    "processor",
	})
	return &Processor{
		svs:      svs,
		l:        loggerEntry,
		interval: interval,
	}
}

// Run запускает цикл начислений до отмены контекста. Первый проход делается
// сразу, чтобы после рестарта не ждать целый interval.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithField("interval", p.interval.String()).Info("Starting")

	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Processor) tick(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	credited, err := p.svs.ProcessAccruals(reqCtx, time.Now())
	if err != nil {
		p.l.WithError(err).Error("process accruals")
		return
	}
	if credited > 0 {
		p.l.WithField("credited", credited).Info("Interest credited")
	}
}
