package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/matka-admin/internal/config"
	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "dashboard-refresh",
		Timeout: 30 * time.Second, // через 30 сек пробуем снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 подряд неудачных обновлений
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// DashboardWorker - воркер периодического пересбора среза панели.
// Заменяет поинтервальное автообновление страниц: рынки каждые 2 минуты,
// денежные заявки каждые 5 минут (интервалы задаются конфигурацией).
type DashboardWorker struct {
	Dashboard        services.DashboardService
	Breaker          *gobreaker.CircuitBreaker
	WaitGroup        sync.WaitGroup
	QuitChan         chan struct{}
	MarketsInterval  time.Duration
	RequestsInterval time.Duration
}

// NewDashboardWorker - конструктор воркера обновления панели
func NewDashboardWorker(dashboard services.DashboardService, cfg config.RefreshConfig) *DashboardWorker {
	return &DashboardWorker{
		Dashboard:        dashboard,
		Breaker:          InitCircuitBreaker(),
		QuitChan:         make(chan struct{}),
		MarketsInterval:  cfg.MarketsInterval,
		RequestsInterval: cfg.RequestsInterval,
	}
}

// Start - запускает воркер в фоне
func (w *DashboardWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *DashboardWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *DashboardWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	// первичное наполнение среза, до него панель отдаёт пустой срез
	w.Refresh(ctx, w.Dashboard.RefreshMarkets)
	w.Refresh(ctx, w.Dashboard.RefreshRequests)

	marketsTicker := time.NewTicker(w.MarketsInterval)
	defer marketsTicker.Stop()
	requestsTicker := time.NewTicker(w.RequestsInterval)
	defer requestsTicker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("DashboardWorker signal stop")
			return
		case <-marketsTicker.C:
			w.Refresh(ctx, w.Dashboard.RefreshMarkets)
		case <-requestsTicker.C:
			w.Refresh(ctx, w.Dashboard.RefreshRequests)
		}
	}
}

// Refresh - одно обновление через предохранитель. Сбой не повторяется сразу:
// следующая попытка - очередной тик
func (w *DashboardWorker) Refresh(ctx context.Context, refresh func(context.Context) error) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return nil, refresh(ctx)
	})

	if err != nil {
		logger.Error("Error dashboard refresh", err)
	}
}
