package services

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"go.uber.org/zap"
)

type DashboardService interface {
	Snapshot() models.DashboardSnapshot
	RefreshMarkets(ctx context.Context) error
	RefreshRequests(ctx context.Context) error
}

// Dashboard - кэш агрегатов для панели оператора. Представления не
// подписываются на изменения: срез пересобирается фоновым воркером с
// фиксированным интервалом, отставание до интервала считается допустимым.
type Dashboard struct {
	Markets     MarketsService
	Wallet      WalletService
	Withdrawals WithdrawalsService

	mutex    sync.RWMutex
	snapshot models.DashboardSnapshot
}

// Создание сервиса
func NewDashboard(markets MarketsService, wallet WalletService, withdrawals WithdrawalsService) DashboardService {
	return &Dashboard{Markets: markets, Wallet: wallet, Withdrawals: withdrawals}
}

// Snapshot - последний собранный срез. До первого обновления возвращается
// пустой срез без отметки времени.
func (s *Dashboard) Snapshot() models.DashboardSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot
}

// RefreshMarkets - пересбор статистики по обеим коллекциям рынков
func (s *Dashboard) RefreshMarkets(ctx context.Context) error {
	main, err := s.Markets.GetMarkets(ctx, models.MarketKindMain, "")
	if err != nil {
		logger.Error("Failed to refresh main markets stats", zap.Error(err))
		return err
	}
	starline, err := s.Markets.GetMarkets(ctx, models.MarketKindStarline, "")
	if err != nil {
		logger.Error("Failed to refresh starline markets stats", zap.Error(err))
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot.MainMarkets = main.Stats
	s.snapshot.StarlineMarkets = starline.Stats
	s.snapshot.RefreshedAt = time.Now().Format(time.RFC3339)
	return nil
}

// RefreshRequests - пересбор статистики по денежным заявкам
func (s *Dashboard) RefreshRequests(ctx context.Context) error {
	wallet, err := s.Wallet.GetRequests(ctx)
	if err != nil {
		logger.Error("Failed to refresh wallet requests stats", zap.Error(err))
		return err
	}
	withdrawals, err := s.Withdrawals.GetRequests(ctx)
	if err != nil {
		logger.Error("Failed to refresh withdrawal requests stats", zap.Error(err))
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot.Wallet = wallet.Stats
	s.snapshot.Withdrawals = withdrawals.Stats
	s.snapshot.RefreshedAt = time.Now().Format(time.RFC3339)
	return nil
}
