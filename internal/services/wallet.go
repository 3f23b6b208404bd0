package services

import (
	"context"
	"strings"
	"time"

	"github.com/denmor86/matka-admin/internal/helpers"
	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletService interface {
	GetRequests(ctx context.Context) (*models.WalletRequestsResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

type Wallet struct {
	Storage storage.WalletStorage
}

// Создание сервиса
func NewWallet(storage storage.WalletStorage) WalletService {
	return &Wallet{Storage: storage}
}

// GetRequests возвращает ожидающие заявки на пополнение и статистику:
// количество и сумму ожидающих, сумму одобренных за сегодня
func (s *Wallet) GetRequests(ctx context.Context) (*models.WalletRequestsResponse, error) {
	pending, err := s.Storage.GetPendingRequests(ctx)
	if err != nil {
		logger.Error("Failed to get wallet requests", zap.Error(err))
		return nil, err
	}

	response := &models.WalletRequestsResponse{}
	pendingAmount := decimal.Zero

	for _, request := range pending {
		pendingAmount = pendingAmount.Add(request.Amount)
		floatAmount, _ := request.Amount.Float64()

		item := models.WalletRequestResponse{
			ID:        request.ID,
			UserID:    request.UserID,
			Amount:    floatAmount,
			Status:    request.Status,
			CreatedAt: request.CreatedAt.Format(time.RFC3339),
		}
		if !request.SubmittedAt.IsZero() {
			item.SubmittedAt = request.SubmittedAt.Format(time.RFC3339)
		}
		response.Requests = append(response.Requests, item)
	}

	response.Stats.PendingCount = len(pending)
	response.Stats.PendingAmount, _ = pendingAmount.Float64()

	approvedToday, err := s.approvedToday(ctx)
	if err != nil {
		// статистика не должна ронять выдачу списка
		logger.Error("Failed to get today approved amount", zap.Error(err))
		approvedToday = 0
	}
	response.Stats.ApprovedToday = approvedToday

	return response, nil
}

// approvedToday - сумма заявок, одобренных сегодня. Отметка одобрения хранится
// человекочитаемой строкой и сравнивается только по вхождению подстроки дня.
func (s *Wallet) approvedToday(ctx context.Context) (float64, error) {
	approved, err := s.Storage.GetApprovedRequests(ctx)
	if err != nil {
		return 0, err
	}

	today := helpers.FormatDay(time.Now())
	amount := decimal.Zero

	for _, request := range approved {
		if request.ApprovedOn != "" && strings.Contains(request.ApprovedOn, today) {
			amount = amount.Add(request.Amount)
		}
	}

	floatAmount, _ := amount.Float64()
	return floatAmount, nil
}

// Approve - одобрение заявки на пополнение: статус Approved и отметка
// одобрения. Баланс игрока заявка на пополнение не меняет.
func (s *Wallet) Approve(ctx context.Context, id string) error {
	if err := s.Storage.ApproveRequest(ctx, id, helpers.FormatApprovedOn(time.Now())); err != nil {
		logger.Error("Failed to approve wallet request", zap.Error(err))
		return err
	}
	logger.Info("Wallet request approved", id)
	return nil
}

// Reject - отклонение заявки на пополнение. Исторически статус пишется в
// нижнем регистре ("rejected") в отличие от потока выводов - сохранено как есть.
func (s *Wallet) Reject(ctx context.Context, id string) error {
	if err := s.Storage.UpdateRequestStatus(ctx, id, models.RequestStatusWalletRejected); err != nil {
		logger.Error("Failed to reject wallet request", zap.Error(err))
		return err
	}
	logger.Info("Wallet request rejected", id)
	return nil
}
