package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/matka-admin/internal/helpers"
	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Причины, требующие явного решения оператора перед одобрением
const (
	ConfirmReasonInsufficientFunds   = "insufficient_funds"
	ConfirmReasonUserNotFound        = "user_not_found"
	ConfirmReasonBalanceUpdateFailed = "balance_update_failed"
)

// ConfirmationError - не сбой, а точка принятия решения: одобрение не
// выполнено и требует повторного запроса с подтверждением оператора.
// Никакие записи при этом не выполняются, заявка остаётся в статусе Pending.
type ConfirmationError struct {
	Reason  string
	Prompt  string
	Balance decimal.Decimal
	Amount  decimal.Decimal
}

func (e *ConfirmationError) Error() string {
	return e.Prompt
}

type WithdrawalsService interface {
	GetRequests(ctx context.Context) (*models.WithdrawalsResponse, error)
	Approve(ctx context.Context, id string, confirmed bool) error
	Reject(ctx context.Context, id string) error
}

type Withdrawals struct {
	Withdrawals storage.WithdrawalsStorage
	Users       storage.UsersStorage
}

// Создание сервиса
func NewWithdrawals(withdrawals storage.WithdrawalsStorage, users storage.UsersStorage) WithdrawalsService {
	return &Withdrawals{Withdrawals: withdrawals, Users: users}
}

// GetRequests возвращает ожидающие заявки на вывод и статистику по ним
func (s *Withdrawals) GetRequests(ctx context.Context) (*models.WithdrawalsResponse, error) {
	pending, err := s.Withdrawals.GetPendingWithdrawals(ctx)
	if err != nil {
		logger.Error("Failed to get withdrawal requests", zap.Error(err))
		return nil, err
	}

	response := &models.WithdrawalsResponse{}
	pendingAmount := decimal.Zero

	for _, request := range pending {
		pendingAmount = pendingAmount.Add(request.Amount)
		floatAmount, _ := request.Amount.Float64()

		response.Requests = append(response.Requests, models.WithdrawalResponse{
			ID:        request.ID,
			UserID:    request.UserID,
			Amount:    floatAmount,
			Type:      request.Type,
			UpiID:     request.UpiID,
			Status:    request.Status,
			CreatedAt: request.CreatedAt.Format(time.RFC3339),
		})
	}

	response.Stats.PendingCount = len(pending)
	response.Stats.PendingAmount, _ = pendingAmount.Float64()

	return response, nil
}

// Approve - одобрение заявки на вывод средств.
//
// Сначала разрешается вопрос с балансом игрока: при достаточном балансе
// списание выполняется атомарной дельтой на стороне хранилища. Недостаток
// средств, отсутствие записи игрока и сбой списания - не ошибки, а вопросы
// оператору: без confirmed возвращается ConfirmationError и ничего не
// записывается. С confirmed списание уходит в минус, пропускается или
// заявка одобряется без него соответственно.
//
// Статус заявки пишется только после разрешения вопроса с балансом, отдельной
// записью. Сбой записи статуса после успешного списания списание не
// откатывает - окно несогласованности исходной схемы сохранено осознанно.
// Защиты от повторного одобрения уже одобренной заявки нет.
func (s *Withdrawals) Approve(ctx context.Context, id string, confirmed bool) error {
	request, err := s.Withdrawals.GetWithdrawal(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			logger.Warn("Withdrawal request not found", id)
			return err
		}
		logger.Error("Failed to get withdrawal request", zap.Error(err))
		return err
	}

	if err := s.adjustBalance(ctx, request, confirmed); err != nil {
		return err
	}

	err = s.Withdrawals.ApproveWithdrawal(ctx, id, helpers.FormatApprovedOn(time.Now()), time.Now().UnixMilli())
	if err != nil {
		logger.Error("Failed to approve withdrawal", zap.Error(err))
		return err
	}

	logger.Info("Withdrawal request approved", id, request.UserID)
	return nil
}

// adjustBalance - условное списание суммы заявки с баланса игрока
func (s *Withdrawals) adjustBalance(ctx context.Context, request *models.WithdrawalRequestData, confirmed bool) error {
	balance, err := s.Users.GetUserBalance(ctx, request.UserID)

	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			if !confirmed {
				return &ConfirmationError{
					Reason: ConfirmReasonUserNotFound,
					Prompt: fmt.Sprintf("User record not found for user %s. Continue with request approval without balance deduction?", request.UserID),
					Amount: request.Amount,
				}
			}
			// подтверждено: одобряем без списания
			logger.Warn("User record missing, approving without balance deduction", request.UserID)
			return nil
		}
		return s.balanceFailure(request, confirmed, err)
	}

	if balance.Balance.LessThan(request.Amount) && !confirmed {
		return &ConfirmationError{
			Reason:  ConfirmReasonInsufficientFunds,
			Prompt:  fmt.Sprintf("User %s has insufficient balance (current: %s, withdrawal: %s). Proceed anyway? This will result in negative balance.", request.UserID, balance.Balance, request.Amount),
			Balance: balance.Balance,
			Amount:  request.Amount,
		}
	}

	if err := s.Users.AdjustUserBalance(ctx, request.UserID, request.Amount.Neg()); err != nil {
		return s.balanceFailure(request, confirmed, err)
	}

	logger.Info("User balance deducted", request.UserID, request.Amount)
	return nil
}

func (s *Withdrawals) balanceFailure(request *models.WithdrawalRequestData, confirmed bool, err error) error {
	logger.Error("Failed to update user balance", zap.Error(err))
	if !confirmed {
		return &ConfirmationError{
			Reason: ConfirmReasonBalanceUpdateFailed,
			Prompt: fmt.Sprintf("Failed to update user balance: %s. Continue with request approval?", err),
			Amount: request.Amount,
		}
	}
	// подтверждено: одобряем несмотря на несостоявшееся списание
	return nil
}

// Reject - отклонение заявки на вывод: статус Rejected и время обновления,
// баланс игрока не затрагивается
func (s *Withdrawals) Reject(ctx context.Context, id string) error {
	err := s.Withdrawals.UpdateWithdrawalStatus(ctx, id, models.RequestStatusRejected, time.Now().UnixMilli())
	if err != nil {
		logger.Error("Failed to reject withdrawal", zap.Error(err))
		return err
	}
	logger.Info("Withdrawal request rejected", id)
	return nil
}
