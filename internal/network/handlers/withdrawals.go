package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/services"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetWithdrawalsHandler — получение ожидающих заявок на вывод и статистики
func GetWithdrawalsHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, err := s.GetRequests(r.Context())
		if err != nil {
			logger.Error("Failed to get withdrawal requests:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ApproveWithdrawalHandler — одобрение заявки на вывод средств.
// Вопросы, требующие решения оператора (недостаток средств, отсутствие
// игрока, сбой списания), возвращаются с кодом 409: клиент показывает
// вопрос и повторяет запрос с confirm=true. Отказ от подтверждения - это
// просто отсутствие повторного запроса, записи не выполняются.
func ApproveWithdrawalHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		// тело необязательно: без него запрос считается неподтверждённым
		var req models.ApproveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.Approve(r.Context(), id, req.Confirm)
		if err != nil {
			var confirmation *services.ConfirmationError
			switch {
			case errors.As(err, &confirmation):
				balance, _ := confirmation.Balance.Float64()
				amount, _ := confirmation.Amount.Float64()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				err = json.NewEncoder(w).Encode(models.ConfirmationResponse{
					Reason:  confirmation.Reason,
					Prompt:  confirmation.Prompt,
					Balance: balance,
					Amount:  amount,
				})
				if err != nil {
					logger.Error("Failed to encode JSON response:", zap.Error(err))
				}
			case errors.Is(err, storage.ErrRequestNotFound):
				http.Error(w, "Request not found", http.StatusNotFound)
			default:
				logger.Error("Failed to approve withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// RejectWithdrawalHandler — отклонение заявки на вывод средств
func RejectWithdrawalHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := s.Reject(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				http.Error(w, "Request not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to reject withdrawal:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
