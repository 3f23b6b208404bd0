package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/services"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetWalletRequestsHandler — получение ожидающих заявок на пополнение и статистики
func GetWalletRequestsHandler(s services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, err := s.GetRequests(r.Context())
		if err != nil {
			logger.Error("Failed to get wallet requests:", zap.Error(err))
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

// ApproveWalletRequestHandler — одобрение заявки на пополнение
func ApproveWalletRequestHandler(s services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := s.Approve(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				http.Error(w, "Request not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to approve wallet request:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// RejectWalletRequestHandler — отклонение заявки на пополнение
func RejectWalletRequestHandler(s services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := s.Reject(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				http.Error(w, "Request not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to reject wallet request:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
