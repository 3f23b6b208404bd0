package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/services"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/denmor86/matka-admin/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetMarketsHandler — получение списка рынков коллекции с признаком
// открытости, статистикой и необязательным поиском по имени (?q=)
func GetMarketsHandler(m services.MarketsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("kind")
		if kind == "" {
			kind = models.MarketKindMain
		}
		search := r.URL.Query().Get("q")

		response, err := m.GetMarkets(r.Context(), kind, search)
		if err != nil {
			if errors.Is(err, services.ErrUnknownMarketKind) {
				http.Error(w, "Unknown market kind", http.StatusBadRequest)
				return
			}
			logger.Error("Failed to get markets:", zap.Error(err))
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

// UpdateMarketNumberHandler — запись нового опубликованного числа рынка
func UpdateMarketNumberHandler(m services.MarketsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")
		id := chi.URLParam(r, "id")

		var req models.UpdateNumberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if !validators.CheckMarketNumber(req.Number) {
			logger.Warn("Empty market number")
			http.Error(w, "Empty market number", http.StatusUnprocessableEntity)
			return
		}

		err := m.UpdateNumber(r.Context(), kind, id, req.Number)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownMarketKind):
				http.Error(w, "Unknown market kind", http.StatusBadRequest)
			case errors.Is(err, storage.ErrMarketNotFound):
				http.Error(w, "Market not found", http.StatusNotFound)
			default:
				logger.Error("Failed to update market number:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
