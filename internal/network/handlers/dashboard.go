package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/services"
	"go.uber.org/zap"
)

// DashboardHandler — выдача кэшированного среза статистики панели
func DashboardHandler(s services.DashboardService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(s.Snapshot())
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
