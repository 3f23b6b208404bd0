package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/services"
)

// RegisterOperatorHandler — регистрация нового оператора
func RegisterOperatorHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var operator models.OperatorRequest
		if err := json.NewDecoder(r.Body).Decode(&operator); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		// регистрация в Identity
		if err := i.RegisterOperator(r.Context(), operator); err != nil {
			// оператор уже существует
			if errors.Is(err, services.ErrOperatorAlreadyExists) {
				logger.Warn("Error register operator", operator.Login)
				http.Error(w, "login already exist", http.StatusConflict)
			} else {
				// ошибка регистрации
				logger.Error("Error register operator", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// Генерация JWT токена для зарегистрированного оператора
		token, err := i.GenerateJWT(operator.Login)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// Оператор зарегистрирован и авторизован
		logger.Info("Operator registered and authenticated", operator.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateOperatorHandler — аутентификация оператора
func AuthenticateOperatorHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var operator models.OperatorRequest
		if err := json.NewDecoder(r.Body).Decode(&operator); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		// аутентификация в Identity
		authenticated, err := i.AuthenticateOperator(r.Context(), operator)
		if err != nil {
			logger.Error("Error authenticate operator", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// проверка авторизации
		if !authenticated {
			logger.Warn("Authentication failed", operator.Login)
			http.Error(w, "Invalid login/password", http.StatusUnauthorized)
			return
		}
		// генерация токена
		token, err := i.GenerateJWT(operator.Login)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		// оператор прошел авторизацию
		logger.Info("Operator authenticated", operator.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}
