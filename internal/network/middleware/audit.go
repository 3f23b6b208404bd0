package middleware

import (
	"net/http"

	"github.com/denmor86/matka-admin/internal/helpers"
	"github.com/denmor86/matka-admin/internal/logger"
)

// Audit - журналирование действий оператора. Вешается на изменяющие маршруты
// после проверки JWT: логин уже лежит в контексте запроса.
func Audit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			login = "unknown"
		}
		logger.Info("Operator action", login, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
