package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit - ограничение частоты запросов на клиента. Прикрывает кнопочные
// действия оператора от повторной отправки, пока предыдущая в полёте.
func RateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	var (
		mutex   sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	getLimiter := func(clientIP string) *rate.Limiter {
		mutex.Lock()
		defer mutex.Unlock()

		client, ok := clients[clientIP]
		if !ok {
			client = &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
			clients[clientIP] = client
		}
		client.lastSeen = time.Now()

		// попутная чистка давно не появлявшихся клиентов
		for ip, c := range clients {
			if time.Since(c.lastSeen) > 10*time.Minute {
				delete(clients, ip)
			}
		}
		return client.limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !getLimiter(clientIP(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP - адрес клиента из заголовков прокси или RemoteAddr
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.SplitN(xff, ",", 2)
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
