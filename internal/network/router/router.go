package router

import (
	"github.com/denmor86/matka-admin/internal/config"
	"github.com/denmor86/matka-admin/internal/network/handlers"
	"github.com/denmor86/matka-admin/internal/network/middleware"
	"github.com/denmor86/matka-admin/internal/services"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config      config.Config
	Identity    services.IdentityService
	Markets     services.MarketsService
	Wallet      services.WalletService
	Withdrawals services.WithdrawalsService
	Dashboard   services.DashboardService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	markets := services.NewMarkets(storage.Markets)
	wallet := services.NewWallet(storage.Wallet)
	withdrawals := services.NewWithdrawals(storage.Withdrawals, storage.Users)
	return &Router{
		Config:      config,
		Identity:    services.NewIdentity(config, storage.Operators),
		Markets:     markets,
		Wallet:      wallet,
		Withdrawals: withdrawals,
		Dashboard:   services.NewDashboard(markets, wallet, withdrawals),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/operator", func(r chi.Router) {
			r.Post("/register", handlers.RegisterOperatorHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateOperatorHandler(router.Identity))
		})
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))

			r.Get("/markets", handlers.GetMarketsHandler(router.Markets))
			r.Get("/wallet/requests", handlers.GetWalletRequestsHandler(router.Wallet))
			r.Get("/withdrawals", handlers.GetWithdrawalsHandler(router.Withdrawals))
			r.Get("/dashboard", handlers.DashboardHandler(router.Dashboard))

			// кнопочные действия оператора под ограничением частоты
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(rate.Limit(1), 3))
				r.Use(middleware.Audit)
				r.Post("/markets/{kind}/{id}/number", handlers.UpdateMarketNumberHandler(router.Markets))
				r.Post("/wallet/requests/{id}/approve", handlers.ApproveWalletRequestHandler(router.Wallet))
				r.Post("/wallet/requests/{id}/reject", handlers.RejectWalletRequestHandler(router.Wallet))
				r.Post("/withdrawals/{id}/approve", handlers.ApproveWithdrawalHandler(router.Withdrawals))
				r.Post("/withdrawals/{id}/reject", handlers.RejectWithdrawalHandler(router.Withdrawals))
			})
		})
	})
	return r
}
