package handlers

import (
	"net/http"

	_ "github.com/adesinaj/kobovest/docs"
	"github.com/adesinaj/kobovest/internal/config"
	alerthandlers "github.com/adesinaj/kobovest/internal/handlers/alert"
	authhandlers "github.com/adesinaj/kobovest/internal/handlers/auth"
	tokenhandlers "github.com/adesinaj/kobovest/internal/handlers/token"
	tradehandlers "github.com/adesinaj/kobovest/internal/handlers/trade"
	wallethandlers "github.com/adesinaj/kobovest/internal/handlers/wallet"
	webhookhandlers "github.com/adesinaj/kobovest/internal/handlers/webhook"
	"github.com/adesinaj/kobovest/internal/service"
	"github.com/adesinaj/kobovest/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type TradeHandler interface {
	Buy(w http.ResponseWriter, r *http.Request)
	Sell(w http.ResponseWriter, r *http.Request)
	GetHoldings(w http.ResponseWriter, r *http.Request)
}

type TokenHandler interface {
	ListTokens(w http.ResponseWriter, r *http.Request)
	GetToken(w http.ResponseWriter, r *http.Request)
}

type AlertHandler interface {
	CreateAlert(w http.ResponseWriter, r *http.Request)
	GetAlerts(w http.ResponseWriter, r *http.Request)
	DeleteAlert(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	HandleGatewayEvent(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	TradeHandler   TradeHandler
	TokenHandler   TokenHandler
	AlertHandler   AlertHandler
	WebhookHandler WebhookHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		TradeHandler:   tradehandlers.New(s.TradeService),
		TokenHandler:   tokenhandlers.New(s.TokenService),
		AlertHandler:   alerthandlers.New(s.AlertService),
		WebhookHandler: webhookhandlers.New(s.WebhookService, cfg),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/api/webhooks/gateway", h.WebhookHandler.HandleGatewayEvent)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
			r.Get("/holdings", h.TradeHandler.GetHoldings)
			r.Route("/alerts", func(r chi.Router) {
				r.Post("/", h.AlertHandler.CreateAlert)
				r.Get("/", h.AlertHandler.GetAlerts)
				r.Delete("/{id}", h.AlertHandler.DeleteAlert)
			})
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/api/trade", func(r chi.Router) {
			r.Post("/buy", h.TradeHandler.Buy)
			r.Post("/sell", h.TradeHandler.Sell)
		})
		r.Route("/api/tokens", func(r chi.Router) {
			r.Get("/", h.TokenHandler.ListTokens)
			r.Get("/{symbol}", h.TokenHandler.GetToken)
		})
	})

	return r
}
