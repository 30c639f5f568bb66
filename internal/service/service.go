package service

import (
	"github.com/adesinaj/kobovest/internal/handlers/alert"
	"github.com/adesinaj/kobovest/internal/handlers/auth"
	"github.com/adesinaj/kobovest/internal/handlers/token"
	"github.com/adesinaj/kobovest/internal/handlers/trade"
	"github.com/adesinaj/kobovest/internal/handlers/wallet"
	"github.com/adesinaj/kobovest/internal/handlers/webhook"

	pkgauth "github.com/adesinaj/kobovest/pkg/auth"
	"github.com/adesinaj/kobovest/pkg/clients"

	"github.com/adesinaj/kobovest/internal/config"
	"github.com/adesinaj/kobovest/internal/gateway"
	"github.com/adesinaj/kobovest/internal/notifier"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/adesinaj/kobovest/internal/repo"
	alertservice "github.com/adesinaj/kobovest/internal/service/alertservice"
	authservice "github.com/adesinaj/kobovest/internal/service/authservice"
	tradeservice "github.com/adesinaj/kobovest/internal/service/tradeservice"
	walletservice "github.com/adesinaj/kobovest/internal/service/walletservice"
)

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.Service
	TradeService   trade.Service
	TokenService   token.Service
	AlertService   alert.Service
	WebhookService webhook.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	httpClient := clients.NewHTTPClient()
	gatewayClient := gateway.New(cfg, httpClient)
	notifierClient := notifier.New(cfg.NotifierAddress, httpClient)

	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, txManager, gatewayClient, notifierClient)
	tradeService := tradeservice.New(repo.WalletRepo, repo.TransactionRepo, repo.TokenRepo, repo.HoldingRepo, txManager, notifierClient)
	alertService := alertservice.New(repo.AlertRepo, repo.TokenRepo)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		WalletService:  walletService,
		TradeService:   tradeService,
		TokenService:   tradeService,
		AlertService:   alertService,
		WebhookService: walletService,
	}
}
