package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/adesinaj/kobovest/docs"
	"github.com/adesinaj/kobovest/internal/config"
	alerthandlers "github.com/adesinaj/kobovest/internal/handlers/alert"
	authhandlers "github.com/adesinaj/kobovest/internal/handlers/auth"
	tokenhandlers "github.com/adesinaj/kobovest/internal/handlers/token"
	tradehandlers "github.com/adesinaj/kobovest/internal/handlers/trade"
	wallethandlers "github.com/adesinaj/kobovest/internal/handlers/wallet"
	webhookhandlers "github.com/adesinaj/kobovest/internal/handlers/webhook"
	"github.com/adesinaj/kobovest/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		WalletService:  wallethandlers.NewMockService(ctrl),
		TradeService:   tradehandlers.NewMockService(ctrl),
		TokenService:   tokenhandlers.NewMockService(ctrl),
		AlertService:   alerthandlers.NewMockService(ctrl),
		WebhookService: webhookhandlers.NewMockService(ctrl),
	}

	h := New(services, &config.Config{})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockTradeHandler := NewMockTradeHandler(ctrl)
	mockTokenHandler := NewMockTokenHandler(ctrl)
	mockAlertHandler := NewMockAlertHandler(ctrl)
	mockWebhookHandler := NewMockWebhookHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().Buy(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().Sell(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().GetHoldings(gomock.Any(), gomock.Any()).AnyTimes()
	mockTokenHandler.EXPECT().ListTokens(gomock.Any(), gomock.Any()).AnyTimes()
	mockTokenHandler.EXPECT().GetToken(gomock.Any(), gomock.Any()).AnyTimes()
	mockAlertHandler.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).AnyTimes()
	mockAlertHandler.EXPECT().GetAlerts(gomock.Any(), gomock.Any()).AnyTimes()
	mockAlertHandler.EXPECT().DeleteAlert(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().HandleGatewayEvent(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		WalletHandler:  mockWalletHandler,
		TradeHandler:   mockTradeHandler,
		TokenHandler:   mockTokenHandler,
		AlertHandler:   mockAlertHandler,
		WebhookHandler: mockWebhookHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/webhooks/gateway", http.StatusOK},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"GET", "/api/user/wallet/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/wallet/withdraw", http.StatusUnauthorized},
		{"GET", "/api/user/holdings", http.StatusUnauthorized},
		{"POST", "/api/user/alerts", http.StatusUnauthorized},
		{"GET", "/api/user/alerts", http.StatusUnauthorized},
		{"DELETE", "/api/user/alerts/3", http.StatusUnauthorized},
		{"POST", "/api/trade/buy", http.StatusUnauthorized},
		{"POST", "/api/trade/sell", http.StatusUnauthorized},
		{"GET", "/api/tokens", http.StatusUnauthorized},
		{"GET", "/api/tokens/AGRI", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
