package service

import (
	"testing"

	"github.com/adesinaj/kobovest/internal/config"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/adesinaj/kobovest/internal/repo"
	alertrepo "github.com/adesinaj/kobovest/internal/repo/alert-repo"
	"github.com/adesinaj/kobovest/internal/service/authservice"
	"github.com/adesinaj/kobovest/internal/service/tradeservice"
	"github.com/adesinaj/kobovest/internal/service/walletservice"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		UserRepo:        authservice.NewMockRepo(ctrl),
		WalletRepo:      walletservice.NewMockWalletRepo(ctrl),
		TransactionRepo: walletservice.NewMockTransactionRepo(ctrl),
		TokenRepo:       tradeservice.NewMockTokenRepo(ctrl),
		HoldingRepo:     tradeservice.NewMockHoldingRepo(ctrl),
		AlertRepo:       alertrepo.New(mockDB, mockTxManager),
	}

	cfg := &config.Config{
		GatewayAddress:  "http://localhost:8081",
		NotifierAddress: "http://localhost:8082",
	}
	services := New(cfg, repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.TradeService)
	assert.NotNil(t, services.TokenService)
	assert.NotNil(t, services.AlertService)
	assert.NotNil(t, services.WebhookService)
}
