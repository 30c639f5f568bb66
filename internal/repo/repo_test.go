package repo

import (
	"testing"

	"github.com/adesinaj/kobovest/internal/pg"
	holdingrepo "github.com/adesinaj/kobovest/internal/repo/holding-repo"
	tokenrepo "github.com/adesinaj/kobovest/internal/repo/token-repo"
	transactionrepo "github.com/adesinaj/kobovest/internal/repo/transaction-repo"
	userrepo "github.com/adesinaj/kobovest/internal/repo/user-repo"
	walletrepo "github.com/adesinaj/kobovest/internal/repo/wallet-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.TokenRepo)
	assert.NotNil(t, repo.HoldingRepo)
	assert.NotNil(t, repo.AlertRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &tokenrepo.Repository{}, repo.TokenRepo)
	assert.IsType(t, &holdingrepo.Repository{}, repo.HoldingRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
