package repo

import (
	"github.com/adesinaj/kobovest/internal/pg"
	alertrepo "github.com/adesinaj/kobovest/internal/repo/alert-repo"
	holdingrepo "github.com/adesinaj/kobovest/internal/repo/holding-repo"
	tokenrepo "github.com/adesinaj/kobovest/internal/repo/token-repo"
	transactionrepo "github.com/adesinaj/kobovest/internal/repo/transaction-repo"
	userrepo "github.com/adesinaj/kobovest/internal/repo/user-repo"
	walletrepo "github.com/adesinaj/kobovest/internal/repo/wallet-repo"
	"github.com/adesinaj/kobovest/internal/service/authservice"
	"github.com/adesinaj/kobovest/internal/service/tradeservice"
	"github.com/adesinaj/kobovest/internal/service/walletservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	TokenRepo       tradeservice.TokenRepo
	HoldingRepo     tradeservice.HoldingRepo
	AlertRepo       *alertrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	walletRepo := walletrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	tokenRepo := tokenrepo.New(conn)
	holdingRepo := holdingrepo.New(conn)
	alertRepo := alertrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:        userRepo,
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		TokenRepo:       tokenRepo,
		HoldingRepo:     holdingRepo,
		AlertRepo:       alertRepo,
	}
}
