package walletrepo

import (
	"context"
	"errors"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const walletColumns = "id, user_id, account_number, bank_name, account_name, account_ref, balance, created_at"

func (r *Repository) Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, account_number, bank_name, account_name, account_ref, balance)
        VALUES ($1, $2, $3, $4, $5, 0)
        RETURNING ` + walletColumns
	row := r.db.QueryRow(ctx, query, wallet.UserID, wallet.AccountNumber, wallet.BankName, wallet.AccountName, wallet.AccountRef)
	created, err := scanWallet(row)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, walletID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet by user", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE account_number = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, accountNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet by account number", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Credit increments the balance as a relative update evaluated by the
// store, so concurrent credits to the same wallet never lose updates.
func (r *Repository) Credit(ctx context.Context, walletID int, amount int64) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE id = $2
        RETURNING ` + walletColumns
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Debit decrements the balance only when it stays non-negative; the
// check and the decrement are one atomic statement.
func (r *Repository) Debit(ctx context.Context, walletID int, amount int64) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
        RETURNING ` + walletColumns
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		exists, exErr := r.exists(ctx, walletID)
		if exErr != nil {
			return nil, exErr
		}
		if !exists {
			return nil, ErrWalletNotFound
		}
		return nil, ErrInsufficientFunds
	}
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) exists(ctx context.Context, walletID int) (bool, error) {
	var found bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM wallets WHERE id = $1)", walletID).Scan(&found)
	if err != nil {
		zap.L().Error("failed to check wallet existence", zap.Error(err))
		return false, err
	}
	return found, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.AccountNumber, &w.BankName, &w.AccountName, &w.AccountRef, &w.Balance, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
