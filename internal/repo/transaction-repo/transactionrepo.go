package transactionrepo

import (
	"context"
	"errors"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateReference is returned when an insert collides with an
	// existing idempotency reference. Callers treat it as "already
	// applied", not as a failure.
	ErrDuplicateReference = errors.New("transaction reference already exists")
	// ErrAlreadyProcessed is returned when a status transition finds the
	// transaction no longer pending.
	ErrAlreadyProcessed = errors.New("transaction already processed")
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const txnColumns = "id, wallet_id, type, amount, description, reference, external_ref, status, created_at"

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (wallet_id, type, amount, description, reference, external_ref, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + txnColumns
	row := r.db.QueryRow(ctx, query, txn.WalletID, txn.Type, txn.Amount, txn.Description, txn.Reference, txn.ExternalRef, txn.Status)
	created, err := scanTransaction(row)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateReference
		}
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE reference = $1
    `
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find transaction by reference", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByExternalRef(ctx context.Context, externalRef string) (*domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE external_ref = $1
    `
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, externalRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find transaction by external ref", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByWalletID(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.WalletID, &txn.Type, &txn.Amount, &txn.Description, &txn.Reference, &txn.ExternalRef, &txn.Status, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// MarkCompleted transitions pending -> completed. The status guard makes
// the transition apply exactly once under duplicate webhook deliveries.
func (r *Repository) MarkCompleted(ctx context.Context, id int) error {
	query := `
        UPDATE transactions
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `
	return r.transition(ctx, query, domain.TransactionStatusCompleted, id)
}

// MarkFailed transitions to failed from any status but failed itself. A
// reversal can land after the disbursement already completed, so the
// guard only has to make the transition apply exactly once.
func (r *Repository) MarkFailed(ctx context.Context, id int) error {
	query := `
        UPDATE transactions
        SET status = $1
        WHERE id = $2 AND status <> $1
    `
	return r.transition(ctx, query, domain.TransactionStatusFailed, id)
}

func (r *Repository) transition(ctx context.Context, query, status string, id int) error {
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

func (r *Repository) SetExternalRef(ctx context.Context, id int, externalRef string) error {
	query := `
        UPDATE transactions
        SET external_ref = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, externalRef, id); err != nil {
		zap.L().Error("failed to set external ref", zap.Error(err))
		return err
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(&txn.ID, &txn.WalletID, &txn.Type, &txn.Amount, &txn.Description, &txn.Reference, &txn.ExternalRef, &txn.Status, &txn.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
