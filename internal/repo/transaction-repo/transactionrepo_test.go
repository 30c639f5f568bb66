package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func txnRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "wallet_id", "type", "amount", "description", "reference", "external_ref", "status", "created_at"}).
		AddRow(1, 1, domain.TransactionTypeCredit, int64(500000), "Wallet deposit via bank transfer", "TXN-1", nil, domain.TransactionStatusCompleted, now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Insert ledger entry",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(1, domain.TransactionTypeCredit, int64(500000), "Wallet deposit via bank transfer", "TXN-1", pgxmock.AnyArg(), domain.TransactionStatusCompleted).
					WillReturnRows(txnRows(now))
			},
		},
		{
			name: "Duplicate reference maps to sentinel",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(1, domain.TransactionTypeCredit, int64(500000), "Wallet deposit via bank transfer", "TXN-1", pgxmock.AnyArg(), domain.TransactionStatusCompleted).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "transactions_reference_key"})
			},
			wantErr: ErrDuplicateReference,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(1, domain.TransactionTypeCredit, int64(500000), "Wallet deposit via bank transfer", "TXN-1", pgxmock.AnyArg(), domain.TransactionStatusCompleted).
					WillReturnError(errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.Create(context.Background(), &domain.Transaction{
				WalletID:    1,
				Type:        domain.TransactionTypeCredit,
				Amount:      500000,
				Description: "Wallet deposit via bank transfer",
				Reference:   "TXN-1",
				Status:      domain.TransactionStatusCompleted,
			})
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "TXN-1", created.Reference)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByReference(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		reference string
		mockSetup func()
		found     bool
	}{
		{
			name:      "Existing reference",
			reference: "TXN-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE reference = $1`)).
					WithArgs("TXN-1").
					WillReturnRows(txnRows(now))
			},
			found: true,
		},
		{
			name:      "Unknown reference returns nil, nil",
			reference: "TXN-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE reference = $1`)).
					WithArgs("TXN-404").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			txn, err := repo.FindByReference(context.Background(), tt.reference)
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, txn)
				assert.Equal(t, tt.reference, txn.Reference)
			} else {
				assert.Nil(t, txn)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Pending transitions once",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $2 AND status = 'pending'`)).
					WithArgs(domain.TransactionStatusCompleted, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Second delivery finds nothing pending",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $2 AND status = 'pending'`)).
					WithArgs(domain.TransactionStatusCompleted, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.MarkCompleted(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkFailed(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Pending or completed transitions to failed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $2 AND status <> $1`)).
					WithArgs(domain.TransactionStatusFailed, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Already failed stays failed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $2 AND status <> $1`)).
					WithArgs(domain.TransactionStatusFailed, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.MarkFailed(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetExternalRef(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET external_ref = $1`)).
		WithArgs("MFY-12345", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetExternalRef(context.Background(), 1, "MFY-12345")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByWalletID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs(1).
		WillReturnRows(txnRows(now))

	txns, err := repo.FindByWalletID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
