package tokenrepo

import (
	"context"
	"errors"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const tokenColumns = "id, symbol, name, price, active, volume, transaction_count, updated_at"

func (r *Repository) FindBySymbol(ctx context.Context, symbol string) (*domain.Token, error) {
	query := `
        SELECT ` + tokenColumns + `
        FROM tokens
        WHERE symbol = $1
    `
	token, err := scanToken(r.db.QueryRow(ctx, query, symbol))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find token", zap.Error(err))
		return nil, err
	}
	return token, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Token, error) {
	query := `
        SELECT ` + tokenColumns + `
        FROM tokens
        ORDER BY symbol ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list tokens", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.Token
	for rows.Next() {
		var t domain.Token
		err := rows.Scan(&t.ID, &t.Symbol, &t.Name, &t.Price, &t.Active, &t.Volume, &t.TransactionCount, &t.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan token row", zap.Error(err))
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// ApplyTradeStats accumulates traded volume (Naira) and the trade count
// as relative updates.
func (r *Repository) ApplyTradeStats(ctx context.Context, tokenID int, volume decimal.Decimal) error {
	query := `
        UPDATE tokens
        SET volume = volume + $1, transaction_count = transaction_count + 1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, volume, tokenID); err != nil {
		zap.L().Error("failed to update token stats", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePrice(ctx context.Context, tokenID int, price int64) error {
	query := `
        UPDATE tokens
        SET price = $1, updated_at = now()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, price, tokenID); err != nil {
		zap.L().Error("failed to update token price", zap.Error(err))
		return err
	}
	return nil
}

func scanToken(row pgx.Row) (*domain.Token, error) {
	var t domain.Token
	err := row.Scan(&t.ID, &t.Symbol, &t.Name, &t.Price, &t.Active, &t.Volume, &t.TransactionCount, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
