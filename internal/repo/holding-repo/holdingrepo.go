package holdingrepo

import (
	"context"
	"errors"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInsufficientTokens = errors.New("insufficient token quantity")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const holdingColumns = "id, user_id, token_id, quantity, average_price, total_invested, accumulated_yield, updated_at"

func (r *Repository) FindByUserAndToken(ctx context.Context, userID, tokenID int) (*domain.TokenHolding, error) {
	query := `
        SELECT ` + holdingColumns + `
        FROM token_holdings
        WHERE user_id = $1 AND token_id = $2
    `
	holding, err := scanHolding(r.db.QueryRow(ctx, query, userID, tokenID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find holding", zap.Error(err))
		return nil, err
	}
	return holding, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.TokenHolding, error) {
	query := `
        SELECT ` + holdingColumns + `
        FROM token_holdings
        WHERE user_id = $1
        ORDER BY updated_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch holdings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var holdings []domain.TokenHolding
	for rows.Next() {
		var h domain.TokenHolding
		err := rows.Scan(&h.ID, &h.UserID, &h.TokenID, &h.Quantity, &h.AveragePrice, &h.TotalInvested, &h.AccumulatedYield, &h.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan holding row", zap.Error(err))
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// weightedAverage returns the mean purchase price after folding
// quantity units at price into the holding, each buy weighted by its
// quantity. Buying at the current average leaves it unchanged.
func weightedAverage(h *domain.TokenHolding, quantity, price decimal.Decimal) decimal.Decimal {
	return h.Quantity.Mul(h.AveragePrice).
		Add(quantity.Mul(price)).
		Div(h.Quantity.Add(quantity))
}

// ApplyPurchase folds a buy into the holding. The row stays locked for
// the rest of the surrounding transaction, so concurrent buys of the
// same token serialize; a concurrent first buy loses the ON CONFLICT
// insert and re-reads the winner's row.
func (r *Repository) ApplyPurchase(ctx context.Context, userID, tokenID int, quantity, price, invested decimal.Decimal) (*domain.TokenHolding, error) {
	for {
		existing, err := r.lockHolding(ctx, userID, tokenID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			holding, err := r.insertHolding(ctx, userID, tokenID, quantity, price, invested)
			if err != nil {
				return nil, err
			}
			if holding == nil {
				continue
			}
			return holding, nil
		}
		return r.growHolding(ctx, existing, quantity, price, invested)
	}
}

func (r *Repository) lockHolding(ctx context.Context, userID, tokenID int) (*domain.TokenHolding, error) {
	query := `
        SELECT ` + holdingColumns + `
        FROM token_holdings
        WHERE user_id = $1 AND token_id = $2
        FOR UPDATE
    `
	holding, err := scanHolding(r.db.QueryRow(ctx, query, userID, tokenID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock holding", zap.Error(err))
		return nil, err
	}
	return holding, nil
}

func (r *Repository) insertHolding(ctx context.Context, userID, tokenID int, quantity, price, invested decimal.Decimal) (*domain.TokenHolding, error) {
	query := `
        INSERT INTO token_holdings (user_id, token_id, quantity, average_price, total_invested)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, token_id) DO NOTHING
        RETURNING ` + holdingColumns
	holding, err := scanHolding(r.db.QueryRow(ctx, query, userID, tokenID, quantity, price, invested))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to insert holding", zap.Error(err))
		return nil, err
	}
	return holding, nil
}

func (r *Repository) growHolding(ctx context.Context, h *domain.TokenHolding, quantity, price, invested decimal.Decimal) (*domain.TokenHolding, error) {
	query := `
        UPDATE token_holdings
        SET quantity = $1, average_price = $2, total_invested = $3, updated_at = now()
        WHERE id = $4
        RETURNING ` + holdingColumns
	holding, err := scanHolding(r.db.QueryRow(ctx, query,
		h.Quantity.Add(quantity),
		weightedAverage(h, quantity, price),
		h.TotalInvested.Add(invested),
		h.ID,
	))
	if err != nil {
		zap.L().Error("failed to apply purchase to holding", zap.Error(err))
		return nil, err
	}
	return holding, nil
}

// ApplySale reduces quantity and the proportional share of
// total_invested; the average price is left untouched. The quantity
// guard keeps holdings non-negative under concurrent sales.
func (r *Repository) ApplySale(ctx context.Context, userID, tokenID int, quantity decimal.Decimal) (*domain.TokenHolding, error) {
	query := `
        UPDATE token_holdings
        SET total_invested = total_invested - total_invested * ($1 / quantity),
            quantity = quantity - $1,
            updated_at = now()
        WHERE user_id = $2 AND token_id = $3 AND quantity >= $1
        RETURNING ` + holdingColumns
	holding, err := scanHolding(r.db.QueryRow(ctx, query, quantity, userID, tokenID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInsufficientTokens
	}
	if err != nil {
		zap.L().Error("failed to apply sale to holding", zap.Error(err))
		return nil, err
	}
	return holding, nil
}

func (r *Repository) AddYield(ctx context.Context, userID, tokenID int, yield decimal.Decimal) error {
	query := `
        UPDATE token_holdings
        SET accumulated_yield = accumulated_yield + $1, updated_at = now()
        WHERE user_id = $2 AND token_id = $3
    `
	if _, err := r.db.Exec(ctx, query, yield, userID, tokenID); err != nil {
		zap.L().Error("failed to add yield", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RecordTrade(ctx context.Context, trade *domain.TokenTrade) (*domain.TokenTrade, error) {
	query := `
        INSERT INTO token_trades (user_id, token_id, side, amount, quantity, price, reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, trade.UserID, trade.TokenID, trade.Side, trade.Amount, trade.Quantity, trade.Price, trade.Reference).
		Scan(&trade.ID, &trade.CreatedAt)
	if err != nil {
		zap.L().Error("failed to record trade", zap.Error(err))
		return nil, err
	}
	return trade, nil
}

func scanHolding(row pgx.Row) (*domain.TokenHolding, error) {
	var h domain.TokenHolding
	err := row.Scan(&h.ID, &h.UserID, &h.TokenID, &h.Quantity, &h.AveragePrice, &h.TotalInvested, &h.AccumulatedYield, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
