package holdingrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func holdingRows(quantity, avgPrice, invested decimal.Decimal, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "token_id", "quantity", "average_price", "total_invested", "accumulated_yield", "updated_at"}).
		AddRow(1, 1, 1, quantity, avgPrice, invested, decimal.Zero, now)
}

func TestRepository_FindByUserAndToken(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Existing holding",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND token_id = $2`)).
					WithArgs(1, 1).
					WillReturnRows(holdingRows(decimal.New(2, 0), decimal.NewFromInt(1500000), decimal.NewFromInt(30000), now))
			},
			found: true,
		},
		{
			name: "No holding yet returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND token_id = $2`)).
					WithArgs(1, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			holding, err := repo.FindByUserAndToken(context.Background(), 1, 1)
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, holding)
				assert.True(t, holding.Quantity.Equal(decimal.New(2, 0)))
			} else {
				assert.Nil(t, holding)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// decimalEq matches a decimal.Decimal by value, ignoring exponent
// representation.
type decimalEq struct {
	want decimal.Decimal
}

func (d decimalEq) Match(v interface{}) bool {
	dec, ok := v.(decimal.Decimal)
	return ok && dec.Equal(d.want)
}

func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		name string
		buys [][2]int64 // quantity, price
		want int64
	}{
		{name: "Repeat buy at the same price leaves the average unchanged", buys: [][2]int64{{1, 1500000}, {1, 1500000}}, want: 1500000},
		{name: "Higher price pulls the average up", buys: [][2]int64{{2, 1500000}, {2, 1700000}}, want: 1600000},
		{name: "Average weights the larger buy", buys: [][2]int64{{1, 1000000}, {3, 2000000}}, want: 1750000},
		{name: "Long sequence matches total cost over total quantity", buys: [][2]int64{{2, 1500000}, {1, 1800000}, {5, 1200000}}, want: 1350000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.buys[0]
			holding := &domain.TokenHolding{
				Quantity:     decimal.NewFromInt(first[0]),
				AveragePrice: decimal.NewFromInt(first[1]),
			}
			cost := holding.Quantity.Mul(holding.AveragePrice)

			for _, buy := range tt.buys[1:] {
				quantity := decimal.NewFromInt(buy[0])
				price := decimal.NewFromInt(buy[1])
				holding.AveragePrice = weightedAverage(holding, quantity, price)
				holding.Quantity = holding.Quantity.Add(quantity)
				cost = cost.Add(quantity.Mul(price))
			}

			assert.True(t, holding.AveragePrice.Equal(decimal.NewFromInt(tt.want)),
				"got average %s", holding.AveragePrice)
			assert.True(t, holding.AveragePrice.Mul(holding.Quantity).Equal(cost))
		})
	}
}

func TestRepository_ApplyPurchase(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	quantity := decimal.New(2, 0)
	price := decimal.NewFromInt(1500000)
	invested := decimal.NewFromInt(30000)

	t.Run("First buy inserts the holding", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
			WithArgs(1, 1).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id, token_id) DO NOTHING`)).
			WithArgs(1, 1, quantity, price, invested).
			WillReturnRows(holdingRows(quantity, price, invested, now))

		holding, err := repo.ApplyPurchase(context.Background(), 1, 1, quantity, price, invested)
		assert.NoError(t, err)
		assert.True(t, holding.AveragePrice.Equal(price))
		assert.True(t, holding.TotalInvested.Equal(invested))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Follow-up buy writes the weighted average", func(t *testing.T) {
		newPrice := decimal.NewFromInt(1700000)
		newInvested := decimal.NewFromInt(34000)

		mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
			WithArgs(1, 1).
			WillReturnRows(holdingRows(quantity, price, invested, now))
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE token_holdings`)).
			WithArgs(
				decimalEq{decimal.NewFromInt(4)},
				decimalEq{decimal.NewFromInt(1600000)},
				decimalEq{decimal.NewFromInt(64000)},
				1,
			).
			WillReturnRows(holdingRows(decimal.NewFromInt(4), decimal.NewFromInt(1600000), decimal.NewFromInt(64000), now))

		holding, err := repo.ApplyPurchase(context.Background(), 1, 1, quantity, newPrice, newInvested)
		assert.NoError(t, err)
		assert.True(t, holding.AveragePrice.Equal(decimal.NewFromInt(1600000)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Concurrent first buy re-reads the winner's row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
			WithArgs(1, 1).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id, token_id) DO NOTHING`)).
			WithArgs(1, 1, quantity, price, invested).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
			WithArgs(1, 1).
			WillReturnRows(holdingRows(quantity, price, invested, now))
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE token_holdings`)).
			WithArgs(
				decimalEq{decimal.NewFromInt(4)},
				decimalEq{decimal.NewFromInt(1500000)},
				decimalEq{decimal.NewFromInt(60000)},
				1,
			).
			WillReturnRows(holdingRows(decimal.NewFromInt(4), price, decimal.NewFromInt(60000), now))

		holding, err := repo.ApplyPurchase(context.Background(), 1, 1, quantity, price, invested)
		assert.NoError(t, err)
		assert.True(t, holding.Quantity.Equal(decimal.NewFromInt(4)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ApplySale(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		quantity  decimal.Decimal
		mockSetup func(q decimal.Decimal)
		wantErr   error
	}{
		{
			name:     "Sale reduces quantity and invested share",
			quantity: decimal.New(1, 0),
			mockSetup: func(q decimal.Decimal) {
				mock.ExpectQuery(regexp.QuoteMeta(`AND quantity >= $1`)).
					WithArgs(q, 1, 1).
					WillReturnRows(holdingRows(decimal.New(1, 0), decimal.NewFromInt(1500000), decimal.NewFromInt(15000), now))
			},
		},
		{
			name:     "Oversell is refused by the quantity guard",
			quantity: decimal.New(5, 0),
			mockSetup: func(q decimal.Decimal) {
				mock.ExpectQuery(regexp.QuoteMeta(`AND quantity >= $1`)).
					WithArgs(q, 1, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrInsufficientTokens,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.quantity)

			holding, err := repo.ApplySale(context.Background(), 1, 1, tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, holding)
				return
			}
			assert.NoError(t, err)
			assert.True(t, holding.Quantity.Equal(decimal.New(1, 0)))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddYield(t *testing.T) {
	repo, mock := NewMock(t)

	yield := decimal.NewFromFloat(125.5)
	mock.ExpectExec(regexp.QuoteMeta(`SET accumulated_yield = accumulated_yield + $1`)).
		WithArgs(yield, 1, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AddYield(context.Background(), 1, 1, yield)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordTrade(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	trade := &domain.TokenTrade{
		UserID:    1,
		TokenID:   1,
		Side:      domain.TradeSideBuy,
		Amount:    3000000,
		Quantity:  decimal.New(2, 0),
		Price:     1500000,
		Reference: "BUY-1",
	}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO token_trades`)).
		WithArgs(1, 1, domain.TradeSideBuy, int64(3000000), trade.Quantity, int64(1500000), "BUY-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	recorded, err := repo.RecordTrade(context.Background(), trade)
	assert.NoError(t, err)
	assert.Equal(t, 7, recorded.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
