package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Wallet balance is stored in kobo. The account fields identify the
// dedicated receiving account issued by the payment gateway.
type Wallet struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	AccountNumber string    `db:"account_number"`
	BankName      string    `db:"bank_name"`
	AccountName   string    `db:"account_name"`
	AccountRef    string    `db:"account_ref"`
	Balance       int64     `db:"balance"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is an append-only ledger entry. Reference is the
// idempotency key, unique across all transactions; ExternalRef holds
// the gateway's own transaction id when one exists.
type Transaction struct {
	ID          int       `db:"id"`
	WalletID    int       `db:"wallet_id"`
	Type        string    `db:"type"`
	Amount      int64     `db:"amount"`
	Description string    `db:"description"`
	Reference   string    `db:"reference"`
	ExternalRef *string   `db:"external_ref"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

// Token price is in kobo per unit. Volume accumulates traded Naira.
type Token struct {
	ID               int             `db:"id"`
	Symbol           string          `db:"symbol"`
	Name             string          `db:"name"`
	Price            int64           `db:"price"`
	Active           bool            `db:"active"`
	Volume           decimal.Decimal `db:"volume"`
	TransactionCount int64           `db:"transaction_count"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// TokenHolding keeps the weighted-average cost basis per (user, token).
// AveragePrice is in kobo per unit, TotalInvested in Naira. The row is
// kept when quantity drops to zero.
type TokenHolding struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	TokenID          int             `db:"token_id"`
	Quantity         decimal.Decimal `db:"quantity"`
	AveragePrice     decimal.Decimal `db:"average_price"`
	TotalInvested    decimal.Decimal `db:"total_invested"`
	AccumulatedYield decimal.Decimal `db:"accumulated_yield"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

const (
	TradeSideBuy  = "buy"
	TradeSideSell = "sell"
)

// TokenTrade is the immutable receipt of a single buy or sell.
// Amount is in kobo, Price in kobo per unit.
type TokenTrade struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	TokenID   int             `db:"token_id"`
	Side      string          `db:"side"`
	Amount    int64           `db:"amount"`
	Quantity  decimal.Decimal `db:"quantity"`
	Price     int64           `db:"price"`
	Reference string          `db:"reference"`
	CreatedAt time.Time       `db:"created_at"`
}

const (
	AlertDirectionAbove = "above"
	AlertDirectionBelow = "below"
)

// PriceAlertSetting is a user's standing request to be notified when a
// token price crosses Threshold (kobo) in Direction.
type PriceAlertSetting struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	TokenID         int        `db:"token_id"`
	Threshold       int64      `db:"threshold"`
	Direction       string     `db:"direction"`
	Active          bool       `db:"active"`
	LastTriggeredAt *time.Time `db:"last_triggered_at"`
	CreatedAt       time.Time  `db:"created_at"`
}

type PriceAlert struct {
	ID          int       `db:"id"`
	SettingID   int       `db:"setting_id"`
	TokenID     int       `db:"token_id"`
	Price       int64     `db:"price"`
	TriggeredAt time.Time `db:"triggered_at"`
}
