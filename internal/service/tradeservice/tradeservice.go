// Package tradeservice settles token buys and sells: each trade is one
// store transaction combining the wallet movement, the holding update
// and the immutable trade receipt.
package tradeservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/notifier"
	"github.com/adesinaj/kobovest/internal/pg"
	holdingrepo "github.com/adesinaj/kobovest/internal/repo/holding-repo"
	walletrepo "github.com/adesinaj/kobovest/internal/repo/wallet-repo"
	"github.com/adesinaj/kobovest/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID int, amount int64) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID int, amount int64) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type TokenRepo interface {
	FindBySymbol(ctx context.Context, symbol string) (*domain.Token, error)
	List(ctx context.Context) ([]domain.Token, error)
	ApplyTradeStats(ctx context.Context, tokenID int, volume decimal.Decimal) error
}

type HoldingRepo interface {
	FindByUserAndToken(ctx context.Context, userID, tokenID int) (*domain.TokenHolding, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.TokenHolding, error)
	ApplyPurchase(ctx context.Context, userID, tokenID int, quantity, price, invested decimal.Decimal) (*domain.TokenHolding, error)
	ApplySale(ctx context.Context, userID, tokenID int, quantity decimal.Decimal) (*domain.TokenHolding, error)
	RecordTrade(ctx context.Context, trade *domain.TokenTrade) (*domain.TokenTrade, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notifier.Event) error
}

var (
	ErrTokenNotFound        = errors.New("token not found")
	ErrTokenInactive        = errors.New("token is not open for trading")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrAmountBelowUnitPrice = errors.New("amount is below the price of one token unit")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientTokens   = errors.New("insufficient token quantity")
)

// quantityPrecision bounds the decimal division for fractional token
// quantities. Whole-kobo trades at realistic prices divide exactly well
// within it.
const quantityPrecision = 18

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	tokenRepo       TokenRepo
	holdingRepo     HoldingRepo
	txManager       pg.TXManager
	notifier        Notifier
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, tokenRepo TokenRepo, holdingRepo HoldingRepo, txManager pg.TXManager, n Notifier) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		tokenRepo:       tokenRepo,
		holdingRepo:     holdingRepo,
		txManager:       txManager,
		notifier:        n,
	}
}

// Receipt is the immutable summary of one settled trade returned to the
// caller. Amounts are kobo; Quantity and NewTokenBalance are token
// units.
type Receipt struct {
	TradeID          int
	Side             string
	Amount           int64
	Quantity         decimal.Decimal
	Price            int64
	NewTokenBalance  decimal.Decimal
	NewWalletBalance int64
	Reference        string
}

// Buy spends nairaAmount of wallet balance on tokens at the current
// unit price. The debit, the holding upsert, the receipt and the token
// stats all commit as one unit.
func (s *Service) Buy(ctx context.Context, userID int, symbol string, nairaAmount decimal.Decimal) (*Receipt, error) {
	token, err := s.tokenRepo.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}
	if !token.Active {
		return nil, ErrTokenInactive
	}

	amount := money.ToMinorUnits(nairaAmount)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < token.Price {
		return nil, ErrAmountBelowUnitPrice
	}

	quantity := decimal.NewFromInt(amount).DivRound(decimal.NewFromInt(token.Price), quantityPrecision)

	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	reference := "BUY-" + uuid.NewString()
	var (
		holding *domain.TokenHolding
		trade   *domain.TokenTrade
		updated *domain.Wallet
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.walletRepo.Debit(ctx, wallet.ID, amount)
		if err != nil {
			return err
		}
		if _, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			WalletID:    wallet.ID,
			Type:        domain.TransactionTypeDebit,
			Amount:      amount,
			Description: fmt.Sprintf("Purchase of %s %s tokens", quantity.String(), token.Symbol),
			Reference:   reference,
			Status:      domain.TransactionStatusCompleted,
		}); err != nil {
			return err
		}
		holding, err = s.holdingRepo.ApplyPurchase(ctx, userID, token.ID, quantity, decimal.NewFromInt(token.Price), nairaAmount)
		if err != nil {
			return err
		}
		trade, err = s.holdingRepo.RecordTrade(ctx, &domain.TokenTrade{
			UserID:    userID,
			TokenID:   token.ID,
			Side:      domain.TradeSideBuy,
			Amount:    amount,
			Quantity:  quantity,
			Price:     token.Price,
			Reference: reference,
		})
		if err != nil {
			return err
		}
		return s.tokenRepo.ApplyTradeStats(ctx, token.ID, nairaAmount)
	})
	if errors.Is(err, walletrepo.ErrInsufficientFunds) {
		return nil, ErrInsufficientFunds
	}
	if err != nil {
		zap.L().Error("buy failed", zap.String("symbol", symbol), zap.Error(err))
		return nil, err
	}

	zap.L().Info("buy settled",
		zap.Int("userID", userID),
		zap.String("symbol", symbol),
		zap.String("quantity", quantity.String()),
		zap.Int64("amount", amount),
	)
	s.notify(ctx, notifier.Event{
		Type:    notifier.TypeTradeSettled,
		UserID:  userID,
		Title:   "Purchase settled",
		Message: fmt.Sprintf("You bought %s %s for ₦%s", quantity.String(), token.Symbol, nairaAmount.StringFixed(2)),
		Amount:  nairaAmount,
	})

	return &Receipt{
		TradeID:          trade.ID,
		Side:             domain.TradeSideBuy,
		Amount:           amount,
		Quantity:         quantity,
		Price:            token.Price,
		NewTokenBalance:  holding.Quantity,
		NewWalletBalance: updated.Balance,
		Reference:        reference,
	}, nil
}

// Sell liquidates quantity tokens at the current unit price. The
// average price of the remaining holding is untouched; only quantity
// and the proportional share of total invested go down.
func (s *Service) Sell(ctx context.Context, userID int, symbol string, quantity decimal.Decimal) (*Receipt, error) {
	if !quantity.IsPositive() {
		return nil, ErrInvalidAmount
	}

	token, err := s.tokenRepo.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}

	holding, err := s.holdingRepo.FindByUserAndToken(ctx, userID, token.ID)
	if err != nil {
		return nil, err
	}
	if holding == nil || holding.Quantity.LessThan(quantity) {
		return nil, ErrInsufficientTokens
	}

	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	amount := quantity.Mul(decimal.NewFromInt(token.Price)).Round(0).IntPart()
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	nairaAmount := money.ToMajorUnits(amount)

	reference := "SELL-" + uuid.NewString()
	var (
		updatedHolding *domain.TokenHolding
		trade          *domain.TokenTrade
		updated        *domain.Wallet
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.walletRepo.Credit(ctx, wallet.ID, amount)
		if err != nil {
			return err
		}
		if _, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			WalletID:    wallet.ID,
			Type:        domain.TransactionTypeCredit,
			Amount:      amount,
			Description: fmt.Sprintf("Sale of %s %s tokens", quantity.String(), token.Symbol),
			Reference:   reference,
			Status:      domain.TransactionStatusCompleted,
		}); err != nil {
			return err
		}
		updatedHolding, err = s.holdingRepo.ApplySale(ctx, userID, token.ID, quantity)
		if err != nil {
			return err
		}
		trade, err = s.holdingRepo.RecordTrade(ctx, &domain.TokenTrade{
			UserID:    userID,
			TokenID:   token.ID,
			Side:      domain.TradeSideSell,
			Amount:    amount,
			Quantity:  quantity,
			Price:     token.Price,
			Reference: reference,
		})
		if err != nil {
			return err
		}
		return s.tokenRepo.ApplyTradeStats(ctx, token.ID, nairaAmount)
	})
	if errors.Is(err, holdingrepo.ErrInsufficientTokens) {
		return nil, ErrInsufficientTokens
	}
	if err != nil {
		zap.L().Error("sell failed", zap.String("symbol", symbol), zap.Error(err))
		return nil, err
	}

	zap.L().Info("sell settled",
		zap.Int("userID", userID),
		zap.String("symbol", symbol),
		zap.String("quantity", quantity.String()),
		zap.Int64("amount", amount),
	)
	s.notify(ctx, notifier.Event{
		Type:    notifier.TypeTradeSettled,
		UserID:  userID,
		Title:   "Sale settled",
		Message: fmt.Sprintf("You sold %s %s for ₦%s", quantity.String(), token.Symbol, nairaAmount.StringFixed(2)),
		Amount:  nairaAmount,
	})

	return &Receipt{
		TradeID:          trade.ID,
		Side:             domain.TradeSideSell,
		Amount:           amount,
		Quantity:         quantity,
		Price:            token.Price,
		NewTokenBalance:  updatedHolding.Quantity,
		NewWalletBalance: updated.Balance,
		Reference:        reference,
	}, nil
}

// Holding pairs a user's position with the token it is in.
type Holding struct {
	Token   domain.Token
	Holding domain.TokenHolding
}

func (s *Service) GetHoldings(ctx context.Context, userID int) ([]Holding, error) {
	holdings, err := s.holdingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, nil
	}

	tokens, err := s.tokenRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.Token, len(tokens))
	for _, t := range tokens {
		byID[t.ID] = t
	}

	result := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		result = append(result, Holding{
			Token:   byID[h.TokenID],
			Holding: h,
		})
	}
	return result, nil
}

func (s *Service) ListTokens(ctx context.Context) ([]domain.Token, error) {
	return s.tokenRepo.List(ctx)
}

func (s *Service) GetToken(ctx context.Context, symbol string) (*domain.Token, error) {
	token, err := s.tokenRepo.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}
	return token, nil
}

func (s *Service) notify(ctx context.Context, event notifier.Event) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		zap.L().Error("failed to deliver event", zap.String("type", event.Type), zap.Error(err))
	}
}
