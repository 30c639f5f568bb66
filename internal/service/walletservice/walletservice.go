// Package walletservice is the wallet settlement engine: idempotent
// credits and debits against the ledger, withdrawal disbursement and
// its compensation on failure. All amounts are kobo unless a name says
// otherwise.
package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/gateway"
	"github.com/adesinaj/kobovest/internal/notifier"
	"github.com/adesinaj/kobovest/internal/pg"
	transactionrepo "github.com/adesinaj/kobovest/internal/repo/transaction-repo"
	walletrepo "github.com/adesinaj/kobovest/internal/repo/wallet-repo"
	"github.com/adesinaj/kobovest/pkg/money"
	"github.com/adesinaj/kobovest/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletRepo interface {
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	FindByID(ctx context.Context, walletID int) (*domain.Wallet, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID int, amount int64) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID int, amount int64) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	FindByExternalRef(ctx context.Context, externalRef string) (*domain.Transaction, error)
	FindByWalletID(ctx context.Context, walletID int) ([]domain.Transaction, error)
	MarkCompleted(ctx context.Context, id int) error
	MarkFailed(ctx context.Context, id int) error
	SetExternalRef(ctx context.Context, id int, externalRef string) error
}

type Gateway interface {
	CreateReceivingAccount(ctx context.Context, req gateway.CreateAccountRequest) (*gateway.ReceivingAccount, error)
	InitiateDisbursement(ctx context.Context, req gateway.DisbursementRequest) (*gateway.DisbursementResult, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notifier.Event) error
}

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAccount      = errors.New("invalid destination account number")
)

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	gateway         Gateway
	notifier        Notifier
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, txManager pg.TXManager, gw Gateway, n Notifier) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		gateway:         gw,
		notifier:        n,
	}
}

// CreateWallet issues a dedicated receiving account through the gateway
// and creates the wallet. Idempotent: an existing wallet is returned
// as-is, so repeated first-login calls are safe.
func (s *Service) CreateWallet(ctx context.Context, user *domain.User) (*domain.Wallet, error) {
	existing, err := s.walletRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	account, err := s.gateway.CreateReceivingAccount(ctx, gateway.CreateAccountRequest{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Reference: "WAL-" + uuid.NewString(),
	})
	if err != nil {
		zap.L().Error("can't create receiving account", zap.Error(err))
		return nil, err
	}

	wallet, err := s.walletRepo.Create(ctx, &domain.Wallet{
		UserID:        user.ID,
		AccountNumber: account.AccountNumber,
		BankName:      account.BankName,
		AccountName:   account.AccountName,
		AccountRef:    account.AccountReference,
	})
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}

	zap.L().Info("wallet created", zap.Int("userID", user.ID), zap.String("accountNumber", wallet.AccountNumber))
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.transactionRepo.FindByWalletID(ctx, wallet.ID)
}

// Credit applies an idempotent credit. The transaction insert and the
// balance increment commit as one unit; a reference collision at any
// point resolves to a Duplicate outcome, never a double apply.
func (s *Service) Credit(ctx context.Context, walletID int, amount int64, description, reference, externalRef string) (*Result, error) {
	if amount <= 0 {
		return rejected(ErrInvalidAmount), nil
	}

	existing, err := s.transactionRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("duplicate credit ignored", zap.String("reference", reference))
		return duplicate(existing), nil
	}

	var (
		txn    *domain.Transaction
		wallet *domain.Wallet
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			WalletID:    walletID,
			Type:        domain.TransactionTypeCredit,
			Amount:      amount,
			Description: description,
			Reference:   reference,
			ExternalRef: nullable(externalRef),
			Status:      domain.TransactionStatusCompleted,
		})
		if err != nil {
			return err
		}
		wallet, err = s.walletRepo.Credit(ctx, walletID, amount)
		return err
	})
	if errors.Is(err, transactionrepo.ErrDuplicateReference) {
		// Lost the insert race to a concurrent delivery of the same event.
		winner, ferr := s.transactionRepo.FindByReference(ctx, reference)
		if ferr != nil {
			return nil, ferr
		}
		zap.L().Info("concurrent duplicate credit ignored", zap.String("reference", reference))
		return duplicate(winner), nil
	}
	if errors.Is(err, walletrepo.ErrWalletNotFound) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		zap.L().Error("credit failed", zap.String("reference", reference), zap.Error(err))
		return nil, err
	}

	zap.L().Info("wallet credited",
		zap.Int("walletID", walletID),
		zap.Int64("amount", amount),
		zap.String("reference", reference),
	)
	return applied(txn, wallet.Balance), nil
}

// Debit is the mirror of Credit; the balance check and decrement are
// one atomic statement, so the balance can never go negative.
func (s *Service) Debit(ctx context.Context, walletID int, amount int64, description, reference, status string) (*Result, error) {
	if amount <= 0 {
		return rejected(ErrInvalidAmount), nil
	}

	existing, err := s.transactionRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("duplicate debit ignored", zap.String("reference", reference))
		return duplicate(existing), nil
	}

	var (
		txn    *domain.Transaction
		wallet *domain.Wallet
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			WalletID:    walletID,
			Type:        domain.TransactionTypeDebit,
			Amount:      amount,
			Description: description,
			Reference:   reference,
			Status:      status,
		})
		if err != nil {
			return err
		}
		wallet, err = s.walletRepo.Debit(ctx, walletID, amount)
		return err
	})
	switch {
	case errors.Is(err, transactionrepo.ErrDuplicateReference):
		winner, ferr := s.transactionRepo.FindByReference(ctx, reference)
		if ferr != nil {
			return nil, ferr
		}
		return duplicate(winner), nil
	case errors.Is(err, walletrepo.ErrInsufficientFunds):
		zap.L().Info("debit rejected: insufficient funds",
			zap.Int("walletID", walletID),
			zap.Int64("amount", amount),
		)
		return rejected(ErrInsufficientFunds), nil
	case errors.Is(err, walletrepo.ErrWalletNotFound):
		return nil, ErrWalletNotFound
	case err != nil:
		zap.L().Error("debit failed", zap.String("reference", reference), zap.Error(err))
		return nil, err
	}

	zap.L().Info("wallet debited",
		zap.Int("walletID", walletID),
		zap.Int64("amount", amount),
		zap.String("reference", reference),
	)
	return applied(txn, wallet.Balance), nil
}

// CreditFromCollection settles an inbound payment notification: the
// wallet is resolved by the receiving account number and the gateway's
// transaction reference is the idempotency key.
func (s *Service) CreditFromCollection(ctx context.Context, accountNumber string, amountNaira decimal.Decimal, reference, externalRef string) (*Result, error) {
	wallet, err := s.walletRepo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		zap.L().Warn("collection for unknown account", zap.String("accountNumber", accountNumber))
		return nil, ErrWalletNotFound
	}

	amount := money.ToMinorUnits(amountNaira)
	res, err := s.Credit(ctx, wallet.ID, amount, "Wallet deposit via bank transfer", reference, externalRef)
	if err != nil {
		return nil, err
	}

	if res.Outcome == OutcomeApplied {
		s.notify(ctx, notifier.Event{
			Type:    notifier.TypeWalletDeposit,
			UserID:  wallet.UserID,
			Title:   "Wallet funded",
			Message: fmt.Sprintf("Your wallet was credited with ₦%s", amountNaira.StringFixed(2)),
			Amount:  amountNaira,
		})
	}
	return res, nil
}

type WithdrawRequest struct {
	Amount        decimal.Decimal
	AccountNumber string
	AccountName   string
	BankCode      string
}

// Withdraw debits the wallet as a pending transaction, then asks the
// gateway to disburse. A gateway refusal compensates immediately; an
// accepted disbursement is finalized later by webhook.
func (s *Service) Withdraw(ctx context.Context, userID int, req WithdrawRequest) (*domain.Transaction, error) {
	if !validate.IsNUBAN(req.BankCode, req.AccountNumber) {
		return nil, ErrInvalidAccount
	}
	amount := money.ToMinorUnits(req.Amount)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	reference := "WD-" + uuid.NewString()
	res, err := s.Debit(ctx, wallet.ID, amount, "Withdrawal to "+req.AccountNumber, reference, domain.TransactionStatusPending)
	if err != nil {
		return nil, err
	}
	if res.Outcome == OutcomeRejected {
		return nil, res.Reason
	}

	disb, err := s.gateway.InitiateDisbursement(ctx, gateway.DisbursementRequest{
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		BankCode:      req.BankCode,
		Amount:        req.Amount,
		Narration:     "Kobovest withdrawal",
		Reference:     reference,
	})
	if err != nil {
		zap.L().Error("disbursement refused, compensating", zap.String("reference", reference), zap.Error(err))
		if _, rerr := s.refund(ctx, res.Transaction); rerr != nil {
			zap.L().Error("refund after refused disbursement failed", zap.String("reference", reference), zap.Error(rerr))
		}
		return nil, fmt.Errorf("can't initiate disbursement: %w", err)
	}

	if err := s.transactionRepo.SetExternalRef(ctx, res.Transaction.ID, disb.TransactionReference); err != nil {
		return nil, err
	}
	res.Transaction.ExternalRef = &disb.TransactionReference
	return res.Transaction, nil
}

// CompleteDisbursement finalizes a withdrawal after the gateway reports
// success. Replayed events resolve to Duplicate.
func (s *Service) CompleteDisbursement(ctx context.Context, reference, externalRef string) (*Result, error) {
	txn, err := s.findDisbursement(ctx, reference, externalRef)
	if err != nil {
		return nil, err
	}

	err = s.transactionRepo.MarkCompleted(ctx, txn.ID)
	if errors.Is(err, transactionrepo.ErrAlreadyProcessed) {
		return duplicate(txn), nil
	}
	if err != nil {
		return nil, err
	}

	s.notify(ctx, notifier.Event{
		Type:    notifier.TypeWithdrawalStatus,
		UserID:  s.ownerOf(ctx, txn),
		Title:   "Withdrawal completed",
		Message: fmt.Sprintf("Your withdrawal of ₦%s was completed", money.ToMajorUnits(txn.Amount).StringFixed(2)),
		Amount:  money.ToMajorUnits(txn.Amount),
	})
	txn.Status = domain.TransactionStatusCompleted
	return applied(txn, 0), nil
}

// FailDisbursement compensates a failed or reversed withdrawal: the
// original debit is marked failed and the amount returns to the wallet
// as a new credit with a deterministic refund reference. A reversal
// arriving after the disbursement completed still refunds; only an
// already failed withdrawal resolves to Duplicate. The whole step is
// one store transaction.
func (s *Service) FailDisbursement(ctx context.Context, reference, externalRef string) (*Result, error) {
	txn, err := s.findDisbursement(ctx, reference, externalRef)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.TransactionStatusFailed {
		return duplicate(txn), nil
	}

	res, err := s.refund(ctx, txn)
	if err != nil {
		return nil, err
	}

	if res.Outcome == OutcomeApplied {
		s.notify(ctx, notifier.Event{
			Type:    notifier.TypeWithdrawalStatus,
			UserID:  s.ownerOf(ctx, txn),
			Title:   "Withdrawal failed",
			Message: fmt.Sprintf("Your withdrawal of ₦%s failed and was refunded", money.ToMajorUnits(txn.Amount).StringFixed(2)),
			Amount:  money.ToMajorUnits(txn.Amount),
		})
	}
	return res, nil
}

// refund is the compensating step shared by webhook failures and
// gateway refusals: mark the debit failed, return the amount, insert
// the compensating credit. The refund reference derives from the
// original one, so retries collapse into duplicates instead of paying
// twice.
func (s *Service) refund(ctx context.Context, txn *domain.Transaction) (*Result, error) {
	var (
		refundTxn *domain.Transaction
		wallet    *domain.Wallet
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.MarkFailed(ctx, txn.ID); err != nil {
			return err
		}
		var err error
		wallet, err = s.walletRepo.Credit(ctx, txn.WalletID, txn.Amount)
		if err != nil {
			return err
		}
		refundTxn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			WalletID:    txn.WalletID,
			Type:        domain.TransactionTypeCredit,
			Amount:      txn.Amount,
			Description: "Refund for failed withdrawal " + txn.Reference,
			Reference:   "refund:" + txn.Reference,
			Status:      domain.TransactionStatusCompleted,
		})
		return err
	})
	if errors.Is(err, transactionrepo.ErrAlreadyProcessed) || errors.Is(err, transactionrepo.ErrDuplicateReference) {
		zap.L().Info("refund already applied", zap.String("reference", txn.Reference))
		return duplicate(txn), nil
	}
	if err != nil {
		zap.L().Error("refund failed", zap.String("reference", txn.Reference), zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal refunded",
		zap.String("reference", txn.Reference),
		zap.Int64("amount", txn.Amount),
	)
	return applied(refundTxn, wallet.Balance), nil
}

func (s *Service) findDisbursement(ctx context.Context, reference, externalRef string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if txn == nil && externalRef != "" {
		txn, err = s.transactionRepo.FindByExternalRef(ctx, externalRef)
		if err != nil {
			return nil, err
		}
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

func (s *Service) ownerOf(ctx context.Context, txn *domain.Transaction) int {
	wallet, err := s.walletRepo.FindByID(ctx, txn.WalletID)
	if err != nil || wallet == nil {
		zap.L().Error("can't resolve wallet owner", zap.Int("walletID", txn.WalletID), zap.Error(err))
		return 0
	}
	return wallet.UserID
}

func (s *Service) notify(ctx context.Context, event notifier.Event) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		zap.L().Error("failed to deliver event", zap.String("type", event.Type), zap.Error(err))
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
