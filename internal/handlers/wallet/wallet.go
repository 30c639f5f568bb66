package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/dto"
	walletservice "github.com/adesinaj/kobovest/internal/service/walletservice"
	"github.com/adesinaj/kobovest/pkg/auth"
	"github.com/adesinaj/kobovest/pkg/money"
	"github.com/adesinaj/kobovest/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	Withdraw(ctx context.Context, userID int, req walletservice.WithdrawRequest) (*domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
	validate      *validator.Validate
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		validate:      validator.New(),
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve the wallet balance and the dedicated receiving account details for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balance and receiving account"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		AccountNumber: wallet.AccountNumber,
		BankName:      wallet.BankName,
		AccountName:   wallet.AccountName,
		Balance:       wallet.Balance,
		BalanceNaira:  money.ToMajorUnits(wallet.Balance).StringFixed(2),
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transaction history
//	@Description	Get the ledger entries for the authenticated user's wallet, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, txn := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Type:        txn.Type,
			Status:      txn.Status,
			Amount:      txn.Amount,
			AmountNaira: money.ToMajorUnits(txn.Amount).StringFixed(2),
			Description: txn.Description,
			Reference:   txn.Reference,
			CreatedAt:   txn.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Withdraw wallet funds
//	@Description	Debit the wallet and initiate a disbursement to the given bank account. The debit stays pending until the gateway confirms.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawResponseDTO	"Pending withdrawal"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		422		{object}	utils.Response			"Invalid account number or amount"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := decimal.NewFromString(req.NairaAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		return
	}

	txn, err := h.walletService.Withdraw(r.Context(), userID, walletservice.WithdrawRequest{
		Amount:        amount,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		BankCode:      req.BankCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrInvalidAccount), errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		Reference:   txn.Reference,
		Status:      txn.Status,
		Amount:      txn.Amount,
		AmountNaira: money.ToMajorUnits(txn.Amount).StringFixed(2),
	})
}
