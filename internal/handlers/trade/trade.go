package trade

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adesinaj/kobovest/internal/dto"
	tradeservice "github.com/adesinaj/kobovest/internal/service/tradeservice"
	"github.com/adesinaj/kobovest/pkg/auth"
	"github.com/adesinaj/kobovest/pkg/money"
	"github.com/adesinaj/kobovest/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Service interface {
	Buy(ctx context.Context, userID int, symbol string, nairaAmount decimal.Decimal) (*tradeservice.Receipt, error)
	Sell(ctx context.Context, userID int, symbol string, quantity decimal.Decimal) (*tradeservice.Receipt, error)
	GetHoldings(ctx context.Context, userID int) ([]tradeservice.Holding, error)
}

type TradeHandler struct {
	tradeService Service
	validate     *validator.Validate
}

func New(tradeService Service) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
		validate:     validator.New(),
	}
}

// Buy godoc
//
//	@Summary		Buy tokens
//	@Description	Spend wallet balance on fractional token units at the current unit price. The debit and the holding update settle atomically.
//	@Tags			Trade
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BuyRequestDTO	true	"Buy request payload"
//	@Success		200		{object}	dto.BuyResponseDTO	"Purchase receipt"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		402		{object}	utils.Response		"Insufficient funds"
//	@Failure		404		{object}	utils.Response		"Token not found"
//	@Failure		422		{object}	utils.Response		"Invalid amount or token not tradable"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/trade/buy [post]
func (h *TradeHandler) Buy(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BuyRequestDTO
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

	receipt, err := h.tradeService.Buy(r.Context(), userID, req.TokenSymbol, amount)
	if err != nil {
		respondTradeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuyResponseDTO{
		PurchaseID:       receipt.TradeID,
		NairaAmountSpent: money.ToMajorUnits(receipt.Amount).StringFixed(2),
		TokensReceived:   receipt.Quantity.String(),
		PricePerToken:    money.ToMajorUnits(receipt.Price).StringFixed(2),
		NewTokenBalance:  receipt.NewTokenBalance.String(),
		NewWalletBalance: money.ToMajorUnits(receipt.NewWalletBalance).StringFixed(2),
		Reference:        receipt.Reference,
	})
}

// Sell godoc
//
//	@Summary		Sell tokens
//	@Description	Sell token units from the user's holding at the current unit price; proceeds are credited to the wallet atomically.
//	@Tags			Trade
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SellRequestDTO	true	"Sell request payload"
//	@Success		200		{object}	dto.SellResponseDTO	"Sale receipt"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		404		{object}	utils.Response		"Token not found"
//	@Failure		422		{object}	utils.Response		"Invalid quantity or insufficient tokens"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/trade/sell [post]
func (h *TradeHandler) Sell(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SellRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	quantity, err := decimal.NewFromString(req.TokensToSell)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid quantity")
		return
	}

	receipt, err := h.tradeService.Sell(r.Context(), userID, req.TokenSymbol, quantity)
	if err != nil {
		respondTradeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SellResponseDTO{
		SaleID:           receipt.TradeID,
		TokensSold:       receipt.Quantity.String(),
		NairaReceived:    money.ToMajorUnits(receipt.Amount).StringFixed(2),
		PricePerToken:    money.ToMajorUnits(receipt.Price).StringFixed(2),
		NewTokenBalance:  receipt.NewTokenBalance.String(),
		NewWalletBalance: money.ToMajorUnits(receipt.NewWalletBalance).StringFixed(2),
		Reference:        receipt.Reference,
	})
}

// GetHoldings godoc
//
//	@Summary		Get token holdings
//	@Description	Get all token positions of the authenticated user with their weighted-average cost basis and current value.
//	@Tags			Trade
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.HoldingResponseDTO	"Token holdings"
//	@Success		204	{object}	utils.Response			"No holdings"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/holdings [get]
func (h *TradeHandler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	holdings, err := h.tradeService.GetHoldings(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch holdings")
		return
	}
	if len(holdings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No holdings")
		return
	}

	response := make([]dto.HoldingResponseDTO, len(holdings))
	for i, holding := range holdings {
		priceNaira := money.ToMajorUnits(holding.Token.Price)
		response[i] = dto.HoldingResponseDTO{
			TokenSymbol:      holding.Token.Symbol,
			TokenName:        holding.Token.Name,
			Quantity:         holding.Holding.Quantity.String(),
			AveragePrice:     money.DecimalToMajorUnits(holding.Holding.AveragePrice).StringFixed(2),
			TotalInvested:    holding.Holding.TotalInvested.StringFixed(2),
			AccumulatedYield: holding.Holding.AccumulatedYield.String(),
			CurrentValue:     holding.Holding.Quantity.Mul(priceNaira).StringFixed(2),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondTradeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tradeservice.ErrTokenNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tradeservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, tradeservice.ErrTokenInactive),
		errors.Is(err, tradeservice.ErrInvalidAmount),
		errors.Is(err, tradeservice.ErrAmountBelowUnitPrice),
		errors.Is(err, tradeservice.ErrInsufficientTokens):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, tradeservice.ErrWalletNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
