package token

import (
	"context"
	"errors"
	"net/http"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/dto"
	tradeservice "github.com/adesinaj/kobovest/internal/service/tradeservice"
	"github.com/adesinaj/kobovest/pkg/money"
	"github.com/adesinaj/kobovest/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ListTokens(ctx context.Context) ([]domain.Token, error)
	GetToken(ctx context.Context, symbol string) (*domain.Token, error)
}

type TokenHandler struct {
	tokenService Service
}

func New(tokenService Service) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
	}
}

// ListTokens godoc
//
//	@Summary		List tokens
//	@Description	List all tokens with their current unit price and trade stats.
//	@Tags			Tokens
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TokenResponseDTO	"Tokens"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/tokens [get]
func (h *TokenHandler) ListTokens(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.tokenService.ListTokens(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tokens")
		return
	}

	response := make([]dto.TokenResponseDTO, len(tokens))
	for i, t := range tokens {
		response[i] = toTokenDTO(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetToken godoc
//
//	@Summary		Get a token by symbol
//	@Description	Get one token with its current unit price and trade stats.
//	@Tags			Tokens
//	@Security		BearerAuth
//	@Produce		json
//	@Param			symbol	path		string					true	"Token symbol"
//	@Success		200		{object}	dto.TokenResponseDTO	"Token"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Token not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/tokens/{symbol} [get]
func (h *TokenHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	token, err := h.tokenService.GetToken(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, tradeservice.ErrTokenNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Token not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTokenDTO(*token))
}

func toTokenDTO(t domain.Token) dto.TokenResponseDTO {
	return dto.TokenResponseDTO{
		Symbol:      t.Symbol,
		Name:        t.Name,
		Price:       t.Price,
		PriceNaira:  money.ToMajorUnits(t.Price).StringFixed(2),
		Active:      t.Active,
		Volume:      t.Volume.String(),
		TradesCount: int(t.TransactionCount),
	}
}
