// Package webhook ingests payment gateway event notifications. Events
// are authenticated with an HMAC-SHA512 signature over the raw body,
// then routed into the wallet settlement engine. Business-level
// rejections are acknowledged with 200 so the gateway does not retry
// unprocessable events; only store failures produce a retryable 5xx.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/adesinaj/kobovest/internal/config"
	"github.com/adesinaj/kobovest/internal/dto"
	walletservice "github.com/adesinaj/kobovest/internal/service/walletservice"
	"github.com/adesinaj/kobovest/pkg/signature"
	"github.com/adesinaj/kobovest/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SignatureHeader carries the hex HMAC-SHA512 of the exact body bytes.
const SignatureHeader = "X-Gateway-Signature"

type Service interface {
	CreditFromCollection(ctx context.Context, accountNumber string, amountNaira decimal.Decimal, reference, externalRef string) (*walletservice.Result, error)
	CompleteDisbursement(ctx context.Context, reference, externalRef string) (*walletservice.Result, error)
	FailDisbursement(ctx context.Context, reference, externalRef string) (*walletservice.Result, error)
}

type WebhookHandler struct {
	walletService Service
	secret        string
	strictAuth    bool
}

func New(walletService Service, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{
		walletService: walletService,
		secret:        cfg.WebhookSecret,
		strictAuth:    cfg.IsProduction(),
	}
}

// HandleGatewayEvent godoc
//
//	@Summary		Ingest a payment gateway event
//	@Description	Verify the HMAC-SHA512 signature of a gateway webhook and settle the event. Duplicate deliveries and business rejections are acknowledged with 200.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Gateway-Signature	header		string					true	"Hex HMAC-SHA512 of the raw body"
//	@Param			request				body		dto.WebhookEnvelopeDTO	true	"Gateway event envelope"
//	@Success		200					{object}	utils.Response			"Event acknowledged"
//	@Failure		400					{object}	utils.Response			"Malformed event"
//	@Failure		401					{object}	utils.Response			"Signature missing or invalid"
//	@Failure		500					{object}	utils.Response			"Store failure, safe to retry"
//	@Router			/api/webhooks/gateway [post]
func (h *WebhookHandler) HandleGatewayEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "can't read request body")
		return
	}

	if !h.authenticate(w, r, body) {
		return
	}

	var envelope dto.WebhookEnvelopeDTO
	if err := json.Unmarshal(body, &envelope); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed event envelope")
		return
	}

	switch envelope.EventType {
	case dto.EventSuccessfulTransaction:
		h.handleCollection(w, r, envelope.EventData)
	case dto.EventSuccessfulDisbursement:
		h.handleDisbursement(w, r, envelope.EventData, h.walletService.CompleteDisbursement)
	case dto.EventFailedDisbursement, dto.EventReversedDisbursement:
		h.handleDisbursement(w, r, envelope.EventData, h.walletService.FailDisbursement)
	default:
		zap.L().Info("ignoring unknown gateway event", zap.String("eventType", envelope.EventType))
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Event ignored"})
	}
}

// authenticate fails closed on a bad signature. A missing signature is
// tolerated, with a warning, everywhere except production.
func (h *WebhookHandler) authenticate(w http.ResponseWriter, r *http.Request, body []byte) bool {
	sig := r.Header.Get(SignatureHeader)
	if sig == "" {
		if h.strictAuth {
			zap.L().Warn("rejecting unsigned gateway event")
			utils.RespondWithError(w, http.StatusUnauthorized, "missing signature")
			return false
		}
		zap.L().Warn("accepting unsigned gateway event outside production")
		return true
	}
	if !signature.Verify([]byte(h.secret), body, sig) {
		zap.L().Warn("gateway event signature mismatch")
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid signature")
		return false
	}
	return true
}

func (h *WebhookHandler) handleCollection(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	var event dto.CollectionEventDTO
	if err := json.Unmarshal(data, &event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed collection event")
		return
	}

	res, err := h.walletService.CreditFromCollection(
		r.Context(),
		event.DestinationAccount.AccountNumber,
		event.AmountPaid,
		event.TransactionReference,
		event.PaymentReference,
	)
	h.acknowledge(w, "collection", event.TransactionReference, res, err)
}

func (h *WebhookHandler) handleDisbursement(w http.ResponseWriter, r *http.Request, data json.RawMessage, settle func(ctx context.Context, reference, externalRef string) (*walletservice.Result, error)) {
	var event dto.DisbursementEventDTO
	if err := json.Unmarshal(data, &event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed disbursement event")
		return
	}

	res, err := settle(r.Context(), event.Reference, event.TransactionReference)
	h.acknowledge(w, "disbursement", event.Reference, res, err)
}

// acknowledge maps settlement outcomes to gateway responses. Business
// rejections are final, retrying them cannot succeed, so they are
// acknowledged; only store failures ask the gateway to redeliver.
func (h *WebhookHandler) acknowledge(w http.ResponseWriter, kind, reference string, res *walletservice.Result, err error) {
	if err != nil {
		if isBusinessError(err) {
			zap.L().Warn("gateway event rejected",
				zap.String("kind", kind),
				zap.String("reference", reference),
				zap.Error(err),
			)
			utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Event acknowledged"})
			return
		}
		zap.L().Error("gateway event settlement failed",
			zap.String("kind", kind),
			zap.String("reference", reference),
			zap.Error(err),
		)
		utils.RespondWithError(w, http.StatusInternalServerError, "settlement failed")
		return
	}

	zap.L().Info("gateway event settled",
		zap.String("kind", kind),
		zap.String("reference", reference),
		zap.String("outcome", string(res.Outcome)),
	)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Event processed"})
}

func isBusinessError(err error) bool {
	return errors.Is(err, walletservice.ErrWalletNotFound) ||
		errors.Is(err, walletservice.ErrTransactionNotFound) ||
		errors.Is(err, walletservice.ErrInvalidAmount)
}
