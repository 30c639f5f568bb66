package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Gateway webhook event types.
const (
	EventSuccessfulTransaction  = "SUCCESSFUL_TRANSACTION"
	EventSuccessfulDisbursement = "SUCCESSFUL_DISBURSEMENT"
	EventFailedDisbursement     = "FAILED_DISBURSEMENT"
	EventReversedDisbursement   = "REVERSED_DISBURSEMENT"
)

// WebhookEnvelopeDTO is the outer shape of every gateway event. EventData
// stays raw until the event type picks the payload to decode into.
type WebhookEnvelopeDTO struct {
	EventType string          `json:"eventType"`
	EventData json.RawMessage `json:"eventData"`
}

// CollectionEventDTO carries an inbound payment. AmountPaid is in major
// units (Naira) on the wire.
type CollectionEventDTO struct {
	TransactionReference string          `json:"transactionReference"`
	PaymentReference     string          `json:"paymentReference"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	DestinationAccount   struct {
		AccountNumber string `json:"accountNumber"`
	} `json:"destinationAccountInformation"`
}

// DisbursementEventDTO carries the outcome of an outbound disbursement.
type DisbursementEventDTO struct {
	Reference            string          `json:"reference"`
	TransactionReference string          `json:"transactionReference"`
	Status               string          `json:"status"`
	Amount               decimal.Decimal `json:"amount"`
}
