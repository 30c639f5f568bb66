// Package gateway wraps the external payment provider: dedicated
// receiving accounts per user and outbound disbursements. Amounts cross
// this boundary in Naira; the ledger core converts to kobo.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adesinaj/kobovest/internal/config"
	"github.com/adesinaj/kobovest/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DisbursementStatusSuccess = "SUCCESS"
	DisbursementStatusPending = "PENDING"
	DisbursementStatusFailed  = "FAILED"
)

type CreateAccountRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Reference string `json:"accountReference"`
}

type ReceivingAccount struct {
	AccountNumber    string `json:"accountNumber"`
	BankName         string `json:"bankName"`
	AccountName      string `json:"accountName"`
	AccountReference string `json:"accountReference"`
}

type DisbursementRequest struct {
	AccountNumber string          `json:"destinationAccountNumber"`
	AccountName   string          `json:"destinationAccountName"`
	BankCode      string          `json:"destinationBankCode"`
	Amount        decimal.Decimal `json:"amount"`
	Narration     string          `json:"narration"`
	Reference     string          `json:"reference"`
}

type DisbursementResult struct {
	TransactionReference string `json:"transactionReference"`
	Status               string `json:"status"`
}

type DisbursementStatus struct {
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		apiKey: cfg.GatewayAPIKey,
		client: client,
	}
}

func (c *Client) CreateReceivingAccount(ctx context.Context, req CreateAccountRequest) (*ReceivingAccount, error) {
	var account ReceivingAccount
	if err := c.post(ctx, "/api/v1/reserved-accounts", req, &account); err != nil {
		return nil, fmt.Errorf("can't create receiving account: %w", err)
	}
	zap.L().Info("receiving account created", zap.String("accountNumber", account.AccountNumber))
	return &account, nil
}

func (c *Client) InitiateDisbursement(ctx context.Context, req DisbursementRequest) (*DisbursementResult, error) {
	var result DisbursementResult
	if err := c.post(ctx, "/api/v1/disbursements", req, &result); err != nil {
		return nil, fmt.Errorf("can't initiate disbursement: %w", err)
	}
	zap.L().Info("disbursement initiated",
		zap.String("reference", req.Reference),
		zap.String("transactionReference", result.TransactionReference),
	)
	return &result, nil
}

func (c *Client) GetDisbursementStatus(ctx context.Context, transactionReference string) (*DisbursementStatus, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	url := c.url + "/api/v1/disbursements/" + transactionReference
	statusCode, respBody, _, err := c.client.Get(url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("can't get disbursement status: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", statusCode)
	}

	var status DisbursementStatus
	if err := json.Unmarshal(respBody, &status); err != nil {
		return nil, fmt.Errorf("can't parse disbursement status: %w", err)
	}
	return &status, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal request: %w", err)
	}

	statusCode, respBody, err := c.client.Post(c.url+path, c.headers(), body)
	if err != nil {
		return err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return fmt.Errorf("gateway returned status %d", statusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("can't parse response: %w", err)
	}
	return nil
}

func (c *Client) headers() http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)
	return headers
}
