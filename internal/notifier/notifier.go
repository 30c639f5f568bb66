// Package notifier is the client side of the notification collaborator.
// The ledger only emits events; rendering and delivery belong to the
// notification service.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adesinaj/kobovest/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	TypeWalletDeposit    = "wallet.deposited"
	TypeTradeSettled     = "trade.settled"
	TypeWithdrawalStatus = "withdrawal.status"
	TypePriceAlert       = "price.alert"
)

type Event struct {
	Type    string          `json:"type"`
	UserID  int             `json:"user_id"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount,omitempty"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

// Notify delivers one event. Failures are reported to the caller but
// must never fail a settlement; callers log and move on.
func (c *Client) Notify(ctx context.Context, event Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("can't marshal event: %w", err)
	}

	statusCode, _, err := c.client.Post(c.url+"/api/notifications", nil, body)
	if err != nil {
		return fmt.Errorf("can't deliver event: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		return fmt.Errorf("notification service returned status %d", statusCode)
	}

	zap.L().Debug("event delivered", zap.String("type", event.Type), zap.Int("userID", event.UserID))
	return nil
}
