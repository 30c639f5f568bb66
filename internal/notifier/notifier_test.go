package notifier

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/adesinaj/kobovest/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New("http://localhost:8082", httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestNotify(t *testing.T) {
	event := Event{
		Type:    TypeWalletDeposit,
		UserID:  1,
		Title:   "Wallet funded",
		Message: "Your wallet was credited with ₦5000.00",
		Amount:  decimal.RequireFromString("5000.00"),
	}

	t.Run("Event delivered", func(t *testing.T) {
		client, httpClient := NewMock(t)
		httpClient.EXPECT().
			Post("http://localhost:8082/api/notifications", nil, gomock.Any()).
			Return(http.StatusAccepted, nil, nil)

		assert.NoError(t, client.Notify(context.Background(), event))
	})

	t.Run("Transport failure", func(t *testing.T) {
		client, httpClient := NewMock(t)
		httpClient.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, nil, errors.New("connection refused"))

		assert.Error(t, client.Notify(context.Background(), event))
	})

	t.Run("Service error status", func(t *testing.T) {
		client, httpClient := NewMock(t)
		httpClient.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusInternalServerError, nil, nil)

		assert.Error(t, client.Notify(context.Background(), event))
	})

	t.Run("Cancelled context", func(t *testing.T) {
		client, _ := NewMock(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, client.Notify(ctx, event), context.Canceled)
	})
}
