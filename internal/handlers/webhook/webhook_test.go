package webhook

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adesinaj/kobovest/internal/config"
	walletservice "github.com/adesinaj/kobovest/internal/service/walletservice"
	"github.com/adesinaj/kobovest/pkg/signature"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const testSecret = "test-webhook-secret"

func NewMock(t *testing.T, environment string) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, &config.Config{Environment: environment, WebhookSecret: testSecret})
	defer ctrl.Finish()
	return handler, service
}

func signedRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/webhooks/gateway", bytes.NewBufferString(body))
	r.Header.Set(SignatureHeader, signature.Compute([]byte(testSecret), []byte(body)))
	return r
}

func applied() *walletservice.Result {
	return &walletservice.Result{Outcome: walletservice.OutcomeApplied}
}

func duplicate() *walletservice.Result {
	return &walletservice.Result{Outcome: walletservice.OutcomeDuplicate}
}

const collectionBody = `{
	"eventType": "SUCCESSFUL_TRANSACTION",
	"eventData": {
		"transactionReference": "TXN-1",
		"paymentReference": "PAY-1",
		"amountPaid": "5000.00",
		"destinationAccountInformation": {"accountNumber": "9977581502"}
	}
}`

func TestHandleGatewayEvent_Collection(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Signed collection settles the credit",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CreditFromCollection(gomock.Any(), "9977581502", decimal.RequireFromString("5000.00"), "TXN-1", "PAY-1").
					Return(applied(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Replayed delivery is acknowledged",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CreditFromCollection(gomock.Any(), "9977581502", decimal.RequireFromString("5000.00"), "TXN-1", "PAY-1").
					Return(duplicate(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown account is acknowledged so the gateway stops retrying",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CreditFromCollection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Store failure asks for redelivery",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CreditFromCollection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("store unavailable"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t, "production")
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.HandleGatewayEvent(w, signedRequest(collectionBody))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandleGatewayEvent_Disbursement(t *testing.T) {
	body := `{
		"eventType": "SUCCESSFUL_DISBURSEMENT",
		"eventData": {"reference": "WD-1", "transactionReference": "MFY-77", "status": "SUCCESS", "amount": "2500.00"}
	}`
	failedBody := `{
		"eventType": "FAILED_DISBURSEMENT",
		"eventData": {"reference": "WD-1", "transactionReference": "MFY-77", "status": "FAILED", "amount": "2500.00"}
	}`
	reversedBody := `{
		"eventType": "REVERSED_DISBURSEMENT",
		"eventData": {"reference": "WD-1", "transactionReference": "MFY-77", "status": "REVERSED", "amount": "2500.00"}
	}`

	t.Run("Successful disbursement completes the withdrawal", func(t *testing.T) {
		handler, service := NewMock(t, "production")
		service.EXPECT().
			CompleteDisbursement(gomock.Any(), "WD-1", "MFY-77").
			Return(applied(), nil)

		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, signedRequest(body))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed disbursement refunds the withdrawal", func(t *testing.T) {
		handler, service := NewMock(t, "production")
		service.EXPECT().
			FailDisbursement(gomock.Any(), "WD-1", "MFY-77").
			Return(applied(), nil)

		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, signedRequest(failedBody))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Reversed disbursement routes like a failure", func(t *testing.T) {
		handler, service := NewMock(t, "production")
		service.EXPECT().
			FailDisbursement(gomock.Any(), "WD-1", "MFY-77").
			Return(duplicate(), nil)

		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, signedRequest(reversedBody))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown disbursement is acknowledged", func(t *testing.T) {
		handler, service := NewMock(t, "production")
		service.EXPECT().
			CompleteDisbursement(gomock.Any(), "WD-1", "MFY-77").
			Return(nil, walletservice.ErrTransactionNotFound)

		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, signedRequest(body))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleGatewayEvent_Authentication(t *testing.T) {
	t.Run("Tampered body fails verification", func(t *testing.T) {
		handler, _ := NewMock(t, "production")

		r := httptest.NewRequest(http.MethodPost, "/api/webhooks/gateway", bytes.NewBufferString(collectionBody))
		r.Header.Set(SignatureHeader, signature.Compute([]byte(testSecret), []byte(`{"eventType":"SUCCESSFUL_TRANSACTION"}`)))
		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong secret fails verification", func(t *testing.T) {
		handler, _ := NewMock(t, "production")

		r := httptest.NewRequest(http.MethodPost, "/api/webhooks/gateway", bytes.NewBufferString(collectionBody))
		r.Header.Set(SignatureHeader, signature.Compute([]byte("other-secret"), []byte(collectionBody)))
		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing signature is rejected in production", func(t *testing.T) {
		handler, _ := NewMock(t, "production")

		r := httptest.NewRequest(http.MethodPost, "/api/webhooks/gateway", bytes.NewBufferString(collectionBody))
		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing signature is tolerated outside production", func(t *testing.T) {
		handler, service := NewMock(t, "development")
		service.EXPECT().
			CreditFromCollection(gomock.Any(), "9977581502", decimal.RequireFromString("5000.00"), "TXN-1", "PAY-1").
			Return(applied(), nil)

		r := httptest.NewRequest(http.MethodPost, "/api/webhooks/gateway", bytes.NewBufferString(collectionBody))
		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleGatewayEvent_Envelope(t *testing.T) {
	t.Run("Unknown event type is ignored", func(t *testing.T) {
		handler, _ := NewMock(t, "production")

		body := `{"eventType": "SETTLEMENT_NOTIFICATION", "eventData": {}}`
		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, signedRequest(body))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Malformed envelope", func(t *testing.T) {
		handler, _ := NewMock(t, "production")

		body := `{"eventType": `
		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, signedRequest(body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed collection payload", func(t *testing.T) {
		handler, _ := NewMock(t, "production")

		body := `{"eventType": "SUCCESSFUL_TRANSACTION", "eventData": {"amountPaid": "not-a-number"}}`
		w := httptest.NewRecorder()
		handler.HandleGatewayEvent(w, signedRequest(body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
