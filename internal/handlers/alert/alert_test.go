package alert

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adesinaj/kobovest/internal/domain"
	alertservice "github.com/adesinaj/kobovest/internal/service/alertservice"
	"github.com/adesinaj/kobovest/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AlertHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestCreateAlertHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Setting created",
			body: `{"tokenSymbol":"AGRI","thresholdNaira":"16000.00","direction":"above"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateSetting(gomock.Any(), 1, "AGRI", int64(1600000), "above").
					Return(&domain.PriceAlertSetting{ID: 3, UserID: 1, TokenID: 1, Threshold: 1600000, Direction: "above", Active: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"tokenSymbol":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Direction must be above or below",
			body:         `{"tokenSymbol":"AGRI","thresholdNaira":"16000.00","direction":"sideways"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Threshold is not a number",
			body:         `{"tokenSymbol":"AGRI","thresholdNaira":"high","direction":"above"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown token",
			body: `{"tokenSymbol":"AGRI","thresholdNaira":"16000.00","direction":"above"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateSetting(gomock.Any(), 1, "AGRI", int64(1600000), "above").
					Return(nil, alertservice.ErrTokenNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.CreateAlert(w, authedRequest(http.MethodPost, "/api/user/alerts", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetAlertsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Settings returned", func(t *testing.T) {
		service.EXPECT().
			GetSettings(gomock.Any(), 1).
			Return([]domain.PriceAlertSetting{{ID: 3, UserID: 1, TokenID: 1, Threshold: 1600000, Direction: "above", Active: true}}, nil)

		w := httptest.NewRecorder()
		handler.GetAlerts(w, authedRequest(http.MethodGet, "/api/user/alerts", ""))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No settings", func(t *testing.T) {
		service.EXPECT().GetSettings(gomock.Any(), 1).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.GetAlerts(w, authedRequest(http.MethodGet, "/api/user/alerts", ""))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestDeleteAlertHandler(t *testing.T) {
	handler, service := NewMock(t)

	deleteRequest := func(id string) *http.Request {
		r := authedRequest(http.MethodDelete, "/api/user/alerts/"+id, "")
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Setting deleted", func(t *testing.T) {
		service.EXPECT().DeleteSetting(gomock.Any(), 1, 3).Return(nil)

		w := httptest.NewRecorder()
		handler.DeleteAlert(w, deleteRequest("3"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Setting not found", func(t *testing.T) {
		service.EXPECT().DeleteSetting(gomock.Any(), 1, 3).Return(alertservice.ErrSettingNotFound)

		w := httptest.NewRecorder()
		handler.DeleteAlert(w, deleteRequest("3"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.DeleteAlert(w, deleteRequest("abc"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().DeleteSetting(gomock.Any(), 1, 3).Return(errors.New("store unavailable"))

		w := httptest.NewRecorder()
		handler.DeleteAlert(w, deleteRequest("3"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
