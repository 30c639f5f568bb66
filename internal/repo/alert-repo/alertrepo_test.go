package alertrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func settingRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "token_id", "threshold", "direction", "active", "last_triggered_at", "created_at"}).
		AddRow(1, 1, 1, int64(1600000), domain.AlertDirectionAbove, true, nil, now)
}

func TestRepository_CreateSetting(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO price_alert_settings`)).
		WithArgs(1, 1, int64(1600000), domain.AlertDirectionAbove).
		WillReturnRows(settingRows(now))

	setting, err := repo.CreateSetting(context.Background(), &domain.PriceAlertSetting{
		UserID:    1,
		TokenID:   1,
		Threshold: 1600000,
		Direction: domain.AlertDirectionAbove,
	})
	assert.NoError(t, err)
	assert.True(t, setting.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveSettings(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE active = TRUE`)).
		WillReturnRows(settingRows(now))

	settings, err := repo.FindActiveSettings(context.Background())
	assert.NoError(t, err)
	assert.Len(t, settings, 1)
	assert.Equal(t, int64(1600000), settings[0].Threshold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordTrigger(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Insert alert and deactivate setting in one tx",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO price_alerts`)).
					WithArgs(1, 1, int64(1650000)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(regexp.QuoteMeta(`SET last_triggered_at = now(), active = FALSE`)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Insert failure aborts the tx",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO price_alerts`)).
					WithArgs(1, 1, int64(1650000)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.RecordTrigger(context.Background(), 1, 1, 1650000)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteSetting(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Delete own setting",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM price_alert_settings`)).
					WithArgs(1, 1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "Unknown or foreign setting",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM price_alert_settings`)).
					WithArgs(1, 1).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr: ErrSettingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.DeleteSetting(context.Background(), 1, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
