package alerts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*Service, *MockAlertRepo, *MockTokenRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alertRepo := NewMockAlertRepo(ctrl)
	tokenRepo := NewMockTokenRepo(ctrl)
	n := NewMockNotifier(ctrl)
	service := New(alertRepo, tokenRepo, n)
	return service, alertRepo, tokenRepo, n
}

func TestService_Start(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestTriggered(t *testing.T) {
	tests := []struct {
		name    string
		setting domain.PriceAlertSetting
		price   int64
		want    bool
	}{
		{
			name:    "above triggers at the threshold",
			setting: domain.PriceAlertSetting{Direction: domain.AlertDirectionAbove, Threshold: 1600000},
			price:   1600000,
			want:    true,
		},
		{
			name:    "above stays quiet below the threshold",
			setting: domain.PriceAlertSetting{Direction: domain.AlertDirectionAbove, Threshold: 1600000},
			price:   1599999,
			want:    false,
		},
		{
			name:    "below triggers under the threshold",
			setting: domain.PriceAlertSetting{Direction: domain.AlertDirectionBelow, Threshold: 1400000},
			price:   1350000,
			want:    true,
		},
		{
			name:    "below stays quiet above the threshold",
			setting: domain.PriceAlertSetting{Direction: domain.AlertDirectionBelow, Threshold: 1400000},
			price:   1400001,
			want:    false,
		},
		{
			name:    "unknown direction never triggers",
			setting: domain.PriceAlertSetting{Direction: "sideways", Threshold: 1},
			price:   100,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, triggered(tt.setting, tt.price))
		})
	}
}

func TestService_processAlerts(t *testing.T) {
	settings := []domain.PriceAlertSetting{
		{ID: 1, UserID: 1, TokenID: 1, Threshold: 1600000, Direction: domain.AlertDirectionAbove},
		{ID: 2, UserID: 2, TokenID: 1, Threshold: 1000000, Direction: domain.AlertDirectionBelow},
	}
	tokens := []domain.Token{{ID: 1, Symbol: "AGRI", Price: 1650000}}

	tests := []struct {
		name             string
		mockFindSettings func(ctx context.Context) ([]domain.PriceAlertSetting, error)
		mockAddTask      func(ctx context.Context, task Task) error
		listTimes        int
		expectedTasks    int
	}{
		{
			name: "only the crossed setting is dispatched",
			mockFindSettings: func(ctx context.Context) ([]domain.PriceAlertSetting, error) {
				return settings, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				assert.Equal(t, 1, task.SettingID)
				return nil
			},
			listTimes:     1,
			expectedTasks: 1,
		},
		{
			name: "fetch failure skips the cycle",
			mockFindSettings: func(ctx context.Context) ([]domain.PriceAlertSetting, error) {
				return nil, fmt.Errorf("store unavailable")
			},
			listTimes:     0,
			expectedTasks: 0,
		},
		{
			name: "worker pool refusal releases the in-flight slot",
			mockFindSettings: func(ctx context.Context) ([]domain.PriceAlertSetting, error) {
				return settings, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("pool is closed")
			},
			listTimes:     1,
			expectedTasks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			alertRepo := NewMockAlertRepo(ctrl)
			tokenRepo := NewMockTokenRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			alertRepo.EXPECT().
				FindActiveSettings(gomock.Any()).
				DoAndReturn(tt.mockFindSettings).
				Times(1)
			tokenRepo.EXPECT().
				List(gomock.Any()).
				Return(tokens, nil).
				Times(tt.listTimes)
			workerPool.EXPECT().
				AddTask(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockAddTask).
				Times(tt.expectedTasks)

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			service := &Service{
				alertRepo:  alertRepo,
				tokenRepo:  tokenRepo,
				workerPool: workerPool,
			}
			service.processAlerts(context.Background())

			// a refused dispatch must not leave the setting stuck in flight
			_, loaded := service.inFlight.Load(1)
			if tt.name == "worker pool refusal releases the in-flight slot" {
				assert.False(t, loaded)
			}
		})
	}
}

func TestService_processAlerts_dedup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alertRepo := NewMockAlertRepo(ctrl)
	tokenRepo := NewMockTokenRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	settings := []domain.PriceAlertSetting{
		{ID: 1, UserID: 1, TokenID: 1, Threshold: 1600000, Direction: domain.AlertDirectionAbove},
	}
	tokens := []domain.Token{{ID: 1, Symbol: "AGRI", Price: 1650000}}

	alertRepo.EXPECT().FindActiveSettings(gomock.Any()).Return(settings, nil).Times(2)
	tokenRepo.EXPECT().List(gomock.Any()).Return(tokens, nil).Times(2)
	// the task is held, so the second cycle must not dispatch it again
	workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	service := &Service{
		alertRepo:  alertRepo,
		tokenRepo:  tokenRepo,
		workerPool: workerPool,
	}
	service.processAlerts(context.Background())
	service.processAlerts(context.Background())
}

func TestService_handleTrigger(t *testing.T) {
	setting := domain.PriceAlertSetting{ID: 1, UserID: 1, TokenID: 1, Threshold: 1600000, Direction: domain.AlertDirectionAbove}

	t.Run("records the trigger and notifies", func(t *testing.T) {
		service, alertRepo, _, n := NewMock(t)

		alertRepo.EXPECT().RecordTrigger(gomock.Any(), 1, 1, int64(1650000)).Return(nil)
		n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, service.handleTrigger(context.Background(), setting, 1650000))
	})

	t.Run("record failure surfaces", func(t *testing.T) {
		service, alertRepo, _, _ := NewMock(t)

		alertRepo.EXPECT().RecordTrigger(gomock.Any(), 1, 1, int64(1650000)).Return(fmt.Errorf("store unavailable"))

		assert.Error(t, service.handleTrigger(context.Background(), setting, 1650000))
	})

	t.Run("delivery failure is swallowed", func(t *testing.T) {
		service, alertRepo, _, n := NewMock(t)

		alertRepo.EXPECT().RecordTrigger(gomock.Any(), 1, 1, int64(1650000)).Return(nil)
		n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(fmt.Errorf("notifier down"))

		assert.NoError(t, service.handleTrigger(context.Background(), setting, 1650000))
	})
}
