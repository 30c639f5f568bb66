// Package alerts is the price-alert poller: a cancellable periodic task
// that reads token prices, matches them against active alert settings
// and records triggers. It is never on the wallet or trade write path.
package alerts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/notifier"
	"github.com/adesinaj/kobovest/pkg/money"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AlertRepo interface {
	FindActiveSettings(ctx context.Context) ([]domain.PriceAlertSetting, error)
	RecordTrigger(ctx context.Context, settingID, tokenID int, price int64) error
}

type TokenRepo interface {
	List(ctx context.Context) ([]domain.Token, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notifier.Event) error
}

type Service struct {
	alertRepo    AlertRepo
	tokenRepo    TokenRepo
	notifier     Notifier
	workerPool   WorkerPoolI
	pollInterval time.Duration

	inFlight sync.Map
}

func New(alertRepo AlertRepo, tokenRepo TokenRepo, n Notifier) *Service {
	return &Service{
		alertRepo:    alertRepo,
		tokenRepo:    tokenRepo,
		notifier:     n,
		workerPool:   NewWorkerPool(10),
		pollInterval: time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Price alert service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping price alert service")
			return
		case <-ticker.C:
			s.processAlerts(ctx)
		}
	}
}

func (s *Service) processAlerts(ctx context.Context) {
	settings, err := s.alertRepo.FindActiveSettings(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch active alert settings", zap.Error(err))
		return
	}
	if len(settings) == 0 {
		return
	}

	tokens, err := s.tokenRepo.List(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch tokens", zap.Error(err))
		return
	}
	prices := make(map[int]int64, len(tokens))
	for _, t := range tokens {
		prices[t.ID] = t.Price
	}

	var g errgroup.Group
	for _, setting := range settings {
		setting := setting

		price, ok := prices[setting.TokenID]
		if !ok || !triggered(setting, price) {
			continue
		}

		if _, loaded := s.inFlight.LoadOrStore(setting.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, Task{
				SettingID: setting.ID,
				Run: func() error {
					defer s.inFlight.Delete(setting.ID)
					return s.handleTrigger(ctx, setting, price)
				},
			})
			if err != nil {
				s.inFlight.Delete(setting.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing price alerts", zap.Error(err))
	}
}

func triggered(setting domain.PriceAlertSetting, price int64) bool {
	switch setting.Direction {
	case domain.AlertDirectionAbove:
		return price >= setting.Threshold
	case domain.AlertDirectionBelow:
		return price <= setting.Threshold
	default:
		return false
	}
}

func (s *Service) handleTrigger(ctx context.Context, setting domain.PriceAlertSetting, price int64) error {
	if err := s.alertRepo.RecordTrigger(ctx, setting.ID, setting.TokenID, price); err != nil {
		return fmt.Errorf("failed to record trigger for setting %d: %w", setting.ID, err)
	}

	priceNaira := money.ToMajorUnits(price)
	event := notifier.Event{
		Type:    notifier.TypePriceAlert,
		UserID:  setting.UserID,
		Title:   "Price alert",
		Message: fmt.Sprintf("Token price crossed your %s threshold at ₦%s", setting.Direction, priceNaira.StringFixed(2)),
		Amount:  priceNaira,
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		zap.L().Error("Failed to deliver price alert", zap.Int("settingID", setting.ID), zap.Error(err))
	}

	zap.L().Info("Price alert triggered",
		zap.Int("settingID", setting.ID),
		zap.Int("tokenID", setting.TokenID),
		zap.Int64("price", price),
	)
	return nil
}
