package alertservice

import (
	"context"
	"errors"

	"github.com/adesinaj/kobovest/internal/domain"
	alertrepo "github.com/adesinaj/kobovest/internal/repo/alert-repo"
	"go.uber.org/zap"
)

type AlertRepo interface {
	CreateSetting(ctx context.Context, setting *domain.PriceAlertSetting) (*domain.PriceAlertSetting, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.PriceAlertSetting, error)
	DeleteSetting(ctx context.Context, userID, settingID int) error
}

type TokenRepo interface {
	FindBySymbol(ctx context.Context, symbol string) (*domain.Token, error)
}

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrInvalidThreshold = errors.New("invalid threshold")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrSettingNotFound  = errors.New("alert setting not found")
)

type Service struct {
	alertRepo AlertRepo
	tokenRepo TokenRepo
}

func New(alertRepo AlertRepo, tokenRepo TokenRepo) *Service {
	return &Service{
		alertRepo: alertRepo,
		tokenRepo: tokenRepo,
	}
}

func (s *Service) CreateSetting(ctx context.Context, userID int, symbol string, threshold int64, direction string) (*domain.PriceAlertSetting, error) {
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	if direction != domain.AlertDirectionAbove && direction != domain.AlertDirectionBelow {
		return nil, ErrInvalidDirection
	}

	token, err := s.tokenRepo.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}

	setting, err := s.alertRepo.CreateSetting(ctx, &domain.PriceAlertSetting{
		UserID:    userID,
		TokenID:   token.ID,
		Threshold: threshold,
		Direction: direction,
	})
	if err != nil {
		zap.L().Error("can't create alert setting", zap.Error(err))
		return nil, err
	}
	return setting, nil
}

func (s *Service) GetSettings(ctx context.Context, userID int) ([]domain.PriceAlertSetting, error) {
	settings, err := s.alertRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't fetch alert settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *Service) DeleteSetting(ctx context.Context, userID, settingID int) error {
	err := s.alertRepo.DeleteSetting(ctx, userID, settingID)
	if errors.Is(err, alertrepo.ErrSettingNotFound) {
		return ErrSettingNotFound
	}
	return err
}
