package alertrepo

import (
	"context"
	"errors"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrSettingNotFound = errors.New("price alert setting not found")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const settingColumns = "id, user_id, token_id, threshold, direction, active, last_triggered_at, created_at"

func (r *Repository) CreateSetting(ctx context.Context, setting *domain.PriceAlertSetting) (*domain.PriceAlertSetting, error) {
	query := `
        INSERT INTO price_alert_settings (user_id, token_id, threshold, direction, active)
        VALUES ($1, $2, $3, $4, TRUE)
        RETURNING ` + settingColumns
	row := r.db.QueryRow(ctx, query, setting.UserID, setting.TokenID, setting.Threshold, setting.Direction)
	created, err := scanSetting(row)
	if err != nil {
		zap.L().Error("failed to create alert setting", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.PriceAlertSetting, error) {
	query := `
        SELECT ` + settingColumns + `
        FROM price_alert_settings
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch alert settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settings []domain.PriceAlertSetting
	for rows.Next() {
		var s domain.PriceAlertSetting
		err := rows.Scan(&s.ID, &s.UserID, &s.TokenID, &s.Threshold, &s.Direction, &s.Active, &s.LastTriggeredAt, &s.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan alert setting row", zap.Error(err))
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}

// FindActiveSettings feeds the poller. It only reads; triggering is a
// separate write.
func (r *Repository) FindActiveSettings(ctx context.Context) ([]domain.PriceAlertSetting, error) {
	query := `
        SELECT ` + settingColumns + `
        FROM price_alert_settings
        WHERE active = TRUE
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch active alert settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settings []domain.PriceAlertSetting
	for rows.Next() {
		var s domain.PriceAlertSetting
		err := rows.Scan(&s.ID, &s.UserID, &s.TokenID, &s.Threshold, &s.Direction, &s.Active, &s.LastTriggeredAt, &s.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan alert setting row", zap.Error(err))
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}

// RecordTrigger inserts the alert row, stamps last_triggered_at and
// deactivates the setting in one transaction.
func (r *Repository) RecordTrigger(ctx context.Context, settingID, tokenID int, price int64) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		insert := `
            INSERT INTO price_alerts (setting_id, token_id, price)
            VALUES ($1, $2, $3)
        `
		if _, err := r.db.Exec(ctx, insert, settingID, tokenID, price); err != nil {
			zap.L().Error("failed to insert price alert", zap.Error(err))
			return err
		}

		update := `
            UPDATE price_alert_settings
            SET last_triggered_at = now(), active = FALSE
            WHERE id = $1
        `
		if _, err := r.db.Exec(ctx, update, settingID); err != nil {
			zap.L().Error("failed to stamp alert setting", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) DeleteSetting(ctx context.Context, userID, settingID int) error {
	query := `
        DELETE FROM price_alert_settings
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, settingID, userID)
	if err != nil {
		zap.L().Error("failed to delete alert setting", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSettingNotFound
	}
	return nil
}

func scanSetting(row pgx.Row) (*domain.PriceAlertSetting, error) {
	var s domain.PriceAlertSetting
	err := row.Scan(&s.ID, &s.UserID, &s.TokenID, &s.Threshold, &s.Direction, &s.Active, &s.LastTriggeredAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
