package alert

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/internal/dto"
	alertservice "github.com/adesinaj/kobovest/internal/service/alertservice"
	"github.com/adesinaj/kobovest/pkg/auth"
	"github.com/adesinaj/kobovest/pkg/money"
	"github.com/adesinaj/kobovest/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Service interface {
	CreateSetting(ctx context.Context, userID int, symbol string, threshold int64, direction string) (*domain.PriceAlertSetting, error)
	GetSettings(ctx context.Context, userID int) ([]domain.PriceAlertSetting, error)
	DeleteSetting(ctx context.Context, userID, settingID int) error
}

type AlertHandler struct {
	alertService Service
	validate     *validator.Validate
}

func New(alertService Service) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		validate:     validator.New(),
	}
}

// CreateAlert godoc
//
//	@Summary		Create a price alert
//	@Description	Create a standing price alert for a token; it fires once when the price crosses the threshold in the given direction.
//	@Tags			Alerts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAlertRequestDTO	true	"Alert setting payload"
//	@Success		200		{object}	dto.AlertSettingResponseDTO	"Created alert setting"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Token not found"
//	@Failure		422		{object}	utils.Response				"Invalid threshold or direction"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/alerts [post]
func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateAlertRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	threshold, err := decimal.NewFromString(req.ThresholdNaira)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid threshold")
		return
	}

	setting, err := h.alertService.CreateSetting(r.Context(), userID, req.TokenSymbol, money.ToMinorUnits(threshold), req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, alertservice.ErrTokenNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, alertservice.ErrInvalidThreshold), errors.Is(err, alertservice.ErrInvalidDirection):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettingDTO(*setting))
}

// GetAlerts godoc
//
//	@Summary		Get price alert settings
//	@Description	Get all price alert settings of the authenticated user.
//	@Tags			Alerts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AlertSettingResponseDTO	"Alert settings"
//	@Success		204	{object}	utils.Response				"No alert settings"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/alerts [get]
func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	settings, err := h.alertService.GetSettings(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch alert settings")
		return
	}
	if len(settings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No alert settings")
		return
	}

	response := make([]dto.AlertSettingResponseDTO, len(settings))
	for i, setting := range settings {
		response[i] = toSettingDTO(setting)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeleteAlert godoc
//
//	@Summary		Delete a price alert setting
//	@Description	Delete one of the authenticated user's price alert settings.
//	@Tags			Alerts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Alert setting id"
//	@Success		200	{object}	utils.Response	"Alert setting deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Alert setting not found"
//	@Failure		422	{object}	utils.Response	"Invalid alert setting id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/alerts/{id} [delete]
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	settingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid alert setting id")
		return
	}

	if err := h.alertService.DeleteSetting(r.Context(), userID, settingID); err != nil {
		if errors.Is(err, alertservice.ErrSettingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Alert setting not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Alert setting deleted"})
}

func toSettingDTO(setting domain.PriceAlertSetting) dto.AlertSettingResponseDTO {
	return dto.AlertSettingResponseDTO{
		ID:              setting.ID,
		TokenID:         setting.TokenID,
		ThresholdNaira:  money.ToMajorUnits(setting.Threshold).StringFixed(2),
		Direction:       setting.Direction,
		Active:          setting.Active,
		LastTriggeredAt: setting.LastTriggeredAt,
	}
}
