package dto

import "time"

type CreateAlertRequestDTO struct {
	TokenSymbol    string `json:"tokenSymbol" validate:"required,uppercase" example:"INV"`
	ThresholdNaira string `json:"thresholdNaira" validate:"required" example:"16000.00"`
	Direction      string `json:"direction" validate:"required,oneof=above below" example:"above"`
}

type AlertSettingResponseDTO struct {
	ID              int        `json:"id" example:"3"`
	TokenID         int        `json:"tokenId" example:"1"`
	ThresholdNaira  string     `json:"thresholdNaira" example:"16000.00"`
	Direction       string     `json:"direction" example:"above"`
	Active          bool       `json:"active" example:"true"`
	LastTriggeredAt *time.Time `json:"lastTriggeredAt,omitempty"`
}
