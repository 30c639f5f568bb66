package dto

type TokenResponseDTO struct {
	Symbol      string `json:"symbol" example:"INV"`
	Name        string `json:"name" example:"Invest Token"`
	Price       int64  `json:"price" example:"1500000"`
	PriceNaira  string `json:"priceNaira" example:"15000.00"`
	Active      bool   `json:"active" example:"true"`
	Volume      string `json:"volume" example:"120.5"`
	TradesCount int    `json:"tradesCount" example:"42"`
}
