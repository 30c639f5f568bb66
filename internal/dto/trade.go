package dto

type BuyRequestDTO struct {
	TokenSymbol string `json:"tokenSymbol" validate:"required,uppercase" example:"INV"`
	NairaAmount string `json:"nairaAmount" validate:"required" example:"30000"`
}

type BuyResponseDTO struct {
	PurchaseID       int    `json:"purchaseId" example:"17"`
	NairaAmountSpent string `json:"nairaAmountSpent" example:"30000.00"`
	TokensReceived   string `json:"tokensReceived" example:"2"`
	PricePerToken    string `json:"pricePerToken" example:"15000.00"`
	NewTokenBalance  string `json:"newTokenBalance" example:"2"`
	NewWalletBalance string `json:"newWalletBalance" example:"20000.00"`
	Reference        string `json:"reference" example:"BUY-7f4c1b0e"`
}

type SellRequestDTO struct {
	TokenSymbol  string `json:"tokenSymbol" validate:"required,uppercase" example:"INV"`
	TokensToSell string `json:"tokensToSell" validate:"required" example:"1.5"`
}

type SellResponseDTO struct {
	SaleID           int    `json:"saleId" example:"18"`
	TokensSold       string `json:"tokensSold" example:"1.5"`
	NairaReceived    string `json:"nairaReceived" example:"22500.00"`
	PricePerToken    string `json:"pricePerToken" example:"15000.00"`
	NewTokenBalance  string `json:"newTokenBalance" example:"0.5"`
	NewWalletBalance string `json:"newWalletBalance" example:"42500.00"`
	Reference        string `json:"reference" example:"SELL-7f4c1b0e"`
}

type HoldingResponseDTO struct {
	TokenSymbol      string `json:"tokenSymbol" example:"INV"`
	TokenName        string `json:"tokenName" example:"Invest Token"`
	Quantity         string `json:"quantity" example:"3"`
	AveragePrice     string `json:"averagePrice" example:"15000.00"`
	TotalInvested    string `json:"totalInvested" example:"45000.00"`
	AccumulatedYield string `json:"accumulatedYield" example:"0"`
	CurrentValue     string `json:"currentValue" example:"45000.00"`
}
