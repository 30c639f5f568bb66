package dto

import "time"

type WalletResponseDTO struct {
	AccountNumber string `json:"accountNumber" example:"9977581502"`
	BankName      string `json:"bankName" example:"Wema Bank"`
	AccountName   string `json:"accountName" example:"Ada Obi"`
	Balance       int64  `json:"balance" example:"500000"`
	BalanceNaira  string `json:"balanceNaira" example:"5000.00"`
}

type TransactionResponseDTO struct {
	Type        string    `json:"type" example:"credit"`
	Status      string    `json:"status" example:"completed"`
	Amount      int64     `json:"amount" example:"500000"`
	AmountNaira string    `json:"amountNaira" example:"5000.00"`
	Description string    `json:"description" example:"Wallet deposit"`
	Reference   string    `json:"reference" example:"TXN-1"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-06-09T16:09:57+01:00"`
}

type WithdrawRequestDTO struct {
	NairaAmount   string `json:"nairaAmount" validate:"required" example:"2500.00"`
	AccountNumber string `json:"accountNumber" validate:"required,len=10,numeric" example:"0123456788"`
	AccountName   string `json:"accountName" validate:"required" example:"Ada Obi"`
	BankCode      string `json:"bankCode" validate:"required" example:"035"`
}

type WithdrawResponseDTO struct {
	Reference   string `json:"reference" example:"WD-7f4c1b0e"`
	Status      string `json:"status" example:"pending"`
	Amount      int64  `json:"amount" example:"250000"`
	AmountNaira string `json:"amountNaira" example:"2500.00"`
}
