package models

import (
	"github.com/shopspring/decimal"
)

type WalletRequest struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"userId" binding:"required"`
	Iban     string          `json:"iban" binding:"required,min=15,max=34"`
	Name     string          `json:"name" binding:"required,min=3,max=50"`
	Currency string          `json:"currency" binding:"required,len=3"`
	Balance  decimal.Decimal `json:"balance"`
}

type TransactionRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Description    string          `json:"description" binding:"max=50"`
	TypeID         int64           `json:"typeId" binding:"required"`
	FromWalletIban string          `json:"fromWalletIban"`
	ToWalletIban   string          `json:"toWalletIban"`
}

type PageRequest struct {
	Page int    `form:"page,default=0"`
	Size int    `form:"size,default=10"`
	Sort string `form:"sort,default=id"`
}

// Offset normalizes page/size and returns the row offset for the page.
func (p PageRequest) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.Limit()
}

func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return 10
	}
	return p.Size
}
