package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatedAtLayout is the fixed UTC rendering of ledger timestamps.
const CreatedAtLayout = "2006-01-02 15:04:05"

type CommandResponse struct {
	ID int64 `json:"id"`
}

type WalletResponse struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"userId"`
	Iban     string          `json:"iban"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

type WalletRef struct {
	ID   int64  `json:"id"`
	Iban string `json:"iban"`
}

type TransactionResponse struct {
	ID              int64           `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	CreatedAt       string          `json:"createdAt"`
	ReferenceNumber uuid.UUID       `json:"referenceNumber"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	FromWallet      WalletRef       `json:"fromWallet"`
	ToWallet        WalletRef       `json:"toWallet"`
}

func ToWalletResponse(w *Wallet) WalletResponse {
	return WalletResponse{
		ID:       w.ID,
		UserID:   w.UserID,
		Iban:     w.Iban,
		Name:     w.Name,
		Currency: w.Currency,
		Balance:  w.Balance,
	}
}

func ToWalletResponses(wallets []Wallet) []WalletResponse {
	out := make([]WalletResponse, 0, len(wallets))
	for i := range wallets {
		out = append(out, ToWalletResponse(&wallets[i]))
	}
	return out
}

func ToTransactionResponse(t *Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Amount:          t.Amount,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt.In(time.UTC).Format(CreatedAtLayout),
		ReferenceNumber: t.ReferenceNumber,
		Status:          t.Status,
		Type:            t.TypeName,
		FromWallet:      WalletRef{ID: t.FromWalletID, Iban: t.FromIban},
		ToWallet:        WalletRef{ID: t.ToWalletID, Iban: t.ToIban},
	}
}

func ToTransactionResponses(transactions []Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, ToTransactionResponse(&transactions[i]))
	}
	return out
}
