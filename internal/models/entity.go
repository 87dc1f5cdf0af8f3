package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction statuses. Only StatusCompleted is produced by the current
// code paths; the others are reserved for asynchronous settlement.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Well-known transaction type ids seeded into the types table.
const (
	TypeInitialBalance int64 = 1
	TypeTransfer       int64 = 2
	TypeDeposit        int64 = 3
	TypeWithdrawal     int64 = 4
)

const InitialBalanceDescription = "Initial balance"

type Wallet struct {
	ID       int64           `db:"id" json:"id"`
	UserID   int64           `db:"user_id" json:"userId"`
	Iban     string          `db:"iban" json:"iban"`
	Name     string          `db:"name" json:"name"`
	Currency string          `db:"currency" json:"currency"`
	Balance  decimal.Decimal `db:"balance" json:"balance"`
}

// Transaction is an append-only ledger row. FromIban and ToIban are
// snapshots taken at commit time so the row stays meaningful after a
// wallet is deleted.
type Transaction struct {
	ID              int64           `db:"id"`
	ReferenceNumber uuid.UUID       `db:"reference_number"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TypeID          int64           `db:"type_id"`
	TypeName        string          `db:"type_name"`
	Status          string          `db:"status"`
	FromWalletID    int64           `db:"from_wallet_id"`
	FromIban        string          `db:"from_iban"`
	ToWalletID      int64           `db:"to_wallet_id"`
	ToIban          string          `db:"to_iban"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Type struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
