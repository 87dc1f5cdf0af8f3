package repository

import "errors"

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTypeNotFound        = errors.New("transaction type not found")
	ErrRecordNotFound      = errors.New("no records found")
	ErrWalletAlreadyExists = errors.New("wallet already exists")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrSameWallet          = errors.New("source and destination wallets must differ")
)
