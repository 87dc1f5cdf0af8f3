package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"wallet_api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=unit_of_work.go -destination=../../test/mock_wallet_tx.go -package=test WalletTx

// WalletTx is one atomic unit of work over wallets and the ledger: every
// write issued through it commits or rolls back together.
type WalletTx interface {
	// LockWalletsByIban resolves the given IBANs (case-insensitive) and
	// takes an exclusive row lock on each, always in ascending wallet id
	// order. Fails with ErrWalletNotFound unless every IBAN resolves.
	LockWalletsByIban(ctx context.Context, ibans []string) ([]models.Wallet, error)
	InsertWallet(ctx context.Context, wallet *models.Wallet) (int64, error)
	UpdateBalance(ctx context.Context, walletID int64, balance decimal.Decimal) error
	InsertTransaction(ctx context.Context, transaction *models.Transaction) (int64, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type TxManager struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTxManager(pool *pgxpool.Pool, logger *slog.Logger) *TxManager {
	return &TxManager{
		pool:   pool,
		logger: logger,
	}
}

func (m *TxManager) Begin(ctx context.Context) (WalletTx, error) {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		m.logger.Error("Failed to begin transaction", slog.Any("err", err))
		return nil, err
	}
	return &walletTx{tx: tx, logger: m.logger}, nil
}

type walletTx struct {
	tx     pgx.Tx
	logger *slog.Logger
}

func (w *walletTx) LockWalletsByIban(ctx context.Context, ibans []string) ([]models.Wallet, error) {
	lowered := make([]string, 0, len(ibans))
	for _, iban := range ibans {
		iban = strings.ToLower(iban)
		if !contains(lowered, iban) {
			lowered = append(lowered, iban)
		}
	}

	// Single statement with a fixed ORDER BY id so two overlapping
	// transfers always acquire row locks in the same global order.
	rows, err := w.tx.Query(ctx,
		"SELECT "+walletColumns+" FROM wallets WHERE lower(iban) = ANY($1) ORDER BY id FOR UPDATE",
		lowered)
	if err != nil {
		w.logger.Error("Failed to lock wallets", slog.Any("err", err))
		return nil, err
	}
	defer rows.Close()

	wallets, err := collectWallets(rows)
	if err != nil {
		return nil, err
	}
	if len(wallets) != len(lowered) {
		return nil, ErrWalletNotFound
	}
	return wallets, nil
}

func (w *walletTx) InsertWallet(ctx context.Context, wallet *models.Wallet) (int64, error) {
	err := w.tx.QueryRow(ctx, `
		INSERT INTO wallets (user_id, iban, name, currency, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		wallet.UserID, wallet.Iban, wallet.Name, wallet.Currency, wallet.Balance,
	).Scan(&wallet.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrWalletAlreadyExists
		}
		w.logger.Error("Failed to insert wallet",
			slog.String("iban", wallet.Iban),
			slog.Any("err", err),
		)
		return 0, err
	}
	return wallet.ID, nil
}

func (w *walletTx) UpdateBalance(ctx context.Context, walletID int64, balance decimal.Decimal) error {
	tag, err := w.tx.Exec(ctx, "UPDATE wallets SET balance = $1 WHERE id = $2", balance, walletID)
	if err != nil {
		w.logger.Error("Failed to update wallet balance",
			slog.Int64("wallet_id", walletID),
			slog.Any("err", err),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (w *walletTx) InsertTransaction(ctx context.Context, transaction *models.Transaction) (int64, error) {
	err := w.tx.QueryRow(ctx, `
		INSERT INTO transactions
			(reference_number, amount, description, type_id, status,
			 from_wallet_id, from_iban, to_wallet_id, to_iban, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		transaction.ReferenceNumber, transaction.Amount, transaction.Description,
		transaction.TypeID, transaction.Status,
		transaction.FromWalletID, transaction.FromIban,
		transaction.ToWalletID, transaction.ToIban, transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		w.logger.Error("Failed to insert transaction",
			slog.String("reference_number", transaction.ReferenceNumber.String()),
			slog.Any("err", err),
		)
		return 0, err
	}
	return transaction.ID, nil
}

func (w *walletTx) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *walletTx) Rollback(ctx context.Context) error {
	err := w.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		w.logger.Error("Failed to rollback transaction", slog.Any("err", err))
		return err
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
