package repository

import (
	"context"
	"errors"
	"log/slog"

	"wallet_api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const walletColumns = "id, user_id, iban, name, currency, balance"

// Sortable wallet columns exposed to the paging API. Anything else falls
// back to id.
var walletSortColumns = map[string]string{
	"id":      "id",
	"iban":    "iban",
	"name":    "name",
	"balance": "balance",
	"userId":  "user_id",
}

type WalletPGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewWalletPGRepository(pool *pgxpool.Pool, logger *slog.Logger) *WalletPGRepository {
	return &WalletPGRepository{
		pool:   pool,
		logger: logger,
	}
}

func scanWallet(row pgx.Row) (*models.Wallet, error) {
	var w models.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Iban, &w.Name, &w.Currency, &w.Balance)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletPGRepository) FindByID(ctx context.Context, id int64) (*models.Wallet, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+walletColumns+" FROM wallets WHERE id = $1", id)
	wallet, err := scanWallet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		r.logger.Error("Failed to find wallet by id",
			slog.Int64("wallet_id", id),
			slog.Any("err", err),
		)
		return nil, err
	}
	return wallet, nil
}

func (r *WalletPGRepository) FindByIban(ctx context.Context, iban string) (*models.Wallet, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+walletColumns+" FROM wallets WHERE lower(iban) = lower($1)", iban)
	wallet, err := scanWallet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		r.logger.Error("Failed to find wallet by iban",
			slog.String("iban", iban),
			slog.Any("err", err),
		)
		return nil, err
	}
	return wallet, nil
}

func (r *WalletPGRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Wallet, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+walletColumns+" FROM wallets WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		r.logger.Error("Failed to find wallets by user id",
			slog.Int64("user_id", userID),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()
	return collectWallets(rows)
}

func (r *WalletPGRepository) FindAll(ctx context.Context, page models.PageRequest) ([]models.Wallet, error) {
	sortColumn, ok := walletSortColumns[page.Sort]
	if !ok {
		sortColumn = "id"
	}
	rows, err := r.pool.Query(ctx,
		"SELECT "+walletColumns+" FROM wallets ORDER BY "+sortColumn+" LIMIT $1 OFFSET $2",
		page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list wallets",
			slog.Int("page", page.Page),
			slog.Int("size", page.Size),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()
	return collectWallets(rows)
}

func collectWallets(rows pgx.Rows) ([]models.Wallet, error) {
	wallets := make([]models.Wallet, 0)
	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *wallet)
	}
	return wallets, rows.Err()
}

func (r *WalletPGRepository) ExistsByIban(ctx context.Context, iban string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM wallets WHERE lower(iban) = lower($1))", iban).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check iban existence",
			slog.String("iban", iban),
			slog.Any("err", err),
		)
		return false, err
	}
	return exists, nil
}

func (r *WalletPGRepository) ExistsByUserIDAndName(ctx context.Context, userID int64, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM wallets WHERE user_id = $1 AND lower(name) = lower($2))",
		userID, name).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check wallet name existence",
			slog.Int64("user_id", userID),
			slog.String("name", name),
			slog.Any("err", err),
		)
		return false, err
	}
	return exists, nil
}

// Create inserts a wallet outside any unit of work. The lifecycle service
// creates wallets through the TxManager; this path is kept for seeding and
// tests.
func (r *WalletPGRepository) Create(ctx context.Context, wallet *models.Wallet) (int64, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO wallets (user_id, iban, name, currency, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		wallet.UserID, wallet.Iban, wallet.Name, wallet.Currency, wallet.Balance,
	).Scan(&wallet.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrWalletAlreadyExists
		}
		r.logger.Error("Failed to create wallet",
			slog.String("iban", wallet.Iban),
			slog.Any("err", err),
		)
		return 0, err
	}
	return wallet.ID, nil
}

func (r *WalletPGRepository) Update(ctx context.Context, wallet *models.Wallet) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE wallets SET user_id = $1, iban = $2, name = $3, currency = $4
		WHERE id = $5`,
		wallet.UserID, wallet.Iban, wallet.Name, wallet.Currency, wallet.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrWalletAlreadyExists
		}
		r.logger.Error("Failed to update wallet",
			slog.Int64("wallet_id", wallet.ID),
			slog.Any("err", err),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *WalletPGRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM wallets WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete wallet",
			slog.Int64("wallet_id", id),
			slog.Any("err", err),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
