package repository

import (
	"context"
	"errors"
	"log/slog"

	"wallet_api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `t.id, t.reference_number, t.amount, t.description, t.type_id, ty.name,
		t.status, t.from_wallet_id, t.from_iban, t.to_wallet_id, t.to_iban, t.created_at`

const transactionSelect = "SELECT " + transactionColumns + " FROM transactions t JOIN types ty ON ty.id = t.type_id"

var transactionSortColumns = map[string]string{
	"id":        "t.id",
	"amount":    "t.amount",
	"createdAt": "t.created_at",
}

type TransactionPGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTransactionPGRepository(pool *pgxpool.Pool, logger *slog.Logger) *TransactionPGRepository {
	return &TransactionPGRepository{
		pool:   pool,
		logger: logger,
	}
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID, &t.ReferenceNumber, &t.Amount, &t.Description, &t.TypeID, &t.TypeName,
		&t.Status, &t.FromWalletID, &t.FromIban, &t.ToWalletID, &t.ToIban, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionPGRepository) FindByID(ctx context.Context, id int64) (*models.Transaction, error) {
	row := r.pool.QueryRow(ctx, transactionSelect+" WHERE t.id = $1", id)
	transaction, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to find transaction by id",
			slog.Int64("transaction_id", id),
			slog.Any("err", err),
		)
		return nil, err
	}
	return transaction, nil
}

func (r *TransactionPGRepository) FindByReferenceNumber(ctx context.Context, ref uuid.UUID) (*models.Transaction, error) {
	row := r.pool.QueryRow(ctx, transactionSelect+" WHERE t.reference_number = $1", ref)
	transaction, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to find transaction by reference number",
			slog.String("reference_number", ref.String()),
			slog.Any("err", err),
		)
		return nil, err
	}
	return transaction, nil
}

// FindAllByUserID returns every ledger row touching a wallet currently owned
// by the user. Rows referencing deleted wallets no longer resolve to an
// owner and are not included.
func (r *TransactionPGRepository) FindAllByUserID(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx, transactionSelect+`
		WHERE t.from_wallet_id IN (SELECT id FROM wallets WHERE user_id = $1)
		   OR t.to_wallet_id IN (SELECT id FROM wallets WHERE user_id = $1)
		ORDER BY t.id`, userID)
	if err != nil {
		r.logger.Error("Failed to find transactions by user id",
			slog.Int64("user_id", userID),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *TransactionPGRepository) FindAll(ctx context.Context, page models.PageRequest) ([]models.Transaction, error) {
	sortColumn, ok := transactionSortColumns[page.Sort]
	if !ok {
		sortColumn = "t.id"
	}
	rows, err := r.pool.Query(ctx,
		transactionSelect+" ORDER BY "+sortColumn+" LIMIT $1 OFFSET $2",
		page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list transactions",
			slog.Int("page", page.Page),
			slog.Int("size", page.Size),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

// Create appends a ledger row outside any unit of work. Balance-mutating
// writes go through the TxManager instead; this is the standalone entry
// path used for ledger-only records.
func (r *TransactionPGRepository) Create(ctx context.Context, transaction *models.Transaction) (int64, error) {
	err := r.pool.QueryRow(ctx, `
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
		r.logger.Error("Failed to create transaction",
			slog.String("reference_number", transaction.ReferenceNumber.String()),
			slog.Any("err", err),
		)
		return 0, err
	}
	return transaction.ID, nil
}
