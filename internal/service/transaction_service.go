package service

import (
	"context"
	"log/slog"

	"wallet_api/internal/models"
	"wallet_api/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=transaction_service.go -destination=../../test/mock_transaction_repository.go -package=test TransactionRepository,WalletLookup

type TransactionRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Transaction, error)
	FindByReferenceNumber(ctx context.Context, ref uuid.UUID) (*models.Transaction, error)
	FindAllByUserID(ctx context.Context, userID int64) ([]models.Transaction, error)
	FindAll(ctx context.Context, page models.PageRequest) ([]models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) (int64, error)
}

type WalletLookup interface {
	FindByIban(ctx context.Context, iban string) (*models.Wallet, error)
}

// TransactionService serves the ledger query layer plus the standalone
// ledger-only create used for entries with no balance effect of their own.
type TransactionService struct {
	transactions TransactionRepository
	wallets      WalletLookup
	types        TypeRepository
	logger       *slog.Logger
}

func NewTransactionService(transactions TransactionRepository, wallets WalletLookup,
	types TypeRepository, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		wallets:      wallets,
		types:        types,
		logger:       logger,
	}
}

func (s *TransactionService) FindByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.transactions.FindByID(ctx, id)
}

// FindByReferenceNumber is the idempotent lookup path for clients that
// retried a submission and want to confirm the outcome.
func (s *TransactionService) FindByReferenceNumber(ctx context.Context, ref uuid.UUID) (*models.Transaction, error) {
	return s.transactions.FindByReferenceNumber(ctx, ref)
}

func (s *TransactionService) FindAllByUserID(ctx context.Context, userID int64) ([]models.Transaction, error) {
	transactions, err := s.transactions.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, repository.ErrRecordNotFound
	}
	return transactions, nil
}

func (s *TransactionService) FindAll(ctx context.Context, page models.PageRequest) ([]models.Transaction, error) {
	transactions, err := s.transactions.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, repository.ErrRecordNotFound
	}
	return transactions, nil
}

// Create appends a ledger entry without touching any balance. Wallets are
// resolved by IBAN so the row carries id and IBAN snapshots.
func (s *TransactionService) Create(ctx context.Context, req models.TransactionRequest) (int64, error) {
	if !req.Amount.IsPositive() {
		return 0, repository.ErrInvalidAmount
	}
	transferType, err := s.types.FindByID(ctx, req.TypeID)
	if err != nil {
		return 0, err
	}
	from, err := s.wallets.FindByIban(ctx, req.FromWalletIban)
	if err != nil {
		return 0, err
	}
	to, err := s.wallets.FindByIban(ctx, req.ToWalletIban)
	if err != nil {
		return 0, err
	}

	entry := newLedgerEntry(transferType, req.Amount, req.Description, from, to)
	id, err := s.transactions.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Ledger entry creation failed",
			slog.String("from_iban", from.Iban),
			slog.String("to_iban", to.Iban),
			slog.Any("err", err),
		)
		return 0, err
	}
	s.logger.Info("Ledger entry created",
		slog.String("from_iban", from.Iban),
		slog.String("to_iban", to.Iban),
		slog.Any("amount", req.Amount),
	)
	return id, nil
}
