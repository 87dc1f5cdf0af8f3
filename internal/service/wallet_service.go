package service

import (
	"context"
	"log/slog"
	"strings"

	"wallet_api/internal/models"
	"wallet_api/internal/repository"
)

//go:generate mockgen -source=wallet_service.go -destination=../../test/mock_wallet_repository.go -package=test WalletRepository

type WalletRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Wallet, error)
	FindByIban(ctx context.Context, iban string) (*models.Wallet, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Wallet, error)
	FindAll(ctx context.Context, page models.PageRequest) ([]models.Wallet, error)
	ExistsByIban(ctx context.Context, iban string) (bool, error)
	ExistsByUserIDAndName(ctx context.Context, userID int64, name string) (bool, error)
	Update(ctx context.Context, wallet *models.Wallet) error
	Delete(ctx context.Context, id int64) error
}

// WalletService is the wallet lifecycle manager: lookups, creation with the
// initial-balance ledger entry, updates under the uniqueness invariants, and
// hard deletion.
type WalletService struct {
	wallets WalletRepository
	types   TypeRepository
	tx      TxManager
	logger  *slog.Logger
}

func NewWalletService(wallets WalletRepository, types TypeRepository, tx TxManager, logger *slog.Logger) *WalletService {
	return &WalletService{
		wallets: wallets,
		types:   types,
		tx:      tx,
		logger:  logger,
	}
}

func (s *WalletService) FindByID(ctx context.Context, id int64) (*models.Wallet, error) {
	return s.wallets.FindByID(ctx, id)
}

func (s *WalletService) FindByIban(ctx context.Context, iban string) (*models.Wallet, error) {
	return s.wallets.FindByIban(ctx, iban)
}

// FindByUserID returns the user's wallets; an empty list is a valid result.
func (s *WalletService) FindByUserID(ctx context.Context, userID int64) ([]models.Wallet, error) {
	return s.wallets.FindByUserID(ctx, userID)
}

// FindAll returns one page of wallets. An empty page fails with
// ErrRecordNotFound, matching the contract of the other list reads.
func (s *WalletService) FindAll(ctx context.Context, page models.PageRequest) ([]models.Wallet, error) {
	wallets, err := s.wallets.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(wallets) == 0 {
		return nil, repository.ErrRecordNotFound
	}
	return wallets, nil
}

// Create persists a wallet with its opening balance and, when the balance is
// positive, the initial-balance ledger entry, both in one unit of work.
func (s *WalletService) Create(ctx context.Context, req models.WalletRequest) (int64, error) {
	if req.Balance.IsNegative() {
		s.logger.Warn("Wallet creation rejected: negative opening balance",
			slog.Any("balance", req.Balance),
		)
		return 0, repository.ErrInvalidAmount
	}
	if err := s.checkUnique(ctx, req.Iban, req.UserID, req.Name); err != nil {
		return 0, err
	}

	var initialType *models.Type
	if req.Balance.IsPositive() {
		var err error
		initialType, err = s.types.FindByID(ctx, models.TypeInitialBalance)
		if err != nil {
			return 0, err
		}
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	wallet := &models.Wallet{
		UserID:   req.UserID,
		Iban:     req.Iban,
		Name:     req.Name,
		Currency: req.Currency,
		Balance:  req.Balance,
	}
	id, err := tx.InsertWallet(ctx, wallet)
	if err != nil {
		s.logger.Warn("Wallet creation failed",
			slog.String("iban", req.Iban),
			slog.Any("err", err),
		)
		return 0, err
	}

	if initialType != nil {
		entry := newLedgerEntry(initialType, req.Balance, models.InitialBalanceDescription, wallet, wallet)
		if _, err := tx.InsertTransaction(ctx, entry); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("Wallet creation failed: commit error",
			slog.String("iban", req.Iban),
			slog.Any("err", err),
		)
		return 0, err
	}

	s.logger.Info("Wallet created",
		slog.Int64("wallet_id", id),
		slog.String("iban", wallet.Iban),
		slog.Any("balance", wallet.Balance),
	)
	return id, nil
}

// Update applies field changes, re-checking the uniqueness invariants only
// for values that actually changed.
func (s *WalletService) Update(ctx context.Context, req models.WalletRequest) (int64, error) {
	current, err := s.wallets.FindByID(ctx, req.ID)
	if err != nil {
		return 0, err
	}

	if !strings.EqualFold(current.Iban, req.Iban) {
		exists, err := s.wallets.ExistsByIban(ctx, req.Iban)
		if err != nil {
			return 0, err
		}
		if exists {
			return 0, repository.ErrWalletAlreadyExists
		}
	}
	if current.UserID != req.UserID || !strings.EqualFold(current.Name, req.Name) {
		exists, err := s.wallets.ExistsByUserIDAndName(ctx, req.UserID, req.Name)
		if err != nil {
			return 0, err
		}
		if exists {
			return 0, repository.ErrWalletAlreadyExists
		}
	}

	current.UserID = req.UserID
	current.Iban = req.Iban
	current.Name = req.Name
	current.Currency = req.Currency
	if err := s.wallets.Update(ctx, current); err != nil {
		s.logger.Error("Wallet update failed",
			slog.Int64("wallet_id", req.ID),
			slog.Any("err", err),
		)
		return 0, err
	}
	return current.ID, nil
}

// DeleteByID hard-deletes the wallet row. Ledger rows keep their id and
// IBAN snapshots and are never rewritten.
func (s *WalletService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.wallets.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Wallet deleted", slog.Int64("wallet_id", id))
	return nil
}

func (s *WalletService) checkUnique(ctx context.Context, iban string, userID int64, name string) error {
	exists, err := s.wallets.ExistsByIban(ctx, iban)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Warn("Wallet creation rejected: iban in use",
			slog.String("iban", iban),
		)
		return repository.ErrWalletAlreadyExists
	}
	exists, err = s.wallets.ExistsByUserIDAndName(ctx, userID, name)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Warn("Wallet creation rejected: name in use",
			slog.Int64("user_id", userID),
			slog.String("name", name),
		)
		return repository.ErrWalletAlreadyExists
	}
	return nil
}
