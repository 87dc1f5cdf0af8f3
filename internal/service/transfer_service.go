package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"wallet_api/internal/models"
	"wallet_api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transfer_service.go -destination=../../test/mock_transfer_deps.go -package=test TypeRepository,TxManager

type TypeRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Type, error)
}

type TxManager interface {
	Begin(ctx context.Context) (repository.WalletTx, error)
}

// TransferService is the transfer orchestrator: transfers, deposits and
// withdrawals all run the same lock-mutate-persist unit of work and differ
// only in which legs touch a balance.
type TransferService struct {
	types      TypeRepository
	tx         TxManager
	logger     *slog.Logger
	maxRetries int
}

func NewTransferService(types TypeRepository, tx TxManager, logger *slog.Logger) *TransferService {
	return &TransferService{
		types:      types,
		tx:         tx,
		logger:     logger,
		maxRetries: 3,
	}
}

// TransferFunds debits the source wallet and credits the destination.
func (s *TransferService) TransferFunds(ctx context.Context, req models.TransactionRequest) (int64, error) {
	return s.execute(ctx, req, true, true)
}

// AddFunds credits the destination wallet only; the source reference is
// nominal.
func (s *TransferService) AddFunds(ctx context.Context, req models.TransactionRequest) (int64, error) {
	return s.execute(ctx, req, false, true)
}

// WithdrawFunds debits the source wallet only.
func (s *TransferService) WithdrawFunds(ctx context.Context, req models.TransactionRequest) (int64, error) {
	return s.execute(ctx, req, true, false)
}

func (s *TransferService) execute(ctx context.Context, req models.TransactionRequest, debit, credit bool) (int64, error) {
	if !req.Amount.IsPositive() {
		s.logger.Warn("Transfer rejected: non-positive amount",
			slog.Any("amount", req.Amount),
		)
		return 0, repository.ErrInvalidAmount
	}

	from, to := req.FromWalletIban, req.ToWalletIban
	// A pure deposit or withdrawal names one wallet; the other leg
	// collapses onto it.
	if !debit && from == "" {
		from = to
	}
	if !credit && to == "" {
		to = from
	}
	if debit && credit && strings.EqualFold(from, to) {
		s.logger.Warn("Transfer rejected: same source and destination",
			slog.String("iban", from),
		)
		return 0, repository.ErrSameWallet
	}

	transferType, err := s.types.FindByID(ctx, req.TypeID)
	if err != nil {
		s.logger.Warn("Transfer rejected: unknown type",
			slog.Int64("type_id", req.TypeID),
		)
		return 0, err
	}

	var lastErr error
	for i := 0; i < s.maxRetries; i++ {
		id, err := s.run(ctx, transferType, req.Amount, req.Description, from, to, debit, credit)
		if err == nil {
			return id, nil
		}
		if isRetryableError(err) {
			s.logger.Warn("Retrying transfer",
				slog.String("from_iban", from),
				slog.String("to_iban", to),
				slog.Int("attempt", i+1),
				slog.Any("err", err),
			)
			time.Sleep(time.Duration(1<<i) * 10 * time.Millisecond)
			lastErr = err
			continue
		}
		if errors.Is(err, repository.ErrWalletNotFound) || errors.Is(err, repository.ErrInsufficientFunds) {
			s.logger.Warn("Transfer failed",
				slog.String("from_iban", from),
				slog.String("to_iban", to),
				slog.Any("amount", req.Amount),
				slog.Any("err", err),
			)
			return 0, err
		}
		s.logger.Error("Transfer failed: storage error",
			slog.String("from_iban", from),
			slog.String("to_iban", to),
			slog.Any("err", err),
		)
		return 0, err
	}
	s.logger.Error("Transfer failed after retries",
		slog.String("from_iban", from),
		slog.String("to_iban", to),
		slog.Any("err", lastErr),
	)
	return 0, lastErr
}

// run executes one attempt as a single unit of work. Each attempt locks and
// re-validates from scratch, so nothing stale survives a retry.
func (s *TransferService) run(ctx context.Context, transferType *models.Type, amount decimal.Decimal,
	description, from, to string, debit, credit bool) (int64, error) {
	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	wallets, err := tx.LockWalletsByIban(ctx, []string{from, to})
	if err != nil {
		return 0, err
	}
	source := walletByIban(wallets, from)
	dest := walletByIban(wallets, to)
	if source == nil || dest == nil {
		return 0, repository.ErrWalletNotFound
	}

	if debit {
		if source.Balance.LessThan(amount) {
			return 0, repository.ErrInsufficientFunds
		}
		source.Balance = source.Balance.Sub(amount)
		if err := tx.UpdateBalance(ctx, source.ID, source.Balance); err != nil {
			return 0, err
		}
	}
	if credit {
		dest.Balance = dest.Balance.Add(amount)
		if err := tx.UpdateBalance(ctx, dest.ID, dest.Balance); err != nil {
			return 0, err
		}
	}

	entry := newLedgerEntry(transferType, amount, description, source, dest)
	id, err := tx.InsertTransaction(ctx, entry)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	s.logger.Info("Transfer committed",
		slog.String("from_iban", source.Iban),
		slog.String("to_iban", dest.Iban),
		slog.Any("amount", amount),
		slog.String("type", transferType.Name),
		slog.String("reference_number", entry.ReferenceNumber.String()),
	)
	return id, nil
}

func walletByIban(wallets []models.Wallet, iban string) *models.Wallet {
	for i := range wallets {
		if strings.EqualFold(wallets[i].Iban, iban) {
			return &wallets[i]
		}
	}
	return nil
}

// newLedgerEntry builds the single ledger row every committed operation
// produces, including the initial-balance entry written at wallet creation.
func newLedgerEntry(transferType *models.Type, amount decimal.Decimal, description string,
	from, to *models.Wallet) *models.Transaction {
	return &models.Transaction{
		ReferenceNumber: uuid.New(),
		Amount:          amount,
		Description:     description,
		TypeID:          transferType.ID,
		TypeName:        transferType.Name,
		Status:          models.StatusCompleted,
		FromWalletID:    from.ID,
		FromIban:        from.Iban,
		ToWalletID:      to.ID,
		ToIban:          to.Iban,
		CreatedAt:       time.Now().UTC(),
	}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
