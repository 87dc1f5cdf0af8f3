package test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wallet_api/internal/models"
	"wallet_api/internal/repository"
	"wallet_api/internal/service"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	ibanA = "NO9386011117947"
	ibanB = "NO9386011117948"
)

func transferType() *models.Type {
	return &models.Type{ID: models.TypeTransfer, Name: "Transfer"}
}

func TestTransferFunds_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTypes := NewMockTypeRepository(ctrl)
	mockManager := NewMockTxManager(ctrl)
	mockTx := NewMockWalletTx(ctrl)
	svc := service.NewTransferService(mockTypes, mockManager, testLogger)

	mockTypes.EXPECT().
		FindByID(gomock.Any(), models.TypeTransfer).
		Return(transferType(), nil)
	mockManager.EXPECT().Begin(gomock.Any()).Return(mockTx, nil)
	mockTx.EXPECT().
		LockWalletsByIban(gomock.Any(), []string{ibanA, ibanB}).
		Return([]models.Wallet{
			{ID: 1, Iban: ibanA, Balance: decimal.NewFromInt(100)},
			{ID: 2, Iban: ibanB, Balance: decimal.NewFromInt(5)},
		}, nil)
	mockTx.EXPECT().
		UpdateBalance(gomock.Any(), int64(1), decimal.NewFromInt(60)).
		Return(nil)
	mockTx.EXPECT().
		UpdateBalance(gomock.Any(), int64(2), decimal.NewFromInt(45)).
		Return(nil)
	var entry *models.Transaction
	mockTx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.Transaction) (int64, error) {
			entry = tr
			return 7, nil
		})
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	id, err := svc.TransferFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.NewFromInt(40),
		Description:    "rent",
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NotNil(t, entry)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "rent", entry.Description)
	assert.Equal(t, models.StatusCompleted, entry.Status)
	assert.Equal(t, ibanA, entry.FromIban)
	assert.Equal(t, ibanB, entry.ToIban)
	assert.NotEqual(t, entry.ReferenceNumber.String(), "00000000-0000-0000-0000-000000000000")
}

func TestTransferFunds_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTypes := NewMockTypeRepository(ctrl)
	mockManager := NewMockTxManager(ctrl)
	mockTx := NewMockWalletTx(ctrl)
	svc := service.NewTransferService(mockTypes, mockManager, testLogger)

	mockTypes.EXPECT().
		FindByID(gomock.Any(), models.TypeTransfer).
		Return(transferType(), nil)
	mockManager.EXPECT().Begin(gomock.Any()).Return(mockTx, nil)
	mockTx.EXPECT().
		LockWalletsByIban(gomock.Any(), []string{ibanA, ibanB}).
		Return([]models.Wallet{
			{ID: 1, Iban: ibanA, Balance: decimal.NewFromInt(30)},
			{ID: 2, Iban: ibanB, Balance: decimal.NewFromInt(5)},
		}, nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	_, err := svc.TransferFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.NewFromInt(40),
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.ErrorIs(t, err, repository.ErrInsufficientFunds)
}

func TestTransferFunds_NonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewTransferService(NewMockTypeRepository(ctrl), NewMockTxManager(ctrl), testLogger)

	_, err := svc.TransferFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.Zero,
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.ErrorIs(t, err, repository.ErrInvalidAmount)
}

func TestTransferFunds_SameWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewTransferService(NewMockTypeRepository(ctrl), NewMockTxManager(ctrl), testLogger)

	_, err := svc.TransferFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.NewFromInt(10),
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   "no9386011117947", // same wallet, different case
	})
	assert.ErrorIs(t, err, repository.ErrSameWallet)
}

func TestTransferFunds_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTypes := NewMockTypeRepository(ctrl)
	svc := service.NewTransferService(mockTypes, NewMockTxManager(ctrl), testLogger)

	mockTypes.EXPECT().
		FindByID(gomock.Any(), int64(99)).
		Return(nil, repository.ErrTypeNotFound)

	_, err := svc.TransferFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.NewFromInt(10),
		TypeID:         99,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.ErrorIs(t, err, repository.ErrTypeNotFound)
}

func TestTransferFunds_WalletNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTypes := NewMockTypeRepository(ctrl)
	mockManager := NewMockTxManager(ctrl)
	mockTx := NewMockWalletTx(ctrl)
	svc := service.NewTransferService(mockTypes, mockManager, testLogger)

	mockTypes.EXPECT().
		FindByID(gomock.Any(), models.TypeTransfer).
		Return(transferType(), nil)
	mockManager.EXPECT().Begin(gomock.Any()).Return(mockTx, nil)
	mockTx.EXPECT().
		LockWalletsByIban(gomock.Any(), []string{ibanA, ibanB}).
		Return(nil, repository.ErrWalletNotFound)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	_, err := svc.TransferFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.NewFromInt(10),
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.ErrorIs(t, err, repository.ErrWalletNotFound)
}

// A serialization failure aborts the attempt and the whole unit of work is
// re-run from a fresh lock, never from stale balances.
func TestTransferFunds_RetriesSerializationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTypes := NewMockTypeRepository(ctrl)
	mockManager := NewMockTxManager(ctrl)
	failingTx := NewMockWalletTx(ctrl)
	successTx := NewMockWalletTx(ctrl)
	svc := service.NewTransferService(mockTypes, mockManager, testLogger)

	mockTypes.EXPECT().
		FindByID(gomock.Any(), models.TypeTransfer).
		Return(transferType(), nil)

	gomock.InOrder(
		mockManager.EXPECT().Begin(gomock.Any()).Return(failingTx, nil),
		mockManager.EXPECT().Begin(gomock.Any()).Return(successTx, nil),
	)

	serializationErr := &pgconn.PgError{Code: "40001"}
	failingTx.EXPECT().
		LockWalletsByIban(gomock.Any(), []string{ibanA, ibanB}).
		Return(nil, serializationErr)
	failingTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	successTx.EXPECT().
		LockWalletsByIban(gomock.Any(), []string{ibanA, ibanB}).
		Return([]models.Wallet{
			{ID: 1, Iban: ibanA, Balance: decimal.NewFromInt(100)},
			{ID: 2, Iban: ibanB, Balance: decimal.NewFromInt(0)},
		}, nil)
	successTx.EXPECT().
		UpdateBalance(gomock.Any(), int64(1), decimal.NewFromInt(90)).
		Return(nil)
	successTx.EXPECT().
		UpdateBalance(gomock.Any(), int64(2), decimal.NewFromInt(10)).
		Return(nil)
	successTx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		Return(int64(3), nil)
	successTx.EXPECT().Commit(gomock.Any()).Return(nil)
	successTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	id, err := svc.TransferFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.NewFromInt(10),
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestAddFunds_CollapsesSourceOntoDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTypes := NewMockTypeRepository(ctrl)
	mockManager := NewMockTxManager(ctrl)
	mockTx := NewMockWalletTx(ctrl)
	svc := service.NewTransferService(mockTypes, mockManager, testLogger)

	mockTypes.EXPECT().
		FindByID(gomock.Any(), models.TypeDeposit).
		Return(&models.Type{ID: models.TypeDeposit, Name: "Deposit"}, nil)
	mockManager.EXPECT().Begin(gomock.Any()).Return(mockTx, nil)
	mockTx.EXPECT().
		LockWalletsByIban(gomock.Any(), []string{ibanA, ibanA}).
		Return([]models.Wallet{
			{ID: 1, Iban: ibanA, Balance: decimal.NewFromInt(5)},
		}, nil)
	mockTx.EXPECT().
		UpdateBalance(gomock.Any(), int64(1), decimal.NewFromInt(30)).
		Return(nil)
	var entry *models.Transaction
	mockTx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.Transaction) (int64, error) {
			entry = tr
			return 11, nil
		})
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	id, err := svc.AddFunds(context.Background(), models.TransactionRequest{
		Amount:       decimal.NewFromInt(25),
		TypeID:       models.TypeDeposit,
		ToWalletIban: ibanA,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, entry.FromIban, entry.ToIban)
}

func TestWithdrawFunds_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTypes := NewMockTypeRepository(ctrl)
	mockManager := NewMockTxManager(ctrl)
	mockTx := NewMockWalletTx(ctrl)
	svc := service.NewTransferService(mockTypes, mockManager, testLogger)

	mockTypes.EXPECT().
		FindByID(gomock.Any(), models.TypeWithdrawal).
		Return(&models.Type{ID: models.TypeWithdrawal, Name: "Withdrawal"}, nil)
	mockManager.EXPECT().Begin(gomock.Any()).Return(mockTx, nil)
	mockTx.EXPECT().
		LockWalletsByIban(gomock.Any(), []string{ibanA, ibanA}).
		Return([]models.Wallet{
			{ID: 1, Iban: ibanA, Balance: decimal.NewFromInt(5)},
		}, nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	_, err := svc.WithdrawFunds(context.Background(), models.TransactionRequest{
		Amount:         decimal.NewFromInt(25),
		TypeID:         models.TypeWithdrawal,
		FromWalletIban: ibanA,
	})
	assert.ErrorIs(t, err, repository.ErrInsufficientFunds)
}
