package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet_api/internal/handlers"
	"wallet_api/internal/models"
	"wallet_api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newWalletRouter(wallets handlers.WalletService, transfers handlers.TransferService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.NewWalletHTTPHandler(wallets, transfers).RegisterRoutes(r)
	return r
}

func newTransactionRouter(transactions handlers.TransactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.NewTransactionHTTPHandler(transactions).RegisterRoutes(r)
	return r
}

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleFindWalletByID_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWallets := NewMockWalletService(ctrl)
	r := newWalletRouter(mockWallets, NewMockTransferService(ctrl))

	mockWallets.EXPECT().
		FindByID(gomock.Any(), int64(1)).
		Return(&models.Wallet{ID: 1, UserID: 2, Iban: ibanA, Name: "Savings", Currency: "EUR", Balance: decimal.NewFromInt(50)}, nil)

	w := performJSON(r, http.MethodGet, "/api/v1/wallets/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.WalletResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, ibanA, resp.Iban)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(50)))
}

func TestHandleFindWalletByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWallets := NewMockWalletService(ctrl)
	r := newWalletRouter(mockWallets, NewMockTransferService(ctrl))

	mockWallets.EXPECT().
		FindByID(gomock.Any(), int64(99)).
		Return(nil, repository.ErrWalletNotFound)

	w := performJSON(r, http.MethodGet, "/api/v1/wallets/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleFindWalletByID_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newWalletRouter(NewMockWalletService(ctrl), NewMockTransferService(ctrl))

	w := performJSON(r, http.MethodGet, "/api/v1/wallets/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFindAllWallets_EmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWallets := NewMockWalletService(ctrl)
	r := newWalletRouter(mockWallets, NewMockTransferService(ctrl))

	mockWallets.EXPECT().
		FindAll(gomock.Any(), models.PageRequest{Page: 4, Size: 10, Sort: "id"}).
		Return(nil, repository.ErrRecordNotFound)

	w := performJSON(r, http.MethodGet, "/api/v1/wallets?page=4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCreateWallet_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWallets := NewMockWalletService(ctrl)
	r := newWalletRouter(mockWallets, NewMockTransferService(ctrl))

	mockWallets.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(int64(11), nil)

	w := performJSON(r, http.MethodPost, "/api/v1/wallets", models.WalletRequest{
		UserID:   2,
		Iban:     ibanA,
		Name:     "Savings",
		Currency: "EUR",
		Balance:  decimal.NewFromInt(50),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.CommandResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
}

func TestHandleCreateWallet_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newWalletRouter(NewMockWalletService(ctrl), NewMockTransferService(ctrl))

	w := performJSON(r, http.MethodPost, "/api/v1/wallets", models.WalletRequest{
		UserID:   2,
		Iban:     "short",
		Name:     "Savings",
		Currency: "EUR",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleCreateWallet_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWallets := NewMockWalletService(ctrl)
	r := newWalletRouter(mockWallets, NewMockTransferService(ctrl))

	mockWallets.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(int64(0), repository.ErrWalletAlreadyExists)

	w := performJSON(r, http.MethodPost, "/api/v1/wallets", models.WalletRequest{
		UserID:   2,
		Iban:     ibanA,
		Name:     "Savings",
		Currency: "EUR",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleDeleteWallet_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWallets := NewMockWalletService(ctrl)
	r := newWalletRouter(mockWallets, NewMockTransferService(ctrl))

	mockWallets.EXPECT().
		DeleteByID(gomock.Any(), int64(7)).
		Return(nil)

	w := performJSON(r, http.MethodDelete, "/api/v1/wallets/7", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleTransfer_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransfers := NewMockTransferService(ctrl)
	r := newWalletRouter(NewMockWalletService(ctrl), mockTransfers)

	mockTransfers.EXPECT().
		TransferFunds(gomock.Any(), gomock.Any()).
		Return(int64(21), nil)

	w := performJSON(r, http.MethodPost, "/api/v1/wallets/transfer", models.TransactionRequest{
		Amount:         decimal.NewFromInt(10),
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.CommandResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(21), resp.ID)
}

func TestHandleTransfer_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransfers := NewMockTransferService(ctrl)
	r := newWalletRouter(NewMockWalletService(ctrl), mockTransfers)

	mockTransfers.EXPECT().
		TransferFunds(gomock.Any(), gomock.Any()).
		Return(int64(0), repository.ErrInsufficientFunds)

	w := performJSON(r, http.MethodPost, "/api/v1/wallets/transfer", models.TransactionRequest{
		Amount:         decimal.NewFromInt(10),
		TypeID:         models.TypeTransfer,
		FromWalletIban: ibanA,
		ToWalletIban:   ibanB,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWithdrawFunds_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransfers := NewMockTransferService(ctrl)
	r := newWalletRouter(NewMockWalletService(ctrl), mockTransfers)

	mockTransfers.EXPECT().
		WithdrawFunds(gomock.Any(), gomock.Any()).
		Return(int64(22), nil)

	w := performJSON(r, http.MethodPost, "/api/v1/wallets/withdrawFunds", models.TransactionRequest{
		Amount:         decimal.NewFromInt(5),
		TypeID:         models.TypeWithdrawal,
		FromWalletIban: ibanA,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandleFindTransactionByReference_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransactions := NewMockTransactionService(ctrl)
	r := newTransactionRouter(mockTransactions)

	ref := uuid.New()
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	mockTransactions.EXPECT().
		FindByReferenceNumber(gomock.Any(), ref).
		Return(&models.Transaction{
			ID:              3,
			ReferenceNumber: ref,
			Amount:          decimal.NewFromInt(10),
			TypeID:          models.TypeTransfer,
			TypeName:        "Transfer",
			Status:          models.StatusCompleted,
			FromWalletID:    1,
			FromIban:        ibanA,
			ToWalletID:      2,
			ToIban:          ibanB,
			CreatedAt:       created,
		}, nil)

	w := performJSON(r, http.MethodGet, "/api/v1/transactions/references/"+ref.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TransactionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ref, resp.ReferenceNumber)
	assert.Equal(t, "Transfer", resp.Type)
	assert.Equal(t, "2025-03-14 09:30:00", resp.CreatedAt)
}

func TestHandleFindTransactionByReference_BadReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newTransactionRouter(NewMockTransactionService(ctrl))

	w := performJSON(r, http.MethodGet, "/api/v1/transactions/references/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFindTransactionsByUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTransactions := NewMockTransactionService(ctrl)
	r := newTransactionRouter(mockTransactions)

	mockTransactions.EXPECT().
		FindAllByUserID(gomock.Any(), int64(8)).
		Return(nil, repository.ErrRecordNotFound)

	w := performJSON(r, http.MethodGet, "/api/v1/transactions/users/8", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
