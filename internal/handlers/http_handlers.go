package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"wallet_api/internal/models"
	"wallet_api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=http_handlers.go -destination=../../test/mock_services.go -package=test WalletService,TransferService,TransactionService

type WalletService interface {
	FindByID(ctx context.Context, id int64) (*models.Wallet, error)
	FindByIban(ctx context.Context, iban string) (*models.Wallet, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Wallet, error)
	FindAll(ctx context.Context, page models.PageRequest) ([]models.Wallet, error)
	Create(ctx context.Context, req models.WalletRequest) (int64, error)
	Update(ctx context.Context, req models.WalletRequest) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TransferService interface {
	TransferFunds(ctx context.Context, req models.TransactionRequest) (int64, error)
	AddFunds(ctx context.Context, req models.TransactionRequest) (int64, error)
	WithdrawFunds(ctx context.Context, req models.TransactionRequest) (int64, error)
}

type TransactionService interface {
	FindByID(ctx context.Context, id int64) (*models.Transaction, error)
	FindByReferenceNumber(ctx context.Context, ref uuid.UUID) (*models.Transaction, error)
	FindAllByUserID(ctx context.Context, userID int64) ([]models.Transaction, error)
	FindAll(ctx context.Context, page models.PageRequest) ([]models.Transaction, error)
}

type WalletHTTPHandler struct {
	wallets   WalletService
	transfers TransferService
}

func NewWalletHTTPHandler(wallets WalletService, transfers TransferService) *WalletHTTPHandler {
	return &WalletHTTPHandler{wallets: wallets, transfers: transfers}
}

func (h *WalletHTTPHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1/wallets")
	{
		v1.GET("/:id", h.HandleFindByID)
		v1.GET("/iban/:iban", h.HandleFindByIban)
		v1.GET("/users/:userId", h.HandleFindByUserID)
		v1.GET("", h.HandleFindAll)
		v1.POST("", h.HandleCreate)
		v1.PUT("", h.HandleUpdate)
		v1.DELETE("/:id", h.HandleDelete)
		v1.POST("/transfer", h.HandleTransferFunds)
		v1.POST("/addFunds", h.HandleAddFunds)
		v1.POST("/withdrawFunds", h.HandleWithdrawFunds)
	}
}

func (h *WalletHTTPHandler) HandleFindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet id"})
		return
	}
	wallet, err := h.wallets.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToWalletResponse(wallet))
}

func (h *WalletHTTPHandler) HandleFindByIban(c *gin.Context) {
	wallet, err := h.wallets.FindByIban(c.Request.Context(), c.Param("iban"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToWalletResponse(wallet))
}

func (h *WalletHTTPHandler) HandleFindByUserID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	wallets, err := h.wallets.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToWalletResponses(wallets))
}

func (h *WalletHTTPHandler) HandleFindAll(c *gin.Context) {
	var page models.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paging parameters", "details": err.Error()})
		return
	}
	wallets, err := h.wallets.FindAll(c.Request.Context(), page)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToWalletResponses(wallets))
}

func (h *WalletHTTPHandler) HandleCreate(c *gin.Context) {
	var req models.WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	id, err := h.wallets.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.CommandResponse{ID: id})
}

func (h *WalletHTTPHandler) HandleUpdate(c *gin.Context) {
	var req models.WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	id, err := h.wallets.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.CommandResponse{ID: id})
}

func (h *WalletHTTPHandler) HandleDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet id"})
		return
	}
	if err := h.wallets.DeleteByID(c.Request.Context(), id); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WalletHTTPHandler) HandleTransferFunds(c *gin.Context) {
	h.handleTransfer(c, h.transfers.TransferFunds)
}

func (h *WalletHTTPHandler) HandleAddFunds(c *gin.Context) {
	h.handleTransfer(c, h.transfers.AddFunds)
}

func (h *WalletHTTPHandler) HandleWithdrawFunds(c *gin.Context) {
	h.handleTransfer(c, h.transfers.WithdrawFunds)
}

func (h *WalletHTTPHandler) handleTransfer(c *gin.Context,
	op func(ctx context.Context, req models.TransactionRequest) (int64, error)) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	id, err := op(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.CommandResponse{ID: id})
}

type TransactionHTTPHandler struct {
	transactions TransactionService
}

func NewTransactionHTTPHandler(transactions TransactionService) *TransactionHTTPHandler {
	return &TransactionHTTPHandler{transactions: transactions}
}

func (h *TransactionHTTPHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1/transactions")
	{
		v1.GET("/:id", h.HandleFindByID)
		v1.GET("/references/:ref", h.HandleFindByReferenceNumber)
		v1.GET("/users/:userId", h.HandleFindAllByUserID)
		v1.GET("", h.HandleFindAll)
	}
}

func (h *TransactionHTTPHandler) HandleFindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	transaction, err := h.transactions.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToTransactionResponse(transaction))
}

func (h *TransactionHTTPHandler) HandleFindByReferenceNumber(c *gin.Context) {
	ref, err := uuid.Parse(c.Param("ref"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference number"})
		return
	}
	transaction, err := h.transactions.FindByReferenceNumber(c.Request.Context(), ref)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToTransactionResponse(transaction))
}

func (h *TransactionHTTPHandler) HandleFindAllByUserID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	transactions, err := h.transactions.FindAllByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToTransactionResponses(transactions))
}

func (h *TransactionHTTPHandler) HandleFindAll(c *gin.Context) {
	var page models.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paging parameters", "details": err.Error()})
		return
	}
	transactions, err := h.transactions.FindAll(c.Request.Context(), page)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToTransactionResponses(transactions))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, repository.ErrWalletNotFound),
		errors.Is(err, repository.ErrTransactionNotFound),
		errors.Is(err, repository.ErrTypeNotFound),
		errors.Is(err, repository.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrWalletAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInsufficientFunds),
		errors.Is(err, repository.ErrInvalidAmount),
		errors.Is(err, repository.ErrSameWallet):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
