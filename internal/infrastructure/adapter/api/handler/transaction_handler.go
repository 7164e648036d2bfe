package handler

import (
	"net/http"

	domainerr "github.com/avoronova/balance-ledger/internal/domain/error"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/domain/port/usecase"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/cache"
	"github.com/avoronova/balance-ledger/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles balance-mutating HTTP requests and history reads
type TransactionHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	userCache     *cache.UserCache
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance. The cache
// may be nil when caching is disabled.
func NewTransactionHandler(
	ledgerUseCase usecase.LedgerUseCase,
	userCache *cache.UserCache,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		ledgerUseCase: ledgerUseCase,
		userCache:     userCache,
		logger:        logger,
	}
}

// Deposit handles the POST /api/transactions/deposit/:userId endpoint
func (h *TransactionHandler) Deposit(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid deposit request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	balance, err := h.ledgerUseCase.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		metrics.OperationsFailed.WithLabelValues("deposit").Inc()
		respondError(c, err)
		return
	}

	metrics.OperationsTotal.WithLabelValues("deposit").Inc()
	h.userCache.Invalidate(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: dto.DepositSuccessMessage(balance),
	})
}

// Withdraw handles the POST /api/transactions/withdraw/:userId endpoint
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid withdraw request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	balance, err := h.ledgerUseCase.Withdraw(c.Request.Context(), userID, req.Amount)
	if err != nil {
		metrics.OperationsFailed.WithLabelValues("withdraw").Inc()
		respondError(c, err)
		return
	}

	metrics.OperationsTotal.WithLabelValues("withdraw").Inc()
	h.userCache.Invalidate(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: dto.WithdrawSuccessMessage(balance),
	})
}

// Transfer handles the POST /api/transactions/transfer endpoint
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid transfer request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	err := h.ledgerUseCase.Transfer(c.Request.Context(), req.FromUserID, req.ToUserID, req.Amount)
	if err != nil {
		metrics.OperationsFailed.WithLabelValues("transfer").Inc()
		respondError(c, err)
		return
	}

	metrics.OperationsTotal.WithLabelValues("transfer").Inc()
	h.userCache.Invalidate(c.Request.Context(), req.FromUserID)
	h.userCache.Invalidate(c.Request.Context(), req.ToUserID)
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: dto.MsgTransferSuccess,
	})
}

// GetHistory handles the GET /api/transactions/:userId/history endpoint
func (h *TransactionHandler) GetHistory(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	records, err := h.ledgerUseCase.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error getting transaction history", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserTransactionsResponse(userID, records))
}
