package handler

import (
	"net/http"

	domainerr "github.com/avoronova/balance-ledger/internal/domain/error"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/domain/port/usecase"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/cache"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	userCache   *cache.UserCache
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance. The cache may be nil
// when caching is disabled.
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	userCache *cache.UserCache,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		userCache:   userCache,
		logger:      logger,
	}
}

// CreateUser handles the POST /api/users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid create user request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), req.Name)
	if err != nil {
		h.logger.Error("Error creating user", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetUser handles the GET /api/users/:userId endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if user, found := h.userCache.Get(c.Request.Context(), userID); found {
		c.JSON(http.StatusOK, dto.NewUserResponse(user))
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error getting user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	h.userCache.Set(c.Request.Context(), user)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
