package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/avoronova/balance-ledger/internal/domain/error"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// parseUserID extracts and validates the userId path parameter
func parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}

// respondError maps domain errors to HTTP status codes and user-facing
// messages. Raw storage error text never reaches the client.
func respondError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := dto.MsgInternalError

	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount):
		statusCode = http.StatusBadRequest
		message = dto.MsgInvalidAmount
	case errors.Is(err, domainerr.ErrSameUserTransfer):
		statusCode = http.StatusBadRequest
		message = dto.MsgSameUserTransfer
	case errors.Is(err, domainerr.ErrInsufficientFunds):
		statusCode = http.StatusBadRequest
		message = dto.MsgInsufficientFunds
	case errors.Is(err, domainerr.ErrSenderNotFound):
		statusCode = http.StatusNotFound
		message = dto.MsgSenderNotFound
	case errors.Is(err, domainerr.ErrRecipientNotFound):
		statusCode = http.StatusNotFound
		message = dto.MsgRecipientNotFound
	case errors.Is(err, domainerr.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = dto.MsgUserNotFound
	case errors.Is(err, domainerr.ErrDuplicateName):
		statusCode = http.StatusConflict
		message = dto.MsgUserAlreadyExists
	case errors.Is(err, domainerr.ErrInvalidUserID), errors.Is(err, domainerr.ErrInvalidUserName):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrStorage):
		statusCode = http.StatusInternalServerError
		message = dto.MsgDatabaseError
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
