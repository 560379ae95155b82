package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/lock"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// businessErrors - таблица соответствия бизнес-ошибок кодам ответа.
// Коды стабильны: по ним клиенты различают причины отказа.
var businessErrors = []errorMapping{
	{domain.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND"},
	{domain.ErrTransactionNotFound, http.StatusNotFound, "TRANSACTION_NOT_FOUND"},
	{domain.ErrUserAccountMismatch, http.StatusBadRequest, "USER_ACCOUNT_UN_MATCH"},
	{domain.ErrTransactionAccountMismatch, http.StatusBadRequest, "TRANSACTION_ACCOUNT_UN_MATCH"},
	{domain.ErrAccountAlreadyUnregistered, http.StatusBadRequest, "ACCOUNT_ALREADY_UNREGISTERED"},
	{domain.ErrAmountExceedBalance, http.StatusBadRequest, "AMOUNT_EXCEED_BALANCE"},
	{domain.ErrCancelMustBeFull, http.StatusBadRequest, "CANCEL_MUST_FULLY"},
	{domain.ErrTooOldToCancel, http.StatusBadRequest, "TOO_OLD_ORDER_TO_CANCEL"},
	{domain.ErrMaxAccountPerUser, http.StatusBadRequest, "MAX_ACCOUNT_PER_USER_10"},
	{domain.ErrBalanceNotEmpty, http.StatusBadRequest, "BALANCE_NOT_EMPTY"},
	{domain.ErrInvalidRequest, http.StatusBadRequest, "INVALID_REQUEST"},
}

// isBusinessErr отличает бизнес-отказ от инфраструктурной ошибки: только для
// бизнес-отказов пишется запись о неудачной транзакции.
func isBusinessErr(err error) bool {
	for _, m := range businessErrors {
		if errors.Is(err, m.err) {
			return true
		}
	}
	return false
}

// respondError мапит ошибку на http статус и ErrorResponse. Ошибка захвата лока
// отдается отдельным кодом: бизнес-логика не выполнялась и запрос можно повторить.
func respondError(c *gin.Context, err error) {
	for _, m := range businessErrors {
		if errors.Is(err, m.err) {
			c.AbortWithStatusJSON(m.status, ErrorResponse{
				ErrorCode:    m.code,
				ErrorMessage: m.err.Error(),
			})
			return
		}
	}

	if errors.Is(err, lock.ErrLockNotAcquired) {
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{
			ErrorCode:    "ACCOUNT_TRANSACTION_LOCK",
			ErrorMessage: "account is locked by another transaction",
		})
		return
	}

	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}
