package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-account/internal/service"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	svs    TransactionServicer
	locker AccountLocker
}

func NewTransactionHandler(svs TransactionServicer, locker AccountLocker) *TransactionHandler {
	return &TransactionHandler{
		svs:    svs,
		locker: locker,
	}
}

type UseBalanceParams struct {
	UserID        int64  `json:"userId" binding:"required,min=1"`
	AccountNumber string `json:"accountNumber" binding:"required,len=10,numeric"`
	Amount        int64  `json:"amount" binding:"required,min=1"`
}

type TransactionResponse struct {
	AccountNumber     string `json:"accountNumber"`
	TransactionType   string `json:"transactionType"`
	TransactionResult string `json:"transactionResult"`
	TransactionID     string `json:"transactionId"`
	Amount            int64  `json:"amount"`
	BalanceSnapshot   int64  `json:"balanceSnapshot"`
	TransactedAt      string `json:"transactedAt"`
}

func newTransactionResponse(r *service.TransactionResult) *TransactionResponse {
	return &TransactionResponse{
		AccountNumber:     r.AccountNumber,
		TransactionType:   string(r.Type),
		TransactionResult: string(r.Result),
		TransactionID:     r.TransactionID,
		Amount:            r.Amount,
		BalanceSnapshot:   r.BalanceSnapshot,
		TransactedAt:      r.TransactedAt.Format(time.RFC3339),
	}
}

// Use обрабатывает списание с баланса. Тело операции выполняется строго под локом
// счета; при бизнес-отказе до ответа клиенту пишется запись USE/FAIL.
func (h *TransactionHandler) Use(c *gin.Context) {
	var params UseBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var result *service.TransactionResult
	err := h.locker.Do(reqCtx, params.AccountNumber, func(ctx context.Context) error {
		var useErr error
		result, useErr = h.svs.UseBalance(ctx, params.UserID, params.AccountNumber, params.Amount)
		if useErr != nil && isBusinessErr(useErr) {
			// Аудит отклоненной попытки. Неудача записи не должна затереть
			// исходную бизнес-ошибку.
			if _, recordErr := h.svs.SaveFailedUseTransaction(ctx, params.AccountNumber, params.Amount); recordErr != nil {
				_ = c.Error(recordErr).SetType(gin.ErrorTypePrivate)
			}
		}
		return useErr
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(result))
}

type CancelBalanceParams struct {
	TransactionID string `json:"transactionId" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required,len=10,numeric"`
	Amount        int64  `json:"amount" binding:"required,min=1"`
}

// Cancel обрабатывает отмену списания. Зеркало Use: лок по счету, при
// бизнес-отказе пишется запись CANCEL/FAIL.
func (h *TransactionHandler) Cancel(c *gin.Context) {
	var params CancelBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var result *service.TransactionResult
	err := h.locker.Do(reqCtx, params.AccountNumber, func(ctx context.Context) error {
		var cancelErr error
		result, cancelErr = h.svs.CancelBalance(ctx, params.TransactionID, params.AccountNumber, params.Amount)
		if cancelErr != nil && isBusinessErr(cancelErr) {
			if _, recordErr := h.svs.SaveFailedCancelTransaction(ctx, params.AccountNumber, params.Amount); recordErr != nil {
				_ = c.Error(recordErr).SetType(gin.ErrorTypePrivate)
			}
		}
		return cancelErr
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(result))
}

// Query возвращает транзакцию по внешнему идентификатору. Чтение без лока.
func (h *TransactionHandler) Query(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.QueryTransaction(reqCtx, transactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(result))
}
