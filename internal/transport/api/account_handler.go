package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	svs AccountServicer
}

func NewAccountHandler(svs AccountServicer) *AccountHandler {
	return &AccountHandler{
		svs: svs,
	}
}

type CreateAccountParams struct {
	UserID         int64 `json:"userId" binding:"required,min=1"`
	InitialBalance int64 `json:"initialBalance" binding:"min=0"`
}

type AccountCreatedResponse struct {
	UserID        int64  `json:"userId"`
	AccountNumber string `json:"accountNumber"`
	RegisteredAt  string `json:"registeredAt"`
}

func (h *AccountHandler) Create(c *gin.Context) {
	var params CreateAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.CreateAccount(reqCtx, params.UserID, params.InitialBalance)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &AccountCreatedResponse{
		UserID:        result.UserID,
		AccountNumber: result.AccountNumber,
		RegisteredAt:  result.RegisteredAt.Format(time.RFC3339),
	})
}

type DeleteAccountParams struct {
	UserID        int64  `json:"userId" binding:"required,min=1"`
	AccountNumber string `json:"accountNumber" binding:"required,len=10,numeric"`
}

type AccountDeletedResponse struct {
	UserID         int64  `json:"userId"`
	AccountNumber  string `json:"accountNumber"`
	UnregisteredAt string `json:"unRegisteredAt"`
}

func (h *AccountHandler) Delete(c *gin.Context) {
	var params DeleteAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.DeleteAccount(reqCtx, params.UserID, params.AccountNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	response := &AccountDeletedResponse{
		UserID:        result.UserID,
		AccountNumber: result.AccountNumber,
	}
	if result.UnregisteredAt != nil {
		response.UnregisteredAt = result.UnregisteredAt.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, response)
}

type AccountResponseItem struct {
	AccountNumber string `json:"accountNumber"`
	Balance       int64  `json:"balance"`
}

func (h *AccountHandler) Index(c *gin.Context) {
	userID, parseErr := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if parseErr != nil || userID < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			ErrorCode:    "INVALID_REQUEST",
			ErrorMessage: "user_id must be a positive integer",
		})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	results, err := h.svs.GetAccountsByUserID(reqCtx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]AccountResponseItem, len(results))
	for i, result := range results {
		response[i] = AccountResponseItem{
			AccountNumber: result.AccountNumber,
			Balance:       result.Balance,
		}
	}
	c.JSON(http.StatusOK, response)
}
