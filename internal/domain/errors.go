package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrUserNotFound               = errors.New("user not found")
	ErrAccountNotFound            = errors.New("account not found")
	ErrUserAccountMismatch        = errors.New("user and account owner mismatch")
	ErrAccountAlreadyUnregistered = errors.New("account already unregistered")
	ErrAmountExceedBalance        = errors.New("amount exceeds balance")
	ErrMaxAccountPerUser          = errors.New("max account count per user reached")
	ErrBalanceNotEmpty            = errors.New("balance is not empty")

	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrTransactionAccountMismatch = errors.New("transaction and account mismatch")
	ErrCancelMustBeFull           = errors.New("partial cancel is not allowed")
	ErrTooOldToCancel             = errors.New("transaction is too old to cancel")

	ErrInvalidRequest = errors.New("invalid request")
)
