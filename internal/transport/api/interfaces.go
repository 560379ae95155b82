package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-account/internal/service"
)

// AccountServicer интерфейс исключительно для моков.
type AccountServicer interface {
	CreateAccount(ctx context.Context, userID int64, initialBalance int64) (*service.AccountResult, error)
	DeleteAccount(ctx context.Context, userID int64, accountNumber string) (*service.AccountResult, error)
	GetAccountsByUserID(ctx context.Context, userID int64) ([]service.AccountResult, error)
}

type TransactionServicer interface {
	UseBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (*service.TransactionResult, error)
	SaveFailedUseTransaction(ctx context.Context, accountNumber string, amount int64) (*service.TransactionResult, error)
	CancelBalance(
		ctx context.Context,
		transactionID string,
		accountNumber string,
		amount int64,
	) (*service.TransactionResult, error)
	SaveFailedCancelTransaction(
		ctx context.Context,
		accountNumber string,
		amount int64,
	) (*service.TransactionResult, error)
	QueryTransaction(ctx context.Context, transactionID string) (*service.TransactionResult, error)
}

// AccountLocker выполняет функцию под распределенным локом счета.
type AccountLocker interface {
	Do(ctx context.Context, accountNumber string, fn func(context.Context) error) error
}
