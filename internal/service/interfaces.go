package service

import (
	"context"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// IDGenerator генерирует внешние идентификаторы. За интерфейсом, чтобы в тестах
// подставлять детерминированные значения.
type IDGenerator interface {
	// TransactionID возвращает непрозрачный внешний идентификатор транзакции.
	TransactionID() string
	// AccountNumber возвращает случайный 10-значный номер счета.
	AccountNumber() string
}

type AccountUserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.AccountUser, error)
}

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.AccountCreate) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	Save(ctx context.Context, account domain.Account) (*domain.Account, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}
