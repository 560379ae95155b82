package service

import (
	"time"

	"github.com/fsdevblog/groph-account/internal/domain"
)

// TransactionResult - результат операции над балансом. Наружу уходит только
// внешний transaction id, внутренние id таблиц не раскрываются.
type TransactionResult struct {
	AccountNumber   string
	TransactionID   string
	Type            domain.TransactionType
	Result          domain.TransactionResultType
	Amount          int64
	BalanceSnapshot int64
	TransactedAt    time.Time
}

type AccountResult struct {
	UserID         int64
	AccountNumber  string
	Balance        int64
	Status         domain.AccountStatusType
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
}

func newTransactionResult(t *domain.Transaction, accountNumber string) *TransactionResult {
	return &TransactionResult{
		AccountNumber:   accountNumber,
		TransactionID:   t.TransactionID,
		Type:            t.Type,
		Result:          t.Result,
		Amount:          t.Amount,
		BalanceSnapshot: t.BalanceSnapshot,
		TransactedAt:    t.TransactedAt,
	}
}

func newAccountResult(a *domain.Account) *AccountResult {
	return &AccountResult{
		UserID:         a.AccountUserID,
		AccountNumber:  a.AccountNumber,
		Balance:        a.Balance,
		Status:         a.Status,
		RegisteredAt:   a.RegisteredAt,
		UnregisteredAt: a.UnregisteredAt,
	}
}
