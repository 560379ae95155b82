package domain

import "time"

type AccountUser struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
}

type Account struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AccountUserID  int64
	AccountNumber  string
	Balance        int64
	Status         AccountStatusType
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
}

type Transaction struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	AccountID       int64
	Type            TransactionType
	Result          TransactionResultType
	Amount          int64
	BalanceSnapshot int64
	TransactionID   string
	TransactedAt    time.Time
}

// UseBalance списывает amount с баланса счета. Возвращает ErrAmountExceedBalance,
// если сумма списания превышает текущий баланс.
func (a *Account) UseBalance(amount int64) error {
	if amount > a.Balance {
		return ErrAmountExceedBalance
	}
	a.Balance -= amount
	return nil
}

// CancelBalance возвращает amount на баланс счета (отмена списания).
func (a *Account) CancelBalance(amount int64) error {
	if amount < 0 {
		return ErrInvalidRequest
	}
	a.Balance += amount
	return nil
}

// Unregister закрывает счет. Закрыть можно только активный счет с нулевым балансом.
func (a *Account) Unregister(now time.Time) error {
	if a.Status == AccountStatusUnregistered {
		return ErrAccountAlreadyUnregistered
	}
	if a.Balance > 0 {
		return ErrBalanceNotEmpty
	}
	a.Status = AccountStatusUnregistered
	a.UnregisteredAt = &now
	return nil
}
