package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-account/internal/domain"
)

type TransactionCreate struct {
	AccountID       int64
	Type            domain.TransactionType
	Result          domain.TransactionResultType
	Amount          int64
	BalanceSnapshot int64
	TransactionID   string
	TransactedAt    time.Time
}
