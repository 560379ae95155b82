package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultWaitTimeout  = 5 * time.Second
	DefaultLeaseTimeout = 10 * time.Second

	accountKeyPrefix = "account-lock:"
	releaseTimeout   = 3 * time.Second
)

// AccountLocker оборачивает операцию над счетом в распределенный лок по номеру счета.
// Ключ лока выводится из номера счета, поэтому два запроса к одному счету всегда
// конкурируют за один лок независимо от инстанса сервиса, а операции над разными
// счетами друг друга не блокируют.
type AccountLocker struct {
	provider Provider
	logger   *logrus.Logger
	wait     time.Duration
	lease    time.Duration
}

// NewAccountLocker создает локер. Нулевые таймауты заменяются дефолтными.
func NewAccountLocker(provider Provider, l *logrus.Logger, wait, lease time.Duration) *AccountLocker {
	if wait <= 0 {
		wait = DefaultWaitTimeout
	}
	if lease <= 0 {
		lease = DefaultLeaseTimeout
	}
	return &AccountLocker{
		provider: provider,
		logger:   l,
		wait:     wait,
		lease:    lease,
	}
}

// Do выполняет fn строго внутри захваченного лока счета accountNumber.
// Лок снимается на любом пути выхода, включая ошибку fn. Если лок не захвачен
// за wait timeout, fn не выполняется вовсе и возвращается ErrLockNotAcquired.
func (l *AccountLocker) Do(ctx context.Context, accountNumber string, fn func(context.Context) error) error {
	handle, acquireErr := l.provider.Acquire(ctx, accountKey(accountNumber), l.wait, l.lease)
	if acquireErr != nil {
		return fmt.Errorf("locking account %s: %w", accountNumber, acquireErr)
	}

	defer func() {
		// Снимаем лок даже если контекст запроса уже отменен.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if releaseErr := l.provider.Release(releaseCtx, handle); releaseErr != nil {
			l.logger.WithError(releaseErr).
				WithField("AccountNumber", accountNumber).
				Warn("failed to release account lock, waiting for lease expiry")
		}
	}()

	return fn(ctx)
}

func accountKey(accountNumber string) string {
	return accountKeyPrefix + accountNumber
}
