package lock

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrLockNotAcquired возвращается когда лок не удалось захватить за wait timeout.
	// Отличается от бизнес-ошибок: операция не начинала выполняться и ее можно повторить.
	ErrLockNotAcquired = errors.New("[lock] not acquired within wait timeout")
)

// Handle идентифицирует захваченный лок. Токен позволяет снять только свой лок:
// чужой лок (перехваченный после истечения lease) снят не будет.
type Handle struct {
	Key   string
	Token string
}

// Provider - распределенный лок по строковому ключу.
//
// wait ограничивает время ожидания захвата, lease - максимальное время удержания
// (страховка от упавшего держателя, лок истекает сам).
type Provider interface {
	Acquire(ctx context.Context, key string, wait, lease time.Duration) (*Handle, error)
	Release(ctx context.Context, handle *Handle) error
}
