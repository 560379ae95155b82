package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const acquireRetryInterval = 50 * time.Millisecond

// releaseScript удаляет ключ только если его значение совпадает с токеном держателя.
// Сравнение и удаление должны быть атомарными, отсюда lua.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Connect создает клиент redis и проверяет соединение пингом.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// RedisProvider реализует Provider поверх redis: SET NX PX со случайным токеном
// в качестве значения и lease в качестве TTL ключа.
type RedisProvider struct {
	client *redis.Client
}

func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

// Acquire пытается захватить лок опросом с небольшим случайным разбросом интервала,
// пока не истечет wait. Захват не очередь: порядок между ожидающими не гарантирован.
func (p *RedisProvider) Acquire(
	ctx context.Context,
	key string,
	wait, lease time.Duration,
) (*Handle, error) {
	token, tokenErr := randomToken()
	if tokenErr != nil {
		return nil, tokenErr
	}

	deadline := time.Now().Add(wait)
	for {
		ok, setErr := p.client.SetNX(ctx, key, token, lease).Result()
		if setErr != nil {
			return nil, fmt.Errorf("[lock] acquiring %s: %w", key, setErr)
		}
		if ok {
			return &Handle{Key: key, Token: token}, nil
		}

		retryIn := time.Duration(jitter(float64(acquireRetryInterval), 0.15, 0.15))
		if time.Now().Add(retryIn).After(deadline) {
			return nil, ErrLockNotAcquired
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		case <-time.After(retryIn):
		}
	}
}

// Release снимает лок. Если ключа уже нет или его перехватил другой держатель
// (истек lease), снимать нечего - это не ошибка.
func (p *RedisProvider) Release(ctx context.Context, handle *Handle) error {
	if err := releaseScript.Run(ctx, p.client, []string{handle.Key}, handle.Token).Err(); err != nil {
		return fmt.Errorf("[lock] releasing %s: %w", handle.Key, err)
	}
	return nil
}

func randomToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("[lock] generating token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
