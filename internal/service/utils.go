package service

import (
	"errors"

	"github.com/fsdevblog/groph-account/internal/domain"
)

// notFoundAs подменяет ErrRecordNotFound репозитория конкретной бизнес-ошибкой
// текущего lookup-а. Остальные ошибки проходят как есть.
func notFoundAs(err error, business error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return business
	}
	return err //nolint:wrapcheck
}
