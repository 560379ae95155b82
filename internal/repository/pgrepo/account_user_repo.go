package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/pkg/uow"
)

type AccountUserRepository struct {
	conn uow.DBTX
}

func NewAccountUserRepository(conn uow.DBTX) *AccountUserRepository {
	return &AccountUserRepository{conn: conn}
}

func (r *AccountUserRepository) FindByID(ctx context.Context, id int64) (*domain.AccountUser, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT id, created_at, updated_at, name
		FROM account_users
		WHERE id = $1`, id)

	var u domain.AccountUser
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Name); err != nil {
		return nil, convertErr(err, "finding account user by id %d", id)
	}
	return &u, nil
}
