package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/repository/repoargs"
	"github.com/fsdevblog/groph-account/pkg/uow"
)

const accountColumns = `id, created_at, updated_at, account_user_id, account_number,
	balance, status, registered_at, unregistered_at`

type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

func (r *AccountRepository) Create(
	ctx context.Context,
	args repoargs.AccountCreate,
) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO accounts (account_user_id, account_number, balance, status, registered_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+accountColumns,
		args.AccountUserID, args.AccountNumber, args.Balance, domain.AccountStatusInUse, args.RegisteredAt)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating account %s", args.AccountNumber)
	}
	return account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1`, id)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by id %d", id)
	}
	return account, nil
}

func (r *AccountRepository) FindByAccountNumber(
	ctx context.Context,
	accountNumber string,
) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE account_number = $1`, accountNumber)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by number %s", accountNumber)
	}
	return account, nil
}

// Save обновляет изменяемые поля счета (баланс, статус, дата закрытия).
// Номер счета и владелец после создания не меняются.
func (r *AccountRepository) Save(ctx context.Context, account domain.Account) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE accounts
		SET balance = $2, status = $3, unregistered_at = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns,
		account.ID, account.Balance, account.Status, account.UnregisteredAt)

	updated, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "saving account %s", account.AccountNumber)
	}
	return updated, nil
}

// CountByUserID считает все счета юзера, включая закрытые.
func (r *AccountRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT count(*) FROM accounts WHERE account_user_id = $1`, userID)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, convertErr(err, "counting accounts of user %d", userID)
	}
	return count, nil
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE account_user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, convertErr(err, "getting accounts of user %d", userID)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting accounts of user %d", userID)
		}
		accounts = append(accounts, *account)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting accounts of user %d", userID)
	}
	return accounts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.AccountUserID, &a.AccountNumber,
		&a.Balance, &a.Status, &a.RegisteredAt, &a.UnregisteredAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
