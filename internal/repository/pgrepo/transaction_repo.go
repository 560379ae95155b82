package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/repository/repoargs"
	"github.com/fsdevblog/groph-account/pkg/uow"
)

const transactionColumns = `id, created_at, updated_at, account_id, type, result,
	amount, balance_snapshot, transaction_id, transacted_at`

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// Create добавляет запись транзакции. Записи append-only: обновления и удаления
// на этой таблице не предусмотрены.
func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO transactions (account_id, type, result, amount, balance_snapshot, transaction_id, transacted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+transactionColumns,
		args.AccountID, args.Type, args.Result, args.Amount,
		args.BalanceSnapshot, args.TransactionID, args.TransactedAt)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for account %d", args.Type, args.AccountID)
	}
	return transaction, nil
}

func (r *TransactionRepository) FindByTransactionID(
	ctx context.Context,
	transactionID string,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE transaction_id = $1`, transactionID)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by transaction id %s", transactionID)
	}
	return transaction, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.AccountID, &t.Type, &t.Result,
		&t.Amount, &t.BalanceSnapshot, &t.TransactionID, &t.TransactedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
