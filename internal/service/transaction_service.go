package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/repository/repoargs"
	"github.com/fsdevblog/groph-account/pkg/uow"
)

// cancelWindow - максимальный возраст транзакции, которую еще можно отменить.
const cancelWindow = 365 * 24 * time.Hour

// TransactionService - операции над балансом счета с журналом транзакций.
// Секвенциализацию конкурентных вызовов по одному счету обеспечивает лок на уровне
// транспорта, сервис же гарантирует атомарность: изменение баланса и запись
// транзакции коммитятся в одной транзакции базы через uow.
type TransactionService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
	idGen           IDGenerator
}

func NewTransactionService(u uow.UOW, idGen IDGenerator) (*TransactionService, error) {
	transactionRepo, tErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if tErr != nil {
		return nil, tErr
	}
	accountRepo, aErr := uow.GetRepositoryAs[AccountRepository](
		u, uow.RepositoryName(repoargs.AccountRepoName))
	if aErr != nil {
		return nil, aErr
	}
	return &TransactionService{
		uow:             u,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		idGen:           idGen,
	}, nil
}

// UseBalance списывает amount с баланса счета accountNumber.
//
// Проверки выполняются по порядку, первая неуспешная прерывает операцию без
// каких-либо изменений в базе:
//  1. юзер существует - иначе ErrUserNotFound;
//  2. счет существует - иначе ErrAccountNotFound;
//  3. счет принадлежит юзеру - иначе ErrUserAccountMismatch;
//  4. счет активен - иначе ErrAccountAlreadyUnregistered;
//  5. amount не превышает баланс - иначе ErrAmountExceedBalance.
//
// При успехе в одной транзакции базы уменьшается баланс и пишется запись
// USE/SUCCESS со снапшотом нового баланса.
func (t *TransactionService) UseBalance(
	ctx context.Context,
	userID int64,
	accountNumber string,
	amount int64,
) (*TransactionResult, error) {
	var result *TransactionResult

	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[AccountUserRepository](tx, uow.RepositoryName(repoargs.AccountUserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		transactionRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}

		user, userErr := userRepo.FindByID(c, userID)
		if userErr != nil {
			return notFoundAs(userErr, domain.ErrUserNotFound)
		}
		account, accountErr := accountRepo.FindByAccountNumber(c, accountNumber)
		if accountErr != nil {
			return notFoundAs(accountErr, domain.ErrAccountNotFound)
		}
		if account.AccountUserID != user.ID {
			return domain.ErrUserAccountMismatch
		}
		if account.Status != domain.AccountStatusInUse {
			return domain.ErrAccountAlreadyUnregistered
		}
		if useErr := account.UseBalance(amount); useErr != nil {
			return useErr //nolint:wrapcheck
		}

		updated, saveErr := accountRepo.Save(c, *account)
		if saveErr != nil {
			return saveErr //nolint:wrapcheck
		}
		created, createErr := transactionRepo.Create(c, repoargs.TransactionCreate{
			AccountID:       updated.ID,
			Type:            domain.TransactionTypeUse,
			Result:          domain.TransactionResultSuccess,
			Amount:          amount,
			BalanceSnapshot: updated.Balance,
			TransactionID:   t.idGen.TransactionID(),
			TransactedAt:    time.Now(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		result = newTransactionResult(created, updated.AccountNumber)
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("using balance: %w", txErr)
	}
	return result, nil
}

// SaveFailedUseTransaction пишет запись USE/FAIL для отклоненной попытки списания.
// Баланс не меняется: снапшот фиксирует текущий баланс на момент отказа.
// Вызывается транспортным слоем после бизнес-ошибки UseBalance.
func (t *TransactionService) SaveFailedUseTransaction(
	ctx context.Context,
	accountNumber string,
	amount int64,
) (*TransactionResult, error) {
	return t.saveFailedTransaction(ctx, accountNumber, amount, domain.TransactionTypeUse)
}

// CancelBalance отменяет списание transactionID, возвращая amount на счет.
//
// Проверки выполняются по порядку, первая неуспешная прерывает операцию без
// каких-либо изменений в базе:
//  1. транзакция существует - иначе ErrTransactionNotFound;
//  2. счет существует - иначе ErrAccountNotFound;
//  3. транзакция относится к этому счету - иначе ErrTransactionAccountMismatch;
//  4. amount равен сумме транзакции, частичная отмена запрещена - иначе ErrCancelMustBeFull;
//  5. транзакции не больше года - иначе ErrTooOldToCancel.
//
// При успехе в одной транзакции базы увеличивается баланс и пишется запись
// CANCEL/SUCCESS с новым внешним идентификатором.
func (t *TransactionService) CancelBalance(
	ctx context.Context,
	transactionID string,
	accountNumber string,
	amount int64,
) (*TransactionResult, error) {
	var result *TransactionResult

	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		transactionRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}

		transaction, transErr := transactionRepo.FindByTransactionID(c, transactionID)
		if transErr != nil {
			return notFoundAs(transErr, domain.ErrTransactionNotFound)
		}
		account, accountErr := accountRepo.FindByAccountNumber(c, accountNumber)
		if accountErr != nil {
			return notFoundAs(accountErr, domain.ErrAccountNotFound)
		}
		if transaction.AccountID != account.ID {
			return domain.ErrTransactionAccountMismatch
		}
		if transaction.Amount != amount {
			return domain.ErrCancelMustBeFull
		}
		if transaction.TransactedAt.Before(time.Now().Add(-cancelWindow)) {
			return domain.ErrTooOldToCancel
		}
		if cancelErr := account.CancelBalance(amount); cancelErr != nil {
			return cancelErr //nolint:wrapcheck
		}

		updated, saveErr := accountRepo.Save(c, *account)
		if saveErr != nil {
			return saveErr //nolint:wrapcheck
		}
		created, createErr := transactionRepo.Create(c, repoargs.TransactionCreate{
			AccountID:       updated.ID,
			Type:            domain.TransactionTypeCancel,
			Result:          domain.TransactionResultSuccess,
			Amount:          amount,
			BalanceSnapshot: updated.Balance,
			TransactionID:   t.idGen.TransactionID(),
			TransactedAt:    time.Now(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		result = newTransactionResult(created, updated.AccountNumber)
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("cancelling balance: %w", txErr)
	}
	return result, nil
}

// SaveFailedCancelTransaction пишет запись CANCEL/FAIL для отклоненной отмены.
// Зеркало SaveFailedUseTransaction с тем же правилом неизменности баланса.
func (t *TransactionService) SaveFailedCancelTransaction(
	ctx context.Context,
	accountNumber string,
	amount int64,
) (*TransactionResult, error) {
	return t.saveFailedTransaction(ctx, accountNumber, amount, domain.TransactionTypeCancel)
}

// QueryTransaction возвращает транзакцию по внешнему идентификатору.
// Чистое чтение, лок не требуется.
func (t *TransactionService) QueryTransaction(
	ctx context.Context,
	transactionID string,
) (*TransactionResult, error) {
	transaction, transErr := t.transactionRepo.FindByTransactionID(ctx, transactionID)
	if transErr != nil {
		return nil, fmt.Errorf("querying transaction: %w", notFoundAs(transErr, domain.ErrTransactionNotFound))
	}
	account, accountErr := t.accountRepo.FindByID(ctx, transaction.AccountID)
	if accountErr != nil {
		return nil, fmt.Errorf("querying transaction: %w", accountErr)
	}
	return newTransactionResult(transaction, account.AccountNumber), nil
}

func (t *TransactionService) saveFailedTransaction(
	ctx context.Context,
	accountNumber string,
	amount int64,
	transactionType domain.TransactionType,
) (*TransactionResult, error) {
	var result *TransactionResult

	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		transactionRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}

		account, accountErr := accountRepo.FindByAccountNumber(c, accountNumber)
		if accountErr != nil {
			return notFoundAs(accountErr, domain.ErrAccountNotFound)
		}

		created, createErr := transactionRepo.Create(c, repoargs.TransactionCreate{
			AccountID:       account.ID,
			Type:            transactionType,
			Result:          domain.TransactionResultFail,
			Amount:          amount,
			BalanceSnapshot: account.Balance,
			TransactionID:   t.idGen.TransactionID(),
			TransactedAt:    time.Now(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		result = newTransactionResult(created, account.AccountNumber)
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("saving failed %s transaction: %w", transactionType, txErr)
	}
	return result, nil
}
