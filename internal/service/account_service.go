package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/repository/repoargs"
	"github.com/fsdevblog/groph-account/pkg/uow"
)

const (
	// maxAccountsPerUser - лимит счетов на юзера. Считаются все когда-либо созданные
	// счета, включая закрытые.
	maxAccountsPerUser = 10

	// createAccountAttempts ограничивает повторы при коллизии случайного номера счета.
	createAccountAttempts = 5
)

type AccountService struct {
	uow             uow.UOW
	accountRepo     AccountRepository
	accountUserRepo AccountUserRepository
	idGen           IDGenerator
}

func NewAccountService(u uow.UOW, idGen IDGenerator) (*AccountService, error) {
	accountRepo, aErr := uow.GetRepositoryAs[AccountRepository](
		u, uow.RepositoryName(repoargs.AccountRepoName))
	if aErr != nil {
		return nil, aErr
	}
	accountUserRepo, uErr := uow.GetRepositoryAs[AccountUserRepository](
		u, uow.RepositoryName(repoargs.AccountUserRepoName))
	if uErr != nil {
		return nil, uErr
	}
	return &AccountService{
		uow:             u,
		accountRepo:     accountRepo,
		accountUserRepo: accountUserRepo,
		idGen:           idGen,
	}, nil
}

// CreateAccount создает юзеру новый счет со случайным номером и начальным балансом.
//
// Алгоритм работы:
//  1. Проверяет что юзер существует (ErrUserNotFound).
//  2. Проверяет лимит счетов юзера (ErrMaxAccountPerUser).
//  3. Генерирует номер счета и создает запись. Коллизию номера ловит уникальный
//     индекс; после нарушения уникальности транзакция базы уже неработоспособна,
//     поэтому повторяется вся единица работы целиком с новым номером.
func (a *AccountService) CreateAccount(
	ctx context.Context,
	userID int64,
	initialBalance int64,
) (*AccountResult, error) {
	var result *AccountResult

	var txErr error
	for i := 0; i < createAccountAttempts; i++ {
		txErr = a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			account, createErr := a.createAccountTx(c, tx, userID, initialBalance)
			if createErr != nil {
				return createErr
			}
			result = newAccountResult(account)
			return nil
		})
		if txErr == nil || !errors.Is(txErr, domain.ErrDuplicateKey) {
			break
		}
	}

	if txErr != nil {
		return nil, fmt.Errorf("creating account: %w", txErr)
	}
	return result, nil
}

func (a *AccountService) createAccountTx(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	initialBalance int64,
) (*domain.Account, error) {
	userRepo, userRepoErr := uow.GetAs[AccountUserRepository](tx, uow.RepositoryName(repoargs.AccountUserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return nil, accountRepoErr //nolint:wrapcheck
	}

	user, userErr := userRepo.FindByID(ctx, userID)
	if userErr != nil {
		return nil, notFoundAs(userErr, domain.ErrUserNotFound)
	}

	count, countErr := accountRepo.CountByUserID(ctx, user.ID)
	if countErr != nil {
		return nil, countErr //nolint:wrapcheck
	}
	if count >= maxAccountsPerUser {
		return nil, domain.ErrMaxAccountPerUser
	}

	account, createErr := accountRepo.Create(ctx, repoargs.AccountCreate{
		AccountUserID: user.ID,
		AccountNumber: a.idGen.AccountNumber(),
		Balance:       initialBalance,
		RegisteredAt:  time.Now(),
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}
	return account, nil
}

// DeleteAccount закрывает счет: переводит его в UNREGISTERED и проставляет дату
// закрытия. Закрыть можно только свой активный счет с нулевым балансом.
func (a *AccountService) DeleteAccount(
	ctx context.Context,
	userID int64,
	accountNumber string,
) (*AccountResult, error) {
	var result *AccountResult

	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[AccountUserRepository](tx, uow.RepositoryName(repoargs.AccountUserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
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
		if unregErr := account.Unregister(time.Now()); unregErr != nil {
			return unregErr //nolint:wrapcheck
		}

		updated, saveErr := accountRepo.Save(c, *account)
		if saveErr != nil {
			return saveErr //nolint:wrapcheck
		}

		result = newAccountResult(updated)
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("deleting account: %w", txErr)
	}
	return result, nil
}

// GetAccountsByUserID возвращает все счета юзера, включая закрытые.
func (a *AccountService) GetAccountsByUserID(ctx context.Context, userID int64) ([]AccountResult, error) {
	user, userErr := a.accountUserRepo.FindByID(ctx, userID)
	if userErr != nil {
		return nil, fmt.Errorf("getting accounts: %w", notFoundAs(userErr, domain.ErrUserNotFound))
	}

	accounts, accountsErr := a.accountRepo.GetByUserID(ctx, user.ID)
	if accountsErr != nil {
		return nil, fmt.Errorf("getting accounts: %w", accountsErr)
	}

	results := make([]AccountResult, len(accounts))
	for i := range accounts {
		results[i] = *newAccountResult(&accounts[i])
	}
	return results, nil
}
