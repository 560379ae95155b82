package service

import (
	"fmt"

	"github.com/fsdevblog/groph-account/pkg/uow"
)

type AppServices struct {
	AccountService     *AccountService
	TransactionService *TransactionService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	idGen := NewCryptoIDGenerator()

	accountService, accountServiceErr := NewAccountService(unitOfWork, idGen)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	transactionService, transServiceErr := NewTransactionService(unitOfWork, idGen)
	if transServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transServiceErr.Error())
	}

	return &AppServices{
		AccountService:     accountService,
		TransactionService: transactionService,
	}, nil
}
