package domain

type AccountStatusType string

const (
	AccountStatusInUse        AccountStatusType = "IN_USE"
	AccountStatusUnregistered AccountStatusType = "UNREGISTERED"
)

type TransactionType string

const (
	TransactionTypeUse    TransactionType = "USE"
	TransactionTypeCancel TransactionType = "CANCEL"
)

type TransactionResultType string

const (
	TransactionResultSuccess TransactionResultType = "SUCCESS"
	TransactionResultFail    TransactionResultType = "FAIL"
)
