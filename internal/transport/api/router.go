package api

import (
	"time"

	"github.com/fsdevblog/groph-account/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DefaultServiceTimeout покрывает и ожидание лока счета (по умолчанию до 5 секунд),
// и саму операцию, поэтому заметно больше обычного таймаута на запрос.
const DefaultServiceTimeout = 10 * time.Second

const (
	AccountRoute           = "/account"
	TransactionUseRoute    = "/transaction/use"
	TransactionCancelRoute = "/transaction/cancel"
	TransactionQueryRoute  = "/transaction/:transaction_id"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	AccountService     AccountServicer
	TransactionService TransactionServicer
	Locker             AccountLocker
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	accountHandler := NewAccountHandler(args.AccountService)
	transactionHandler := NewTransactionHandler(args.TransactionService, args.Locker)

	r.POST(AccountRoute, accountHandler.Create)
	r.DELETE(AccountRoute, accountHandler.Delete)
	r.GET(AccountRoute, accountHandler.Index)

	r.POST(TransactionUseRoute, transactionHandler.Use)
	r.POST(TransactionCancelRoute, transactionHandler.Cancel)
	r.GET(TransactionQueryRoute, transactionHandler.Query)

	return r
}
