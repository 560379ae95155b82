package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/lock"
	"github.com/fsdevblog/groph-account/internal/logger"
	"github.com/fsdevblog/groph-account/internal/service"
	"github.com/fsdevblog/groph-account/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-account/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *mocks.MockTransactionServicer
	mockLocker             *mocks.MockAccountLocker
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTransactionService = mocks.NewMockTransactionServicer(mockCtrl)
	s.mockLocker = mocks.NewMockAccountLocker(mockCtrl)

	s.router = New(RouterArgs{
		Logger:             logger.New(os.Stdout),
		TransactionService: s.mockTransactionService,
		Locker:             s.mockLocker,
	})
}

// passThroughLock заставляет мок лока просто выполнять тело операции.
func (s *TransactionHandlerTestSuite) passThroughLock() {
	s.mockLocker.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func (s *TransactionHandlerTestSuite) TestUse() {
	s.passThroughLock()

	accountNumber := "1000000001"
	transactedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.mockTransactionService.EXPECT().
		UseBalance(gomock.Any(), int64(1), accountNumber, int64(5000)).
		Return(&service.TransactionResult{
			AccountNumber:   accountNumber,
			TransactionID:   "c2a76b1cf12f4f1e9a1f2b3c4d5e6f70",
			Type:            domain.TransactionTypeUse,
			Result:          domain.TransactionResultSuccess,
			Amount:          5000,
			BalanceSnapshot: 5000,
			TransactedAt:    transactedAt,
		}, nil).Times(1)

	payload := fmt.Sprintf(`{"userId": 1, "accountNumber": %q, "amount": 5000}`, accountNumber)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    TransactionUseRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body TransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(accountNumber, body.AccountNumber)
	s.Equal("USE", body.TransactionType)
	s.Equal("SUCCESS", body.TransactionResult)
	s.Equal("c2a76b1cf12f4f1e9a1f2b3c4d5e6f70", body.TransactionID)
	s.Equal(int64(5000), body.Amount)
	s.Equal(int64(5000), body.BalanceSnapshot)
	s.Equal(transactedAt.Format(time.RFC3339), body.TransactedAt)
}

// TestUse_BusinessFailure проверяет протокол аудита: при бизнес-отказе до ответа
// клиенту сервис обязан записать неудачную транзакцию.
func (s *TransactionHandlerTestSuite) TestUse_BusinessFailure() {
	s.passThroughLock()

	accountNumber := "1000000001"
	gomock.InOrder(
		s.mockTransactionService.EXPECT().
			UseBalance(gomock.Any(), int64(1), accountNumber, int64(99999)).
			Return(nil, domain.ErrAmountExceedBalance).Times(1),
		s.mockTransactionService.EXPECT().
			SaveFailedUseTransaction(gomock.Any(), accountNumber, int64(99999)).
			Return(&service.TransactionResult{}, nil).Times(1),
	)

	payload := fmt.Sprintf(`{"userId": 1, "accountNumber": %q, "amount": 99999}`, accountNumber)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    TransactionUseRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusBadRequest, res.StatusCode)

	var body ErrorResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("AMOUNT_EXCEED_BALANCE", body.ErrorCode)
}

// TestUse_InfraFailure - инфраструктурная ошибка не порождает запись об отказе.
func (s *TransactionHandlerTestSuite) TestUse_InfraFailure() {
	s.passThroughLock()

	accountNumber := "1000000001"
	s.mockTransactionService.EXPECT().
		UseBalance(gomock.Any(), int64(1), accountNumber, int64(100)).
		Return(nil, domain.ErrUnknown).Times(1)
	s.mockTransactionService.EXPECT().
		SaveFailedUseTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	payload := fmt.Sprintf(`{"userId": 1, "accountNumber": %q, "amount": 100}`, accountNumber)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    TransactionUseRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusInternalServerError, res.StatusCode)
}

// TestUse_LockNotAcquired - лок не взят, бизнес-логика не выполняется вовсе.
func (s *TransactionHandlerTestSuite) TestUse_LockNotAcquired() {
	accountNumber := "1000000001"
	s.mockLocker.EXPECT().
		Do(gomock.Any(), accountNumber, gomock.Any()).
		Return(lock.ErrLockNotAcquired).Times(1)
	s.mockTransactionService.EXPECT().
		UseBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	payload := fmt.Sprintf(`{"userId": 1, "accountNumber": %q, "amount": 100}`, accountNumber)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    TransactionUseRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusConflict, res.StatusCode)

	var body ErrorResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("ACCOUNT_TRANSACTION_LOCK", body.ErrorCode)
}

func (s *TransactionHandlerTestSuite) TestUse_BadRequest() {
	s.mockLocker.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name    string
		payload string
	}{
		{name: "empty body", payload: ``},
		{name: "missing user", payload: `{"accountNumber": "1000000001", "amount": 100}`},
		{name: "short account number", payload: `{"userId": 1, "accountNumber": "12345", "amount": 100}`},
		{name: "non numeric account number", payload: `{"userId": 1, "accountNumber": "12345abcde", "amount": 100}`},
		{name: "zero amount", payload: `{"userId": 1, "accountNumber": "1000000001", "amount": 0}`},
		{name: "negative amount", payload: `{"userId": 1, "accountNumber": "1000000001", "amount": -5}`},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    TransactionUseRoute,
				Body:   bytes.NewBufferString(t.payload),
			}, testutils.WithJSON())
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(http.StatusBadRequest, res.StatusCode)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCancel() {
	s.passThroughLock()

	accountNumber := "1000000001"
	useTransactionID := "c2a76b1cf12f4f1e9a1f2b3c4d5e6f70"
	transactedAt := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	s.mockTransactionService.EXPECT().
		CancelBalance(gomock.Any(), useTransactionID, accountNumber, int64(5000)).
		Return(&service.TransactionResult{
			AccountNumber:   accountNumber,
			TransactionID:   "9d8c7b6a5f4e3d2c1b0a99887766f544",
			Type:            domain.TransactionTypeCancel,
			Result:          domain.TransactionResultSuccess,
			Amount:          5000,
			BalanceSnapshot: 10000,
			TransactedAt:    transactedAt,
		}, nil).Times(1)

	payload := fmt.Sprintf(
		`{"transactionId": %q, "accountNumber": %q, "amount": 5000}`,
		useTransactionID, accountNumber,
	)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    TransactionCancelRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body TransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("CANCEL", body.TransactionType)
	s.Equal("SUCCESS", body.TransactionResult)
	s.Equal(int64(10000), body.BalanceSnapshot)
}

func (s *TransactionHandlerTestSuite) TestCancel_BusinessFailure() {
	s.passThroughLock()

	accountNumber := "1000000001"
	useTransactionID := "c2a76b1cf12f4f1e9a1f2b3c4d5e6f70"
	gomock.InOrder(
		s.mockTransactionService.EXPECT().
			CancelBalance(gomock.Any(), useTransactionID, accountNumber, int64(3000)).
			Return(nil, domain.ErrCancelMustBeFull).Times(1),
		s.mockTransactionService.EXPECT().
			SaveFailedCancelTransaction(gomock.Any(), accountNumber, int64(3000)).
			Return(&service.TransactionResult{}, nil).Times(1),
	)

	payload := fmt.Sprintf(
		`{"transactionId": %q, "accountNumber": %q, "amount": 3000}`,
		useTransactionID, accountNumber,
	)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    TransactionCancelRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusBadRequest, res.StatusCode)

	var body ErrorResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("CANCEL_MUST_FULLY", body.ErrorCode)
}

func (s *TransactionHandlerTestSuite) TestQuery() {
	transactionID := "c2a76b1cf12f4f1e9a1f2b3c4d5e6f70"
	transactedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.mockTransactionService.EXPECT().
		QueryTransaction(gomock.Any(), transactionID).
		Return(&service.TransactionResult{
			AccountNumber:   "1000000001",
			TransactionID:   transactionID,
			Type:            domain.TransactionTypeUse,
			Result:          domain.TransactionResultFail,
			Amount:          99999,
			BalanceSnapshot: 5000,
			TransactedAt:    transactedAt,
		}, nil).Times(1)
	// Чтение идет мимо лока.
	s.mockLocker.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/transaction/" + transactionID,
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body TransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("FAIL", body.TransactionResult)
	s.Equal(int64(99999), body.Amount)
}

func (s *TransactionHandlerTestSuite) TestQuery_NotFound() {
	s.mockTransactionService.EXPECT().
		QueryTransaction(gomock.Any(), "missing").
		Return(nil, domain.ErrTransactionNotFound).Times(1)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/transaction/missing",
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusNotFound, res.StatusCode)

	var body ErrorResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("TRANSACTION_NOT_FOUND", body.ErrorCode)
}
