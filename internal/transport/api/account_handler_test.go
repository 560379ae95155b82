package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groph-account/internal/domain"
	"github.com/fsdevblog/groph-account/internal/logger"
	"github.com/fsdevblog/groph-account/internal/service"
	"github.com/fsdevblog/groph-account/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-account/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *mocks.MockAccountServicer
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AccountService: s.mockAccountService,
	})
}

func (s *AccountHandlerTestSuite) TestCreate() {
	registeredAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.mockAccountService.EXPECT().
		CreateAccount(gomock.Any(), int64(1), int64(10000)).
		Return(&service.AccountResult{
			UserID:        1,
			AccountNumber: "1000000001",
			Balance:       10000,
			Status:        domain.AccountStatusInUse,
			RegisteredAt:  registeredAt,
		}, nil).Times(1)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    AccountRoute,
		Body:   bytes.NewBufferString(`{"userId": 1, "initialBalance": 10000}`),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body AccountCreatedResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(int64(1), body.UserID)
	s.Equal("1000000001", body.AccountNumber)
	s.Equal(registeredAt.Format(time.RFC3339), body.RegisteredAt)
}

func (s *AccountHandlerTestSuite) TestCreate_Failures() {
	s.mockAccountService.EXPECT().
		CreateAccount(gomock.Any(), int64(42), int64(0)).
		Return(nil, domain.ErrUserNotFound).Times(1)
	s.mockAccountService.EXPECT().
		CreateAccount(gomock.Any(), int64(1), int64(0)).
		Return(nil, domain.ErrMaxAccountPerUser).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "user not found",
			payload:    `{"userId": 42}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		}, {
			name:       "max accounts reached",
			payload:    `{"userId": 1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "MAX_ACCOUNT_PER_USER_10",
		}, {
			name:       "bad request",
			payload:    `{"userId": 0}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    AccountRoute,
				Body:   bytes.NewBufferString(t.payload),
			}, testutils.WithJSON())
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().Equal(t.wantStatus, res.StatusCode)
			if t.wantCode != "" {
				var body ErrorResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(t.wantCode, body.ErrorCode)
			}
		})
	}
}

func (s *AccountHandlerTestSuite) TestDelete() {
	unregisteredAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	s.mockAccountService.EXPECT().
		DeleteAccount(gomock.Any(), int64(1), "1000000001").
		Return(&service.AccountResult{
			UserID:         1,
			AccountNumber:  "1000000001",
			Status:         domain.AccountStatusUnregistered,
			UnregisteredAt: &unregisteredAt,
		}, nil).Times(1)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodDelete,
		URL:    AccountRoute,
		Body:   bytes.NewBufferString(`{"userId": 1, "accountNumber": "1000000001"}`),
	}, testutils.WithJSON())
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body AccountDeletedResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("1000000001", body.AccountNumber)
	s.Equal(unregisteredAt.Format(time.RFC3339), body.UnregisteredAt)
}

func (s *AccountHandlerTestSuite) TestDelete_Failures() {
	accountNumber := "1000000001"
	s.mockAccountService.EXPECT().
		DeleteAccount(gomock.Any(), int64(2), accountNumber).
		Return(nil, domain.ErrUserAccountMismatch).Times(1)
	s.mockAccountService.EXPECT().
		DeleteAccount(gomock.Any(), int64(3), accountNumber).
		Return(nil, domain.ErrBalanceNotEmpty).Times(1)
	s.mockAccountService.EXPECT().
		DeleteAccount(gomock.Any(), int64(4), accountNumber).
		Return(nil, domain.ErrAccountAlreadyUnregistered).Times(1)

	cases := []struct {
		name     string
		userID   int64
		wantCode string
	}{
		{name: "foreign account", userID: 2, wantCode: "USER_ACCOUNT_UN_MATCH"},
		{name: "balance not empty", userID: 3, wantCode: "BALANCE_NOT_EMPTY"},
		{name: "already unregistered", userID: 4, wantCode: "ACCOUNT_ALREADY_UNREGISTERED"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			payload := fmt.Sprintf(`{"userId": %d, "accountNumber": %q}`, t.userID, accountNumber)
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    AccountRoute,
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
			s.Equal(t.wantCode, body.ErrorCode)
		})
	}
}

func (s *AccountHandlerTestSuite) TestIndex() {
	s.mockAccountService.EXPECT().
		GetAccountsByUserID(gomock.Any(), int64(1)).
		Return([]service.AccountResult{
			{UserID: 1, AccountNumber: "1000000001", Balance: 10000},
			{UserID: 1, AccountNumber: "1000000002", Balance: 0},
		}, nil).Times(1)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    AccountRoute + "?user_id=1",
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []AccountResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 2)
	s.Equal("1000000001", body[0].AccountNumber)
	s.Equal(int64(10000), body[0].Balance)
}

func (s *AccountHandlerTestSuite) TestIndex_BadUserID() {
	s.mockAccountService.EXPECT().GetAccountsByUserID(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name string
		url  string
	}{
		{name: "missing", url: AccountRoute},
		{name: "not a number", url: AccountRoute + "?user_id=abc"},
		{name: "non positive", url: AccountRoute + "?user_id=0"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(http.StatusBadRequest, res.StatusCode)
		})
	}
}
