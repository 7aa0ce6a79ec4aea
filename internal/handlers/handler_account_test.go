package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	accountSvc *MockAccountSvc
	router     http.Handler
	userID     int64
}

func (s *AccountHandlerTestSuite) SetupTest() {
	container, _, account, _, _, _, _ := newMockedContainer()
	s.accountSvc = account
	s.router = newTestRouter(container)
	s.userID = 7
}

func (s *AccountHandlerTestSuite) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", bearerToken(s.userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AccountHandlerTestSuite) TestCreateAccountSuccess() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalance: decimal.NewFromInt(100),
		BudgetID:     34,
	}
	s.accountSvc.On("CreateAccount", mock.Anything, req, s.userID).Return(int64(12), nil)

	w := s.do(http.MethodPost, "/api/v1/accounts", req, true)

	s.Equal(http.StatusOK, w.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Account created successfully", body["message"])
	s.EqualValues(12, body["accountId"])
	s.accountSvc.AssertExpectations(s.T())
}

func (s *AccountHandlerTestSuite) TestCreateAccountDeniedForNonMember() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalance: decimal.RequireFromString("0"),
		BudgetID:     99,
	}
	s.accountSvc.On("CreateAccount", mock.Anything, req, s.userID).
		Return(int64(0), apperrors.NewForbiddenError("Access denied"))

	w := s.do(http.MethodPost, "/api/v1/accounts", req, true)

	s.Equal(http.StatusForbidden, w.Code)
	var body dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(http.StatusForbidden, body.StatusCode)
	s.Equal("Access denied", body.Message)
}

func (s *AccountHandlerTestSuite) TestCreateAccountRejectsInvalidBody() {
	w := s.do(http.MethodPost, "/api/v1/accounts", map[string]any{"description": "no name"}, true)

	s.Equal(http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(http.StatusBadRequest, body.StatusCode)
	s.accountSvc.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerTestSuite) TestCreateAccountRequiresAuth() {
	w := s.do(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{}, false)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.accountSvc.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerTestSuite) TestGetAccountIncludesCurrentBalance() {
	balance := decimal.NewFromInt(250)
	s.accountSvc.On("GetAccountByID", mock.Anything, int64(12), s.userID).Return(&domain.Account{
		AccountID:      12,
		Name:           "Checking",
		StartBalance:   decimal.NewFromInt(100),
		BudgetID:       34,
		CurrentBalance: &balance,
	}, nil)

	w := s.do(http.MethodGet, "/api/v1/accounts/12", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var body dto.AccountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Checking", body.Name)
	s.Require().NotNil(body.CurrentBalance)
	s.True(body.CurrentBalance.Equal(balance))
}

func (s *AccountHandlerTestSuite) TestGetAccountNotFound() {
	s.accountSvc.On("GetAccountByID", mock.Anything, int64(404), s.userID).
		Return(nil, apperrors.NewNotFoundError("Account does not exist"))

	w := s.do(http.MethodGet, "/api/v1/accounts/404", nil, true)

	s.Equal(http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Account does not exist", body.Message)
}

func (s *AccountHandlerTestSuite) TestGetAccountRejectsMalformedID() {
	w := s.do(http.MethodGet, "/api/v1/accounts/abc", nil, true)

	s.Equal(http.StatusBadRequest, w.Code)
	s.accountSvc.AssertNotCalled(s.T(), "GetAccountByID", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerTestSuite) TestUpdateAccountSuccess() {
	req := dto.UpdateAccountRequest{
		Name:         "Checking renamed",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalance: decimal.RequireFromString("0"),
	}
	s.accountSvc.On("UpdateAccount", mock.Anything, int64(12), req, s.userID).Return(nil)

	w := s.do(http.MethodPut, "/api/v1/accounts/12", req, true)

	s.Equal(http.StatusOK, w.Code)
	var body dto.MessageResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Account updated successfully", body.Message)
}

func (s *AccountHandlerTestSuite) TestDeleteAccountSuccess() {
	s.accountSvc.On("DeleteAccount", mock.Anything, int64(12), s.userID).Return(nil)

	w := s.do(http.MethodDelete, "/api/v1/accounts/12", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var body dto.MessageResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Account deleted successfully", body.Message)
}

func (s *AccountHandlerTestSuite) TestListAccountsByBudget() {
	s.accountSvc.On("ListAccountsByBudget", mock.Anything, int64(34), s.userID).Return([]domain.Account{
		{AccountID: 12, Name: "Checking", BudgetID: 34},
		{AccountID: 13, Name: "Savings", BudgetID: 34},
	}, nil)

	w := s.do(http.MethodGet, "/api/v1/budgets/34/accounts", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var body dto.ListAccountsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Len(body.Accounts, 2)
	s.Equal("Savings", body.Accounts[1].Name)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
