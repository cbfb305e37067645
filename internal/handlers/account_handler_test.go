package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/dto"
	"backoffice/internal/models"
	"backoffice/internal/services"
	"backoffice/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountHandlerSuite defines the test suite for AccountHandler
type AccountHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockService      *service_mocks.MockAccountServiceInterface
	mockStatements   *service_mocks.MockStatementServiceInterface
	handler          *AccountHandler
	echo             *echo.Echo
	operatorEmail    string
}

// SetupTest runs before each test in the suite
func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.mockStatements = service_mocks.NewMockStatementServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.mockService, s.mockStatements)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.operatorEmail = "operator@backoffice.local"
}

// TearDownTest runs after each test in the suite
func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountHandlerSuite runs the test suite
func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

// Helper method to create test context with authentication
func (s *AccountHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	c.Set("user_id", uuid.New())
	c.Set("user_email", s.operatorEmail)
	c.Set("user_role", models.RoleOperator)

	return c, rec
}

func (s *AccountHandlerSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{
		BankName:       "Sonali Bank",
		AccountNumber:  "0021-445566",
		AccountType:    "bank",
		InitialBalance: "50000",
	}

	accountID := uuid.New()
	expectedAccount := &models.BankAccount{
		ID:             accountID,
		BankName:       "Sonali Bank",
		AccountNumber:  "0021-445566",
		AccountType:    "bank",
		Currency:       "BDT",
		CurrentBalance: decimal.NewFromInt(50000),
		Status:         models.AccountStatusActive,
	}

	s.mockService.EXPECT().
		CreateAccount(gomock.Any(), s.operatorEmail).
		Return(expectedAccount, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts", reqBody)

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), accountID.String())
	s.Contains(rec.Body.String(), "Sonali Bank")
}

func (s *AccountHandlerSuite) TestCreateAccount_DuplicateNumber() {
	reqBody := dto.CreateAccountRequest{
		BankName:      "Sonali Bank",
		AccountNumber: "0021-445566",
		AccountType:   "bank",
	}

	s.mockService.EXPECT().
		CreateAccount(gomock.Any(), s.operatorEmail).
		Return(nil, services.ErrAccountNumberTaken)

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts", reqBody)

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "ACCOUNT_004")
}

func (s *AccountHandlerSuite) TestCreateAccount_InvalidCategory() {
	reqBody := map[string]interface{}{
		"bankName":      "Sonali Bank",
		"accountNumber": "0021-445566",
		"accountType":   "savings",
	}

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts", reqBody)

	err := s.handler.CreateAccount(c)
	s.NoError(err) // Error is written to the response
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		GetAccount(accountID).
		Return(nil, services.ErrAccountNotFound)

	c, rec := s.createContextWithAuth(http.MethodGet, "/bank-accounts/"+accountID.String(), nil)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "ACCOUNT_001")
}

func (s *AccountHandlerSuite) TestGetAccount_InvalidID() {
	c, rec := s.createContextWithAuth(http.MethodGet, "/bank-accounts/not-a-uuid", nil)
	c.SetParamNames("accountId")
	c.SetParamValues("not-a-uuid")

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerSuite) TestListAccounts_PassesFilters() {
	s.mockService.EXPECT().
		ListAccounts(gomock.Any(), 2, 10).
		DoAndReturn(func(filters models.AccountFilters, page, limit int) ([]models.BankAccount, models.Pagination, error) {
			s.Equal("active", filters.Status)
			s.Equal("bank", filters.AccountType)
			s.Equal("sonali", filters.Search)
			return []models.BankAccount{}, models.Pagination{Page: 2, Limit: 10}, nil
		})

	c, rec := s.createContextWithAuth(http.MethodGet,
		"/bank-accounts?page=2&limit=10&status=active&account_type=bank&search=sonali", nil)

	err := s.handler.ListAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestAdjustBalance_InsufficientFunds() {
	accountID := uuid.New()
	reqBody := dto.AdjustBalanceRequest{
		Amount:      "100000",
		Type:        "debit",
		Description: "Vendor payment",
	}

	s.mockService.EXPECT().
		AdjustBalance(accountID, gomock.Any(), s.operatorEmail).
		Return(nil, services.ErrInsufficientFunds)

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts/"+accountID.String()+"/adjust-balance", reqBody)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.AdjustBalance(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "ACCOUNT_003")
}

func (s *AccountHandlerSuite) TestTransfer_Success() {
	fromID := uuid.New()
	toID := uuid.New()
	reqBody := dto.TransferRequest{
		FromAccountID:  fromID.String(),
		ToAccountID:    toID.String(),
		Amount:         "2500",
		Description:    "Float rebalance",
		IdempotencyKey: "transfer-2026-001",
	}

	transfer := &models.Transfer{
		ID:            uuid.New(),
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        decimal.NewFromInt(2500),
		Status:        models.TransferStatusCompleted,
	}

	s.mockService.EXPECT().
		Transfer(gomock.Any(), s.operatorEmail).
		DoAndReturn(func(req *dto.TransferRequest, performedBy string) (*models.Transfer, error) {
			s.Equal("transfer-2026-001", req.IdempotencyKey)
			return transfer, nil
		})

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts/transfers", reqBody)

	err := s.handler.Transfer(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Transfer completed successfully")
}

func (s *AccountHandlerSuite) TestTransfer_HeaderKeyOverridesBody() {
	fromID := uuid.New()
	toID := uuid.New()
	reqBody := dto.TransferRequest{
		FromAccountID:  fromID.String(),
		ToAccountID:    toID.String(),
		Amount:         "2500",
		Description:    "Float rebalance",
		IdempotencyKey: "body-key",
	}

	s.mockService.EXPECT().
		Transfer(gomock.Any(), s.operatorEmail).
		DoAndReturn(func(req *dto.TransferRequest, performedBy string) (*models.Transfer, error) {
			s.Equal("header-key", req.IdempotencyKey)
			return &models.Transfer{ID: uuid.New(), FromAccountID: fromID, ToAccountID: toID}, nil
		})

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts/transfers", reqBody)
	c.Request().Header.Set("Idempotency-Key", "header-key")

	err := s.handler.Transfer(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestTransfer_PendingConflict() {
	reqBody := dto.TransferRequest{
		FromAccountID:  uuid.New().String(),
		ToAccountID:    uuid.New().String(),
		Amount:         "2500",
		Description:    "Float rebalance",
		IdempotencyKey: "transfer-2026-001",
	}

	s.mockService.EXPECT().
		Transfer(gomock.Any(), s.operatorEmail).
		Return(nil, services.ErrTransferPending)

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts/transfers", reqBody)

	err := s.handler.Transfer(c)
	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "TRANSFER_002")
}

func (s *AccountHandlerSuite) TestTransfer_SameAccount() {
	id := uuid.New().String()
	reqBody := dto.TransferRequest{
		FromAccountID:  id,
		ToAccountID:    id,
		Amount:         "2500",
		Description:    "Float rebalance",
		IdempotencyKey: "transfer-2026-002",
	}

	s.mockService.EXPECT().
		Transfer(gomock.Any(), s.operatorEmail).
		Return(nil, services.ErrSameAccountTransfer)

	c, rec := s.createContextWithAuth(http.MethodPost, "/bank-accounts/transfers", reqBody)

	err := s.handler.Transfer(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "TRANSFER_001")
}

func (s *AccountHandlerSuite) TestDownloadStatement_RequiresWindow() {
	accountID := uuid.New()

	c, rec := s.createContextWithAuth(http.MethodGet, "/bank-accounts/"+accountID.String()+"/statement", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.DownloadStatement(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "from_date")
}

func (s *AccountHandlerSuite) TestDownloadStatement_Success() {
	accountID := uuid.New()
	statement := &models.AccountStatement{}

	s.mockStatements.EXPECT().
		GetStatement(accountID, gomock.Any(), gomock.Any()).
		Return(statement, nil)
	s.mockStatements.EXPECT().
		RenderStatementCSV(statement).
		Return([]byte("Date,Type,Description\n"), nil)

	c, rec := s.createContextWithAuth(http.MethodGet,
		"/bank-accounts/"+accountID.String()+"/statement?from_date=2026-01-01&to_date=2026-01-31", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.DownloadStatement(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	s.Contains(rec.Body.String(), "Date,Type,Description")
}
