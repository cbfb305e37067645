package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
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

// ExchangeHandlerSuite defines the test suite for ExchangeHandler
type ExchangeHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockExchangeServiceInterface
	handler     *ExchangeHandler
	echo        *echo.Echo
}

func (s *ExchangeHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockExchangeServiceInterface(s.ctrl)
	s.handler = NewExchangeHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *ExchangeHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExchangeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExchangeHandlerSuite))
}

func (s *ExchangeHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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
	c.Set("user_email", "operator@backoffice.local")
	c.Set("user_role", models.RoleOperator)

	return c, rec
}

func (s *ExchangeHandlerSuite) TestCreateExchange_Buy() {
	reqBody := dto.CreateExchangeRequest{
		FullName:     "Rahim Uddin",
		Type:         "Buy",
		CurrencyCode: "USD",
		ExchangeRate: "110",
		Quantity:     "11000",
	}

	exchange := &models.Exchange{
		ID:            uuid.New(),
		FullName:      "Rahim Uddin",
		Type:          models.ExchangeTypeBuy,
		CurrencyCode:  "USD",
		ExchangeRate:  decimal.NewFromInt(110),
		Quantity:      decimal.NewFromInt(11000),
		AmountBDT:     decimal.NewFromInt(11000),
		ForeignAmount: decimal.NewFromInt(100),
	}

	s.mockService.EXPECT().
		CreateExchange(gomock.Any(), "operator@backoffice.local").
		Return(exchange, nil)

	c, rec := s.createContext(http.MethodPost, "/exchanges", reqBody)

	err := s.handler.CreateExchange(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "USD")
}

func (s *ExchangeHandlerSuite) TestCreateExchange_LowercaseTypeRejected() {
	reqBody := map[string]interface{}{
		"fullName":     "Rahim Uddin",
		"type":         "buy",
		"currencyCode": "USD",
		"exchangeRate": "110",
		"quantity":     "11000",
	}

	c, rec := s.createContext(http.MethodPost, "/exchanges", reqBody)

	err := s.handler.CreateExchange(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ExchangeHandlerSuite) TestCreateExchange_InsufficientReserve() {
	reqBody := dto.CreateExchangeRequest{
		FullName:     "Karim Mia",
		Type:         "Sell",
		CurrencyCode: "USD",
		ExchangeRate: "112",
		Quantity:     "500",
	}

	wrapped := fmt.Errorf("USD: %w", services.ErrInsufficientReserve)
	s.mockService.EXPECT().
		CreateExchange(gomock.Any(), gomock.Any()).
		Return(nil, wrapped)

	c, rec := s.createContext(http.MethodPost, "/exchanges", reqBody)

	err := s.handler.CreateExchange(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "RESERVE_002")
}

func (s *ExchangeHandlerSuite) TestUpdateExchange_ReplayOverdraw() {
	exchangeID := uuid.New()
	newQty := "9000"
	reqBody := dto.UpdateExchangeRequest{Quantity: &newQty}

	s.mockService.EXPECT().
		UpdateExchange(exchangeID, gomock.Any()).
		Return(nil, fmt.Errorf("USD: %w", services.ErrInsufficientReserve))

	c, rec := s.createContext(http.MethodPut, "/exchanges/"+exchangeID.String(), reqBody)
	c.SetParamNames("exchangeId")
	c.SetParamValues(exchangeID.String())

	err := s.handler.UpdateExchange(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "RESERVE_002")
}

func (s *ExchangeHandlerSuite) TestDeleteExchange_NotFound() {
	exchangeID := uuid.New()

	s.mockService.EXPECT().
		DeleteExchange(exchangeID).
		Return(services.ErrExchangeNotFound)

	c, rec := s.createContext(http.MethodDelete, "/exchanges/"+exchangeID.String(), nil)
	c.SetParamNames("exchangeId")
	c.SetParamValues(exchangeID.String())

	err := s.handler.DeleteExchange(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "EXCHANGE_001")
}

func (s *ExchangeHandlerSuite) TestListExchanges_InvalidDilarID() {
	c, rec := s.createContext(http.MethodGet, "/exchanges?dilar_id=nope", nil)

	err := s.handler.ListExchanges(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExchangeHandlerSuite) TestGetReserves() {
	s.mockService.EXPECT().
		GetReserves().
		Return(&dto.ReservesResponse{
			Data: []models.Reserve{{
				CurrencyCode:             "USD",
				TotalBought:              decimal.NewFromInt(1000),
				TotalSold:                decimal.NewFromInt(200),
				WeightedAvgPurchasePrice: decimal.NewFromInt(110),
			}},
			Summary: models.ReserveSummary{CurrencyCount: 1},
		}, nil)

	c, rec := s.createContext(http.MethodGet, "/exchanges/reserves", nil)

	err := s.handler.GetReserves(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "USD")
}

func (s *ExchangeHandlerSuite) TestGetDashboard_CurrencyFilter() {
	s.mockService.EXPECT().
		GetDashboard("USD", gomock.Nil(), gomock.Nil()).
		Return(&dto.DashboardResponse{
			Data:    []models.DashboardRow{{CurrencyCode: "USD", BuyCount: 1}},
			Summary: models.DashboardSummary{ExchangeCount: 1},
		}, nil)

	c, rec := s.createContext(http.MethodGet, "/exchanges/dashboard?currency_code=USD", nil)

	err := s.handler.GetDashboard(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "USD")
}

func (s *ExchangeHandlerSuite) TestGetDashboard_BadDate() {
	c, rec := s.createContext(http.MethodGet, "/exchanges/dashboard?from_date=01-01-2026", nil)

	err := s.handler.GetDashboard(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_006")
}

func (s *ExchangeHandlerSuite) TestDownloadReceipt() {
	exchangeID := uuid.New()

	s.mockService.EXPECT().
		GenerateReceipt(exchangeID).
		Return([]byte("CURRENCY EXCHANGE RECEIPT"), nil)

	c, rec := s.createContext(http.MethodGet, "/exchanges/"+exchangeID.String()+"/receipt", nil)
	c.SetParamNames("exchangeId")
	c.SetParamValues(exchangeID.String())

	err := s.handler.DownloadReceipt(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "CURRENCY EXCHANGE RECEIPT")
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "receipt-")
}
