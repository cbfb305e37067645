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
	"github.com/stretchr/testify/suite"
)

// DilarHandlerSuite defines the test suite for DilarHandler
type DilarHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockDilarServiceInterface
	handler     *DilarHandler
	echo        *echo.Echo
}

func (s *DilarHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockDilarServiceInterface(s.ctrl)
	s.handler = NewDilarHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *DilarHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDilarHandlerSuite(t *testing.T) {
	suite.Run(t, new(DilarHandlerSuite))
}

func (s *DilarHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *DilarHandlerSuite) TestCreateDilar_Success() {
	reqBody := dto.CreateDilarRequest{
		OwnerName: "Abdul Karim",
		ContactNo: "01712345678",
		TradeName: "Karim Money Exchange",
	}

	s.mockService.EXPECT().
		CreateDilar(gomock.Any()).
		Return(&models.Dilar{ID: uuid.New(), OwnerName: "Abdul Karim", ContactNo: "01712345678"}, nil)

	c, rec := s.createContext(http.MethodPost, "/dilars", reqBody)

	err := s.handler.CreateDilar(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "Abdul Karim")

	// Dilar responses carry the success/data/message envelope
	var envelope map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Equal("true", string(envelope["success"]))
	s.Contains(envelope, "data")
	s.Contains(envelope, "message")
}

func (s *DilarHandlerSuite) TestCreateDilar_InvalidMobile() {
	reqBody := map[string]string{
		"ownerName": "Abdul Karim",
		"contactNo": "2015551234",
	}

	c, rec := s.createContext(http.MethodPost, "/dilars", reqBody)

	err := s.handler.CreateDilar(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *DilarHandlerSuite) TestCreateDilar_DuplicateContact() {
	reqBody := dto.CreateDilarRequest{
		OwnerName: "Abdul Karim",
		ContactNo: "01712345678",
	}

	s.mockService.EXPECT().
		CreateDilar(gomock.Any()).
		Return(nil, services.ErrContactNoExists)

	c, rec := s.createContext(http.MethodPost, "/dilars", reqBody)

	err := s.handler.CreateDilar(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "DILAR_003")
}

func (s *DilarHandlerSuite) TestListDilars_ActiveFilter() {
	s.mockService.EXPECT().
		ListDilars(gomock.Any(), 1, 20).
		DoAndReturn(func(filters models.DilarFilters, page, limit int) ([]models.Dilar, models.Pagination, error) {
			s.NotNil(filters.IsActive)
			s.True(*filters.IsActive)
			return []models.Dilar{}, models.Pagination{Page: 1, Limit: 20}, nil
		})

	c, rec := s.createContext(http.MethodGet, "/dilars?is_active=true", nil)

	err := s.handler.ListDilars(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DilarHandlerSuite) TestDeactivateDilar_NotFound() {
	dilarID := uuid.New()

	s.mockService.EXPECT().
		DeactivateDilar(dilarID).
		Return(services.ErrDilarNotFound)

	c, rec := s.createContext(http.MethodDelete, "/dilars/"+dilarID.String(), nil)
	c.SetParamNames("dilarId")
	c.SetParamValues(dilarID.String())

	err := s.handler.DeactivateDilar(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "DILAR_001")
}
