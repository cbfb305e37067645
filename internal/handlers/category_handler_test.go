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

// CategoryHandlerSuite defines the test suite for CategoryHandler
type CategoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	echo        *echo.Echo
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *CategoryHandlerSuite) TestCreateCategory_ReturnsBareObject() {
	reqBody := dto.CreateCategoryRequest{
		Name: "Utilities",
		Icon: "bolt",
	}

	s.mockService.EXPECT().
		CreateCategory(gomock.Any()).
		Return(&models.Category{ID: uuid.New(), Name: "Utilities", Icon: "bolt"}, nil)

	c, rec := s.createContext(http.MethodPost, "/categories", reqBody)

	err := s.handler.CreateCategory(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	// Category responses have no envelope: fields sit at the top level
	var body map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body, "name")
	s.NotContains(body, "data")
}

func (s *CategoryHandlerSuite) TestGetCategory_ReturnsBareObject() {
	categoryID := uuid.New()

	s.mockService.EXPECT().
		GetCategory(categoryID).
		Return(&models.Category{ID: categoryID, Name: "Rent"}, nil)

	c, rec := s.createContext(http.MethodGet, "/categories/"+categoryID.String(), nil)
	c.SetParamNames("categoryId")
	c.SetParamValues(categoryID.String())

	err := s.handler.GetCategory(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body, "name")
	s.NotContains(body, "data")
}

func (s *CategoryHandlerSuite) TestListCategories_ReturnsBareArray() {
	s.mockService.EXPECT().
		ListCategories().
		Return([]models.Category{
			{ID: uuid.New(), Name: "Rent"},
			{ID: uuid.New(), Name: "Utilities"},
		}, nil)

	c, rec := s.createContext(http.MethodGet, "/categories", nil)

	err := s.handler.ListCategories(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var list []models.Category
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Len(list, 2)
}

func (s *CategoryHandlerSuite) TestCreateCategory_DuplicateName() {
	reqBody := dto.CreateCategoryRequest{Name: "Rent"}

	s.mockService.EXPECT().
		CreateCategory(gomock.Any()).
		Return(nil, services.ErrCategoryNameExists)

	c, rec := s.createContext(http.MethodPost, "/categories", reqBody)

	err := s.handler.CreateCategory(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "CATEGORY_002")
}

func (s *CategoryHandlerSuite) TestDeleteCategory_NotFound() {
	categoryID := uuid.New()

	s.mockService.EXPECT().
		DeleteCategory(categoryID).
		Return(services.ErrCategoryNotFound)

	c, rec := s.createContext(http.MethodDelete, "/categories/"+categoryID.String(), nil)
	c.SetParamNames("categoryId")
	c.SetParamValues(categoryID.String())

	err := s.handler.DeleteCategory(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "CATEGORY_001")
}
