package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shift-planner-backend/internal/api/handlers"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/mocks"
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmployeeHandlerTestSuite defines the test suite for EmployeeHandler
type EmployeeHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEmployeeSvc *mocks.MockEmployeeServiceInterface
	handler         *handlers.EmployeeHandler
	router          *gin.Engine
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeSvc = mocks.NewMockEmployeeServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEmployeeHandler(suite.mockEmployeeSvc)

	suite.router = gin.New()
	suite.router.POST("/employees", suite.handler.Create)
	suite.router.GET("/employees", suite.handler.List)
	suite.router.GET("/employees/:id", suite.handler.Get)
	suite.router.PUT("/employees/:id", suite.handler.Update)
	suite.router.DELETE("/employees/:id", suite.handler.Delete)
}

func (suite *EmployeeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeHandlerTestSuite) TestCreate_Success() {
	accountID := uuid.New()
	resp := &service.EmployeeResponse{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      "Dana",
		Roles:     []string{"nurse"},
		Rate:      1.0,
	}
	suite.mockEmployeeSvc.EXPECT().
		Create(gomock.AssignableToTypeOf(&service.CreateEmployeeRequest{})).
		DoAndReturn(func(req *service.CreateEmployeeRequest) (*service.EmployeeResponse, error) {
			assert.Equal(suite.T(), accountID, req.AccountID)
			assert.Equal(suite.T(), "Dana", req.Name)
			return resp, nil
		})

	raw, err := json.Marshal(gin.H{
		"account_id": accountID,
		"name":       "Dana",
		"roles":      []string{"nurse"},
		"rate":       1.0,
	})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.EmployeeResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Dana", got.Name)
}

func (suite *EmployeeHandlerTestSuite) TestCreate_ValidationError() {
	suite.mockEmployeeSvc.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("name is required"))

	raw, err := json.Marshal(gin.H{"account_id": uuid.New()})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestGet_NotFound() {
	id := uuid.New()
	suite.mockEmployeeSvc.EXPECT().Get(id).Return(nil, apperrors.ErrEmployeeNotFound)

	req := httptest.NewRequest(http.MethodGet, "/employees/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestGet_BadID() {
	req := httptest.NewRequest(http.MethodGet, "/employees/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestList_DefaultPagination() {
	accountID := uuid.New()
	resp := &service.EmployeeListResponse{
		Employees: []service.EmployeeResponse{{ID: uuid.New(), Name: "Dana"}},
		Total:     1,
	}
	suite.mockEmployeeSvc.EXPECT().List(accountID, 50, 0).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/employees?account_id="+accountID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.EmployeeListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Employees, 1)
}

func (suite *EmployeeHandlerTestSuite) TestUpdate_Success() {
	id := uuid.New()
	rate := 0.5
	resp := &service.EmployeeResponse{ID: id, Name: "Dana", Rate: rate}
	suite.mockEmployeeSvc.EXPECT().
		Update(id, gomock.AssignableToTypeOf(&service.UpdateEmployeeRequest{})).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateEmployeeRequest) (*service.EmployeeResponse, error) {
			suite.Require().NotNil(req.Rate)
			assert.InDelta(suite.T(), rate, *req.Rate, 0.001)
			assert.Nil(suite.T(), req.Name)
			return resp, nil
		})

	raw, err := json.Marshal(gin.H{"rate": rate})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPut, "/employees/"+id.String(), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockEmployeeSvc.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/employees/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
