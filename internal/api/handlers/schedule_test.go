package handlers_test

import (
	"bytes"
	"context"
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

// ScheduleHandlerTestSuite defines the test suite for ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockScheduleSvc *mocks.MockScheduleServiceInterface
	handler         *handlers.ScheduleHandler
	router          *gin.Engine
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScheduleSvc = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.handler = handlers.NewScheduleHandler(suite.mockScheduleSvc)

	suite.router = gin.New()
	suite.router.POST("/schedules/generate", suite.handler.Generate)
	suite.router.PUT("/schedules", suite.handler.Save)
	suite.router.GET("/schedules", suite.handler.Get)
	suite.router.GET("/schedules/shifts", suite.handler.GetShifts)
}

func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleHandlerTestSuite) postJSON(url string, body interface{}) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ScheduleHandlerTestSuite) TestGenerate_Success() {
	accountID := uuid.New()
	resp := &service.ScheduleResponse{
		AccountID: accountID,
		Year:      2025,
		Month:     3,
		Schedule: map[string]*service.RoleSchedule{
			"nurse": {Shifts: []service.SnapshotShift{{Employee: "Dana", Role: "nurse"}}},
		},
	}
	suite.mockScheduleSvc.EXPECT().
		Generate(gomock.Any(), gomock.AssignableToTypeOf(&service.GenerateScheduleRequest{})).
		DoAndReturn(func(_ context.Context, req *service.GenerateScheduleRequest) (*service.ScheduleResponse, error) {
			assert.Equal(suite.T(), accountID, req.AccountID)
			assert.Equal(suite.T(), 3, req.Month)
			return resp, nil
		})

	w := suite.postJSON("/schedules/generate", gin.H{
		"account_id": accountID,
		"year":       2025,
		"month":      3,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ScheduleResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), accountID, got.AccountID)
	assert.Len(suite.T(), got.Schedule["nurse"].Shifts, 1)
}

func (suite *ScheduleHandlerTestSuite) TestGenerate_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGenerate_AccountNotFound() {
	suite.mockScheduleSvc.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrAccountNotFound)

	w := suite.postJSON("/schedules/generate", gin.H{
		"account_id": uuid.New(),
		"month":      3,
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGenerate_SolverDown() {
	suite.mockScheduleSvc.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewUpstreamError("solver", apperrors.ErrSolverExhausted))

	w := suite.postJSON("/schedules/generate", gin.H{
		"account_id": uuid.New(),
		"month":      3,
	})

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGenerate_InvalidMonth() {
	suite.mockScheduleSvc.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidMonth)

	w := suite.postJSON("/schedules/generate", gin.H{
		"account_id": uuid.New(),
		"month":      13,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestSave_EmptySchedule() {
	suite.mockScheduleSvc.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrEmptySchedule)

	raw, err := json.Marshal(gin.H{
		"account_id": uuid.New(),
		"year":       2025,
		"month":      3,
		"schedule":   []gin.H{},
	})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPut, "/schedules", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGet_Success() {
	accountID := uuid.New()
	resp := &service.ScheduleResponse{AccountID: accountID, Year: 2025, Month: 3}
	suite.mockScheduleSvc.EXPECT().
		GetSchedule(gomock.Any(), accountID, 2025, 3).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedules?account_id="+accountID.String()+"&year=2025&month=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGet_NotFound() {
	accountID := uuid.New()
	suite.mockScheduleSvc.EXPECT().
		GetSchedule(gomock.Any(), accountID, 0, 3).
		Return(nil, apperrors.ErrScheduleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/schedules?account_id="+accountID.String()+"&month=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGet_BadAccountID() {
	req := httptest.NewRequest(http.MethodGet, "/schedules?account_id=not-a-uuid&month=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGet_MissingMonth() {
	req := httptest.NewRequest(http.MethodGet, "/schedules?account_id="+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body handlers.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(suite.T(), body.Error, "month")
}

func (suite *ScheduleHandlerTestSuite) TestGetShifts_Success() {
	accountID := uuid.New()
	suite.mockScheduleSvc.EXPECT().
		GetShifts(gomock.Any(), accountID, 2025, 3).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedules/shifts?account_id="+accountID.String()+"&year=2025&month=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
