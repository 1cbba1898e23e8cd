package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shift-planner-backend/internal/api/handlers"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/mocks"
	"shift-planner-backend/internal/service"
	"shift-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AccountHandlerTestSuite defines the test suite for AccountHandler
type AccountHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockAccountSvc *mocks.MockAccountServiceInterface
	httpSuite      *testutils.HTTPTestSuite
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAccountSvc = mocks.NewMockAccountServiceInterface(suite.ctrl)
	handler := handlers.NewAccountHandler(suite.mockAccountSvc)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/auth/register", handler.Register)
	suite.httpSuite.Router.POST("/auth/token", handler.Token)
	suite.httpSuite.Router.GET("/accounts/:id", handler.Get)
	suite.httpSuite.Router.DELETE("/accounts/:id", handler.Delete)
}

func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountHandlerTestSuite) TestRegister_Success() {
	resp := &service.AccountResponse{
		ID:    uuid.New(),
		Name:  "North Wing",
		Email: "ward@hospital.example",
	}
	suite.mockAccountSvc.EXPECT().
		Register(gomock.AssignableToTypeOf(&service.RegisterAccountRequest{})).
		Return(resp, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/register",
		map[string]string{"name": "North Wing", "email": "ward@hospital.example"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.AccountResponse
	assert.NoError(suite.T(), testutils.DecodeResponse(w, &got))
	assert.Equal(suite.T(), "ward@hospital.example", got.Email)
}

func (suite *AccountHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.mockAccountSvc.EXPECT().
		Register(gomock.Any()).
		Return(nil, apperrors.ErrAccountExists)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/register",
		map[string]string{"name": "North Wing", "email": "ward@hospital.example"})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestRegister_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	w := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestToken_Success() {
	resp := &service.TokenResponse{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}
	suite.mockAccountSvc.EXPECT().
		Token(gomock.AssignableToTypeOf(&service.TokenRequest{})).
		Return(resp, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/token",
		map[string]string{"email": "ward@hospital.example"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TokenResponse
	assert.NoError(suite.T(), testutils.DecodeResponse(w, &got))
	assert.Equal(suite.T(), "signed.jwt.token", got.Token)
}

func (suite *AccountHandlerTestSuite) TestToken_UnknownAccount() {
	suite.mockAccountSvc.EXPECT().
		Token(gomock.Any()).
		Return(nil, apperrors.ErrAccountNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/token",
		map[string]string{"email": "ward@hospital.example"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockAccountSvc.EXPECT().Delete(id).Return(nil)

	w := suite.httpSuite.MakeRequest(http.MethodDelete, "/accounts/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
