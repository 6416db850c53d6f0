package createuser

import (
	"net/http"
	"net/http/httptest"
	"signup/internal/core/domain/account"
	c "signup/internal/core/domain/common"
	"signup/internal/core/domain/logging"
	ratelimiter "signup/internal/core/domain/rate_limiter"
	ratelimiting "signup/internal/core/services/rate_limiting"
	registeraccount "signup/internal/core/services/register_account"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Registry *account.FakeEmailRegistry
	Handler  *Handler
}

func (suite *testSuite) SetupTest() {
	suite.Registry = account.NewFakeEmailRegistry()
	suite.Handler = New(registeraccount.New(logging.NewFakeLogger(), suite.Registry))
}

func TestCreateUserHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) post(body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	suite.Handler.ServeHTTP(rw, r)
	return rw
}

func (suite *testSuite) TestCreated() {
	rw := suite.post(`{"name":"Ana","email":"Ana@Example.com","password":"Abcdef1!"}`)

	assert := suite.Require()
	assert.Equal(http.StatusCreated, rw.Code)
	assert.JSONEq(`{}`, rw.Body.String())
	assert.Contains(suite.Registry.Emails, c.Email("ana@example.com"))
}

func (suite *testSuite) TestInvalidJSON() {
	rw := suite.post(`{"name":`)

	suite.Require().Equal(http.StatusBadRequest, rw.Code)
	suite.Require().JSONEq(`{"error":"invalid request data"}`, rw.Body.String())
}

func (suite *testSuite) TestValidationErrors() {
	rw := suite.post(`{"name":"","email":"nope","password":"short"}`)

	assert := suite.Require()
	assert.Equal(http.StatusBadRequest, rw.Code)
	assert.Contains(rw.Body.String(), `"name"`)
	assert.Contains(rw.Body.String(), `"email"`)
	assert.Contains(rw.Body.String(), `"password"`)
	assert.Empty(suite.Registry.Emails)
}

func (suite *testSuite) TestDuplicateEmail() {
	body := `{"name":"Ana","email":"ana@example.com","password":"Abcdef1!"}`
	suite.Require().Equal(http.StatusCreated, suite.post(body).Code)

	rw := suite.post(body)
	suite.Require().Equal(http.StatusUnprocessableEntity, rw.Code)
	suite.Require().JSONEq(`{"error":"email already exists"}`, rw.Body.String())
}

func (suite *testSuite) TestRegistryFailure() {
	suite.Registry.ReturnError = true

	rw := suite.post(`{"name":"Ana","email":"ana@example.com","password":"Abcdef1!"}`)

	suite.Require().Equal(http.StatusInternalServerError, rw.Code)
}

func (suite *testSuite) TestRateLimited() {
	limiter := ratelimiter.NewFakeRateLimiter(false)
	handler := New(ratelimiting.New(
		logging.NewFakeLogger(),
		limiter,
		ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute},
		registeraccount.New(logging.NewFakeLogger(), suite.Registry),
	))
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(
		http.MethodPost,
		"/users",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com","password":"Abcdef1!"}`),
	)
	r.RemoteAddr = "192.0.2.7:51000"

	handler.ServeHTTP(rw, r)

	assert := suite.Require()
	assert.Equal(http.StatusTooManyRequests, rw.Code)
	assert.JSONEq(`{"error":"too many requests"}`, rw.Body.String())
	assert.Empty(suite.Registry.Emails)
	assert.Equal([]string{"register_account::192.0.2.7"}, limiter.Keys())
}
