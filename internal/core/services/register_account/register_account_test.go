package registeraccount

import (
	"context"
	"errors"
	"signup/internal/core/domain/account"
	c "signup/internal/core/domain/common"
	"signup/internal/core/domain/logging"
	"signup/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

const EMAIL = c.Email("ana@example.com")

type testSuite struct {
	suite.Suite
	Logger   *logging.FakeLogger
	Registry *account.FakeEmailRegistry
	Service  services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Registry = account.NewFakeEmailRegistry()
	suite.Service = New(suite.Logger, suite.Registry)
}

func TestRegisterAccountService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	_, err := suite.Service.Run(context.Background(), Input{Name: "Ana", Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Contains(suite.Registry.Emails, EMAIL)
}

func (suite *testSuite) TestEmailAlreadyExists() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Name: "Ana", Email: EMAIL})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{Name: "Other", Email: EMAIL})
	suite.Require().True(errors.Is(err, account.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestRegistryError() {
	suite.Registry.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Name: "Ana", Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	assert.False(errors.Is(err, account.ErrEmailAlreadyExists))
	assert.Equal(1, suite.Logger.CountLevel(logging.ERROR))
}
