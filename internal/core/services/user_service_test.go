package services_test

import (
	"context"
	"testing"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/core/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) mustHash(password string) string {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return hash
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_SeedsWhenMissing() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").
		Return(nil, apperrors.NewNotFoundError("user admin not found")).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" &&
			u.UserID != "" &&
			u.CreatedBy == "system" &&
			utils.CheckPasswordHash("admin123", u.PasswordHash)
	})).Return(nil).Once()

	err := suite.service.EnsureDefaultAdmin(ctx)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_NoopWhenPresent() {
	ctx := context.Background()
	existing := &domain.User{UserID: "U1", Username: "admin", PasswordHash: suite.mustHash("rotated")}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(existing, nil).Once()

	err := suite.service.EnsureDefaultAdmin(ctx)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestVerifyPassword_Success() {
	ctx := context.Background()
	user := &domain.User{UserID: "U1", Username: "admin", PasswordHash: suite.mustHash("s3cret")}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	err := suite.service.VerifyPassword(ctx, "admin", "s3cret")

	suite.Require().NoError(err)
}

func (suite *UserServiceTestSuite) TestVerifyPassword_WrongPassword() {
	ctx := context.Background()
	user := &domain.User{UserID: "U1", Username: "admin", PasswordHash: suite.mustHash("s3cret")}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	err := suite.service.VerifyPassword(ctx, "admin", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBadCredentials)
}

func (suite *UserServiceTestSuite) TestVerifyPassword_UnknownUserMapsToBadCredentials() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").
		Return(nil, apperrors.NewNotFoundError("user ghost not found")).Once()

	err := suite.service.VerifyPassword(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBadCredentials)
}

func (suite *UserServiceTestSuite) TestChangePassword_RotatesHash() {
	ctx := context.Background()
	user := &domain.User{UserID: "U1", Username: "admin", PasswordHash: suite.mustHash("old-pass")}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUserPassword", ctx, "U1", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-pass", hash)
	}), "U1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, dto.ChangePasswordRequest{
		Username:    "admin",
		OldPassword: "old-pass",
		NewPassword: "new-pass",
	})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongOldPassword() {
	ctx := context.Background()
	user := &domain.User{UserID: "U1", Username: "admin", PasswordHash: suite.mustHash("old-pass")}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, dto.ChangePasswordRequest{
		Username:    "admin",
		OldPassword: "not-it",
		NewPassword: "new-pass",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBadCredentials)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUserPassword")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
