package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dimasadrian/portfolio/internal/application/mocks"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/internal/domain/user"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/auth"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type AuthUseCaseSuite struct {
	suite.Suite
	users    *mocks.UserRepository
	profiles *mocks.ProfileRepository
	sessions *mocks.SessionStore
	jwt      *auth.JWTService
	login    *LoginUseCase
	owner    *user.User
}

func (s *AuthUseCaseSuite) SetupTest() {
	s.users = new(mocks.UserRepository)
	s.profiles = new(mocks.ProfileRepository)
	s.sessions = new(mocks.SessionStore)
	s.jwt = auth.NewJWTService("secret", time.Hour)

	hash, err := auth.HashPassword("correct-horse")
	s.Require().NoError(err)
	s.owner = &user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash}

	s.login = NewLoginUseCase(s.users, s.profiles, s.sessions, s.jwt,
		LoginLimits{MaxAttempts: 3, Window: time.Minute}, logger.NewNop())
}

func (s *AuthUseCaseSuite) TestLoginSuccessSeedsProfile() {
	s.sessions.On("LoginAttempts", mock.Anything, "owner@example.com").Return(0, nil)
	s.users.On("FindByEmail", mock.Anything, "owner@example.com").Return(s.owner, nil)
	s.sessions.On("ResetLoginAttempts", mock.Anything, "owner@example.com").Return(nil)
	s.profiles.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(p *profile.Profile) bool {
		return p.ID == s.owner.ID && *p.FullName == "owner"
	})).Return(nil)

	out, err := s.login.Execute(context.Background(), LoginInput{Email: " Owner@Example.com ", Password: "correct-horse"})

	s.Require().NoError(err)
	claims, err := s.jwt.ValidateToken(out.AccessToken)
	s.Require().NoError(err)
	s.Equal(s.owner.ID, claims.OwnerID)
	s.profiles.AssertExpectations(s.T())
}

func (s *AuthUseCaseSuite) TestLoginWrongPasswordCountsAttempt() {
	s.sessions.On("LoginAttempts", mock.Anything, "owner@example.com").Return(1, nil)
	s.users.On("FindByEmail", mock.Anything, "owner@example.com").Return(s.owner, nil)
	s.sessions.On("RegisterFailedLogin", mock.Anything, "owner@example.com", time.Minute).Return(2, nil).Once()

	_, err := s.login.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "nope"})

	s.ErrorIs(err, apperror.ErrUnauthorized)
	s.sessions.AssertExpectations(s.T())
}

func (s *AuthUseCaseSuite) TestLoginUnknownEmailIsUnauthorized() {
	s.sessions.On("LoginAttempts", mock.Anything, "ghost@example.com").Return(0, nil)
	s.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, apperror.NewNotFound("user", "ghost@example.com"))
	s.sessions.On("RegisterFailedLogin", mock.Anything, "ghost@example.com", time.Minute).Return(1, nil)

	_, err := s.login.Execute(context.Background(), LoginInput{Email: "ghost@example.com", Password: "x"})

	s.ErrorIs(err, apperror.ErrUnauthorized)
	s.NotErrorIs(err, apperror.ErrNotFound)
}

func (s *AuthUseCaseSuite) TestLoginRateLimited() {
	s.sessions.On("LoginAttempts", mock.Anything, "owner@example.com").Return(3, nil)

	_, err := s.login.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "correct-horse"})

	s.ErrorIs(err, apperror.ErrRateLimited)
	s.users.AssertNotCalled(s.T(), "FindByEmail", mock.Anything, mock.Anything)
}

func (s *AuthUseCaseSuite) TestLoginStoreFailureDoesNotBlock() {
	s.sessions.On("LoginAttempts", mock.Anything, "owner@example.com").Return(0, errors.New("redis down"))
	s.users.On("FindByEmail", mock.Anything, "owner@example.com").Return(s.owner, nil)
	s.sessions.On("ResetLoginAttempts", mock.Anything, "owner@example.com").Return(errors.New("redis down"))
	s.profiles.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(nil)

	_, err := s.login.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "correct-horse"})
	s.NoError(err)
}

func (s *AuthUseCaseSuite) TestLogoutRevokesForRemainingLifetime() {
	token, err := s.jwt.GenerateToken(s.owner.ID)
	s.Require().NoError(err)
	claims, err := s.jwt.ValidateToken(token)
	s.Require().NoError(err)

	s.sessions.On("RevokeToken", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 59*time.Minute && ttl <= time.Hour
	})).Return(nil)

	s.NoError(NewLogoutUseCase(s.sessions, logger.NewNop()).Execute(context.Background(), claims))
	s.sessions.AssertExpectations(s.T())
}

func (s *AuthUseCaseSuite) TestSessionReturnsUserAndProfile() {
	p := &profile.Profile{ID: s.owner.ID}
	s.users.On("FindByID", mock.Anything, s.owner.ID).Return(s.owner, nil)
	s.profiles.On("FindByID", mock.Anything, s.owner.ID).Return(p, nil)

	out, err := NewSessionUseCase(s.users, s.profiles).Execute(context.Background(), s.owner.ID)
	s.Require().NoError(err)
	s.Equal(s.owner, out.User)
	s.Equal(p, out.Profile)
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseSuite))
}
