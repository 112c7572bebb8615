//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"invoice-dashboard/internal/pkg/jwt"
	"invoice-dashboard/internal/pkg/password"
	"invoice-dashboard/internal/usecase/commands"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeUserReadStore struct {
	byEmail     map[string]*queries.AuthorizedUserView
	hashByEmail map[string]string
	byID        map[uuid.UUID]*queries.AuthorizedUserView
	failWith    error
}

func newFakeUserReadStore() *fakeUserReadStore {
	return &fakeUserReadStore{
		byEmail:     map[string]*queries.AuthorizedUserView{},
		hashByEmail: map[string]string{},
		byID:        map[uuid.UUID]*queries.AuthorizedUserView{},
	}
}

func (s *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.byID[id], nil
}

func (s *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	if s.failWith != nil {
		return nil, "", s.failWith
	}
	return s.byEmail[email], s.hashByEmail[email], nil
}

func (s *fakeUserReadStore) addUser(email, plainPassword string, active bool) *queries.AuthorizedUserView {
	hash, _ := password.HashPassword(plainPassword)
	view := &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    email,
		Role:     "member",
		IsActive: active,
	}
	s.byEmail[email] = view
	s.hashByEmail[email] = hash
	s.byID[view.ID] = view
	return view
}

type AuthCommandsTestSuite struct {
	suite.Suite
	uow       *fakeUoW
	readStore *fakeUserReadStore
	jwtSvc    *jwt.Service
	commands  commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.readStore = newFakeUserReadStore()
	s.jwtSvc = jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute, 168*time.Hour)
	s.commands = commands.NewAuthCommands(s.uow, s.readStore, s.jwtSvc)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestSignIn() {
	s.Run("success: returns tokens for valid credentials", func() {
		view := s.readStore.addUser("amy@burns.com", "password123", true)

		result, err := s.commands.SignIn(context.Background(), commands.LoginForm{
			Email:    "amy@burns.com",
			Password: "password123",
		})

		require.NoError(s.T(), err)
		s.Equal(view.ID, result.UserID)
		s.NotEmpty(result.TokenPair.AccessToken)
		s.NotEmpty(result.TokenPair.RefreshToken)
	})

	credentialCases := []struct {
		name string
		form commands.LoginForm
	}{
		{"malformed email", commands.LoginForm{Email: "not-an-email", Password: "password123"}},
		{"short password", commands.LoginForm{Email: "amy@burns.com", Password: "short"}},
		{"unknown email", commands.LoginForm{Email: "nobody@example.com", Password: "password123"}},
		{"wrong password", commands.LoginForm{Email: "amy@burns.com", Password: "wrongpassword"}},
	}
	for _, tc := range credentialCases {
		s.Run("credentials variant: "+tc.name, func() {
			s.SetupTest()
			s.readStore.addUser("amy@burns.com", "password123", true)

			_, err := s.commands.SignIn(context.Background(), tc.form)

			var signInErr *commands.SignInError
			require.ErrorAs(s.T(), err, &signInErr)
			s.Equal(commands.SignInKindCredentials, signInErr.Kind)
		})
	}

	s.Run("inactive account is indistinguishable from bad credentials", func() {
		s.SetupTest()
		s.readStore.addUser("amy@burns.com", "password123", false)

		_, err := s.commands.SignIn(context.Background(), commands.LoginForm{
			Email:    "amy@burns.com",
			Password: "password123",
		})

		var signInErr *commands.SignInError
		require.ErrorAs(s.T(), err, &signInErr)
		s.Equal(commands.SignInKindCredentials, signInErr.Kind)
	})

	s.Run("store failure is the callback variant and keeps its cause", func() {
		s.SetupTest()
		storeErr := errors.New("connection refused")
		s.readStore.failWith = storeErr

		_, err := s.commands.SignIn(context.Background(), commands.LoginForm{
			Email:    "amy@burns.com",
			Password: "password123",
		})

		var signInErr *commands.SignInError
		require.ErrorAs(s.T(), err, &signInErr)
		s.Equal(commands.SignInKindCallbackRoute, signInErr.Kind)
		s.ErrorIs(signInErr, storeErr)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	s.Run("success: issues a fresh pair from a refresh token", func() {
		view := s.readStore.addUser("amy@burns.com", "password123", true)
		refresh, err := s.jwtSvc.GenerateRefreshToken(view.ID, "member")
		require.NoError(s.T(), err)

		pair, err := s.commands.RefreshToken(context.Background(), refresh)

		require.NoError(s.T(), err)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)
	})

	s.Run("access token is not accepted as a refresh token", func() {
		s.SetupTest()
		view := s.readStore.addUser("amy@burns.com", "password123", true)
		access, err := s.jwtSvc.GenerateAccessToken(view.ID, "member")
		require.NoError(s.T(), err)

		_, err = s.commands.RefreshToken(context.Background(), access)

		s.ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("deactivated user cannot refresh", func() {
		s.SetupTest()
		view := s.readStore.addUser("amy@burns.com", "password123", false)
		refresh, err := s.jwtSvc.GenerateRefreshToken(view.ID, "member")
		require.NoError(s.T(), err)

		_, err = s.commands.RefreshToken(context.Background(), refresh)

		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("garbage token is rejected", func() {
		s.SetupTest()

		_, err := s.commands.RefreshToken(context.Background(), "not-a-token")

		s.ErrorIs(err, commands.ErrTokenValidation)
	})
}

func TestSignInErrorUserMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      *commands.SignInError
		expected string
	}{
		{
			name:     "credentials variant has a fixed message",
			err:      &commands.SignInError{Kind: commands.SignInKindCredentials, Cause: errors.New("hash mismatch")},
			expected: "Invalid credentials.",
		},
		{
			name:     "callback variant surfaces its cause",
			err:      &commands.SignInError{Kind: commands.SignInKindCallbackRoute, Cause: errors.New("connection refused")},
			expected: "connection refused",
		},
		{
			name:     "callback variant without a cause falls back",
			err:      &commands.SignInError{Kind: commands.SignInKindCallbackRoute},
			expected: "Something went wrong.",
		},
		{
			name:     "unknown variant falls back",
			err:      &commands.SignInError{Kind: commands.SignInKindUnknown, Cause: errors.New("oops")},
			expected: "Something went wrong.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.UserMessage())
		})
	}
}
