package commands

import (
	"context"
	"log/slog"

	"invoice-dashboard/internal/domain/user"
	"invoice-dashboard/internal/pkg/errs"
	"invoice-dashboard/internal/pkg/jwt"
	"invoice-dashboard/internal/pkg/password"
	"invoice-dashboard/internal/usecase/queries"
	"invoice-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrUserInactive    = errs.New("user inactive")
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

// SignInErrorKind enumerates the classified sign-in failure variants.
type SignInErrorKind string

const (
	SignInKindCredentials   SignInErrorKind = "CredentialsSignin"
	SignInKindCallbackRoute SignInErrorKind = "CallbackRouteError"
	SignInKindUnknown       SignInErrorKind = "Unknown"
)

// SignInError is the tagged outcome of a failed sign-in. Anything the flow
// cannot classify is returned as a plain error and propagates to the caller.
type SignInError struct {
	Kind  SignInErrorKind
	Cause error
}

func (e *SignInError) Error() string {
	if e.Cause != nil {
		return string(e.Kind) + ": " + e.Cause.Error()
	}
	return string(e.Kind)
}

func (e *SignInError) Unwrap() error {
	return e.Cause
}

// UserMessage maps the failure variant to its display string.
func (e *SignInError) UserMessage() string {
	switch e.Kind {
	case SignInKindCredentials:
		return "Invalid credentials."
	case SignInKindCallbackRoute:
		if e.Cause != nil {
			return e.Cause.Error()
		}
		// Nested cause can be absent; never show an empty message.
		return "Something went wrong."
	default:
		return "Something went wrong."
	}
}

type LoginForm struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type SignInResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type AuthCommands interface {
	SignIn(ctx context.Context, form LoginForm) (*SignInResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) SignIn(ctx context.Context, form LoginForm) (*SignInResult, error) {
	credentials, err := user.NewCredentials(form.Email, form.Password)
	if err != nil {
		// Malformed credentials are indistinguishable from wrong ones.
		return nil, &SignInError{Kind: SignInKindCredentials, Cause: err}
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, &SignInError{Kind: SignInKindUnknown, Cause: err}
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID)
	})
	if err != nil {
		// Not critical - login already succeeded
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &SignInResult{
		UserID: userView.ID,
		Role:   role,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Store-side failure during the sign-in callback: keep the cause.
		return nil, &SignInError{Kind: SignInKindCallbackRoute, Cause: err}
	}

	if userView == nil {
		// Same variant as a password mismatch to prevent user enumeration
		return nil, &SignInError{Kind: SignInKindCredentials}
	}

	if !userView.IsActive {
		return nil, &SignInError{Kind: SignInKindCredentials}
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, &SignInError{Kind: SignInKindCredentials, Cause: err}
	}

	return userView, nil
}
