package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookly-app/bookly-server/internal/logger"
	"github.com/bookly-app/bookly-server/internal/model"
)

// Auth composes the user store, password hasher, token manager and blocklist
// into the signup/login/refresh/logout flow.
type Auth struct {
	userStore  model.UserStore
	hasher     model.PasswordHasher
	tokens     model.TokenManager
	blocklist  model.TokenBlocklist
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *logger.Logger
}

// SignupParams contains parameters to register a user.
type SignupParams struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// TokenPair is one access token and one refresh token issued together.
type TokenPair struct {
	Access  string
	Refresh string
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	blocklist model.TokenBlocklist,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:  userStore,
		hasher:     hasher,
		tokens:     tokens,
		blocklist:  blocklist,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Signup registers a new user. The email pre-check gives a friendly duplicate
// error; the storage-level UNIQUE constraint remains the real guarantee and
// maps to the same ErrEmailTaken.
func (a *Auth) Signup(ctx context.Context, params SignupParams) (model.User, error) {
	a.logger.Debug("Auth service: starting user signup", "email", params.Email)

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists", "email", params.Email)
		return model.User{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	passwordHash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		IsVerified:   false,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user signup completed", "email", params.Email, "user_id", savedUser.ID)

	return savedUser, nil
}

// Login verifies credentials and issues an access/refresh token pair. An
// unknown email and a wrong password produce the same ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, TokenPair, error) {
	a.logger.Debug("Auth service: starting user login", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return model.User{}, TokenPair{}, model.ErrInvalidCredentials
	}

	subject := model.Subject{UID: user.ID, Email: user.Email}

	access, err := a.tokens.Issue(subject, false, a.accessTTL)
	if err != nil {
		return model.User{}, TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := a.tokens.Issue(subject, true, a.refreshTTL)
	if err != nil {
		return model.User{}, TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return user, TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh issues a new access token bound to the subject carried in the
// refresh token's claims. The refresh token itself is not rotated or revoked.
func (a *Auth) Refresh(ctx context.Context, claims *model.TokenClaims) (string, error) {
	access, err := a.tokens.Issue(claims.Subject, false, a.accessTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	a.logger.Info("Auth service: access token refreshed", "user_id", claims.Subject.UID)

	return access, nil
}

// Logout revokes the presented token's jti for the blocklist TTL window.
func (a *Auth) Logout(ctx context.Context, claims *model.TokenClaims) error {
	if err := a.blocklist.Revoke(ctx, claims.JTI); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	a.logger.Info("Auth service: user logged out", "user_id", claims.Subject.UID)

	return nil
}
