// Package services holds the simulated external services: auth,
// payments, competitor price comparison and the store locator. Each
// applies a fixed delay and returns mock data; none talks to a real
// backend.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safar/go-store-assistant/internal/kvstore"
	"github.com/safar/go-store-assistant/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Auth simulates the sign-in/sign-up flows. Issued tokens and the
// signed-in user are persisted under well-known keys.
type Auth struct {
	storage AuthStorage
	delay   time.Duration
	logger  *zap.Logger
}

type AuthStorage interface {
	GetJSON(ctx context.Context, key string, v interface{}) error
	SetJSON(ctx context.Context, key string, v interface{}) error
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

func NewAuth(storage AuthStorage, delay time.Duration, logger *zap.Logger) *Auth {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auth{storage: storage, delay: delay, logger: logger}
}

// SignIn accepts any email/password pair after the simulated delay.
func (a *Auth) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	if err := simulateDelay(ctx, a.delay); err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      nameFromEmail(email),
		CreatedAt: time.Now(),
	}
	if err := a.persist(ctx, user, "token_"+user.ID); err != nil {
		return nil, err
	}

	a.logger.Info("user signed in", zap.String("email", email))
	return user, nil
}

// SocialSignIn simulates a third-party provider flow (google,
// facebook); a shorter delay than the password flow.
func (a *Auth) SocialSignIn(ctx context.Context, provider string) (*models.User, error) {
	if err := simulateDelay(ctx, a.delay*2/3); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     provider + ".user@example.com",
		Name:      capitalize(provider) + " User",
		Provider:  provider,
		CreatedAt: time.Now(),
	}
	if err := a.persist(ctx, user, provider+"_token_"+user.ID); err != nil {
		return nil, err
	}

	a.logger.Info("social sign-in", zap.String("provider", provider))
	return user, nil
}

// CurrentUser returns the persisted user, if any.
func (a *Auth) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := a.storage.GetJSON(ctx, kvstore.KeyUser, &user)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &user, nil
}

// SignOut clears the persisted user and token.
func (a *Auth) SignOut(ctx context.Context) error {
	if err := a.storage.Delete(ctx, kvstore.KeyUser); err != nil {
		return err
	}
	return a.storage.Delete(ctx, kvstore.KeyAuthToken)
}

func (a *Auth) persist(ctx context.Context, user *models.User, token string) error {
	if err := a.storage.SetJSON(ctx, kvstore.KeyUser, user); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	if err := a.storage.Set(ctx, kvstore.KeyAuthToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func nameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

func simulateDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
