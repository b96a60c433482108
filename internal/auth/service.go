package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/victormanase/apartment-rental-app/internal/core"
	"github.com/victormanase/apartment-rental-app/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
)

// Service owns account lifecycle: registration, login, password reset and
// account deletion. It never reports whether a login failed on the username
// or on the password.
type Service struct {
	repo    user.Repository
	tokens  *TokenManager
	timeout time.Duration
}

func NewService(
	repo user.Repository,
	tokens *TokenManager,
	timeout time.Duration,
) *Service {
	return &Service{
		repo:    repo,
		tokens:  tokens,
		timeout: timeout,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*user.User, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, s.storeErr("create user", err)
	}

	return u, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			// Burn the same bcrypt cost for unknown usernames so response
			// timing does not leak which usernames exist.
			core.VerifyPasswordTimingSafe(req.Password, nil)
			return "", ErrInvalidCredentials
		}
		return "", s.storeErr("get user", err)
	}

	if !core.VerifyPasswordTimingSafe(req.Password, &u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

func (s *Service) ResetPassword(
	ctx context.Context,
	req ResetPasswordRequest,
) error {
	passwordHash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.UpdatePassword(ctx, req.Username, passwordHash); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return err
		}
		return s.storeErr("update password", err)
	}

	return nil
}

// DeleteUser removes the account if it exists. Deleting an unknown username
// is a no-op success, so repeated deletes converge on the same state.
func (s *Service) DeleteUser(ctx context.Context, username string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.Delete(ctx, username); err != nil {
		return s.storeErr("delete user", err)
	}

	return nil
}

func (s *Service) opContext(
	ctx context.Context,
) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, core.ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
