package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
	"gymplan/internal/repository"
	"gymplan/internal/session"
)

const bcryptCost = 10

// AuthService handles account registration and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.Account, error)
	Login(ctx context.Context, username, password string) (*model.Account, *session.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	accounts repository.AccountRepository
	sessions session.Store
}

// NewAuthService creates a new authentication service.
func NewAuthService(accounts repository.AccountRepository, sessions session.Store) AuthService {
	return &authService{accounts: accounts, sessions: sessions}
}

// Register creates a new account with a hashed password. No prior existence
// check: the store's unique constraints arbitrate concurrent sign-ups, and a
// duplicate surfaces as ErrAccountConflict.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.Account, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrAccountConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// Login verifies the credentials and creates a server-side session. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*model.Account, *session.Session, error) {
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	sess, err := session.New(account.ID, account.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("store session: %w", err)
	}
	return account, &sess, nil
}

// Logout destroys the session. A store failure is reported so the handler
// can answer 500 instead of pretending the token is gone.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
