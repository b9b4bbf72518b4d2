package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamforge/teamforge/internal/domain"
	"github.com/teamforge/teamforge/internal/repository"
	"github.com/teamforge/teamforge/internal/token"
)

// AuthService handles signup, login and token-to-user resolution.
type AuthService struct {
	users  UserStore
	tokens *token.Manager
}

// NewAuthService creates a new auth service.
func NewAuthService(users UserStore, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignupInput is the validated payload for a new registration.
type SignupInput struct {
	FirstName string
	LastName  string
	UserName  string
	EmailID   string
	Password  string
}

// Signup validates the input, hashes the password and stores the user.
// Validation fails before any store write, so a rejected signup never
// leaves a partial document behind.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	if err := validateSignup(in); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		UserName:     in.UserName,
		EmailID:      in.EmailID,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Login verifies the credentials and returns a signed session token.
// A missing user and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredential.
func (s *AuthService) Login(ctx context.Context, userName, password string) (string, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredential
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredential
	}

	tok, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return tok, nil
}

// Authenticate resolves a session token to the user it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, tok string) (*domain.User, error) {
	userID, err := s.tokens.Verify(tok)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("user no longer exists")
		}
		return nil, err
	}
	return user, nil
}
