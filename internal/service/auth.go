package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/libris/libris/internal/auth"
	"github.com/libris/libris/internal/metrics"
	"github.com/libris/libris/internal/model"
	"github.com/libris/libris/internal/repository"
)

// Auth service errors.
var (
	ErrUsernameExists   = errors.New("user name already exists")
	ErrEmailExists      = errors.New("email already exists")
	ErrUsernameRequired = errors.New("user name is required")
	ErrPasswordRequired = errors.New("password is required")
	// ErrInvalidCredentials is returned for every authentication failure:
	// unknown user, wrong password, bad or expired token, vanished subject.
	// A single error keeps failure causes indistinguishable to callers.
	ErrInvalidCredentials = errors.New("could not validate credentials")
)

// AuthService handles registration, login, and token verification.
type AuthService struct {
	repo    *repository.Repository
	issuer  *auth.TokenIssuer
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, issuer *auth.TokenIssuer, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:    repo,
		issuer:  issuer,
		metrics: recorder,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	UserName string
	Name     *string
	Email    *string
	Password string
}

// Register creates a new user with an Argon2id password hash.
// Uniqueness of user name and email is enforced by the store in a single
// insert, so concurrent registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		return nil, ErrUsernameRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:     userName,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailExists
		case errors.Is(err, repository.ErrUsernameExists):
			return nil, ErrUsernameExists
		default:
			return nil, err
		}
	}

	s.metrics.IncUserRegistered()
	return user, nil
}

// Authenticate checks a user name and password pair and, on success,
// issues a signed access token with the user name as subject.
func (s *AuthService) Authenticate(ctx context.Context, userName, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailure()
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailure()
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.UserName)
	if err != nil {
		return "", err
	}

	s.metrics.IncLoginSuccess()
	return token, nil
}

// VerifyToken validates a bearer token and confirms that its subject
// still exists in the user directory. Tokens for a deleted user fail
// verification on the next request.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*model.Identity, error) {
	claims, err := s.issuer.Verify(tokenString)
	if err != nil {
		s.metrics.IncTokenRejected()
		return nil, ErrInvalidCredentials
	}

	exists, err := s.repo.UserExists(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.metrics.IncTokenRejected()
		return nil, ErrInvalidCredentials
	}

	return &model.Identity{
		Username: claims.Subject,
		TokenID:  claims.ID,
	}, nil
}
