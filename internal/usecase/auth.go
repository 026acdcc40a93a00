package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	uuid "github.com/google/uuid"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/core/port"
	"github.com/arklim/access-pass-service/internal/infra/security"
)

var (
	// ErrInvalidPassword indicates the password does not match the stored credential.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidAccessToken indicates the provided access token is malformed or signature validation failed.
	ErrInvalidAccessToken = errors.New("invalid access token")
	// ErrExpiredAccessToken indicates the provided access token has expired.
	ErrExpiredAccessToken = errors.New("access token expired")
)

// AuthService coordinates registration, login, and token verification.
type AuthService struct {
	users  port.UserRepository
	tokens *security.TokenManager
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users port.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Age         int
	PhoneNumber string
	Address     string
	Password    string
	PassLevel   int
}

// Register creates a pass and a user referencing it as one unit, then issues
// an access token for the new account.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.User, string, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if input.FirstName == "" || input.LastName == "" {
		return domain.User{}, "", fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if input.Age < 0 {
		return domain.User{}, "", fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
	}
	if input.Password == "" {
		return domain.User{}, "", fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if !domain.ValidLevel(input.PassLevel) {
		return domain.User{}, "", ErrInvalidLevel
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	pass := domain.Pass{
		ID:        uuid.NewString(),
		Level:     input.PassLevel,
		CreatedAt: now,
	}
	user := domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Age:          input.Age,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		PasswordHash: passwordHash,
		PassID:       &pass.ID,
	}

	if err := s.users.CreateWithPass(ctx, user, pass); err != nil {
		return domain.User{}, "", fmt.Errorf("create user with pass: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Login validates the (first name, last name, password) triple and issues an
// access token. The name pair is not unique; the first match wins.
func (s *AuthService) Login(ctx context.Context, firstName, lastName, password string) (string, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" || password == "" {
		return "", fmt.Errorf("%w: first name, last name, and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetByName(ctx, firstName, lastName)
	if err != nil {
		return "", err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// CurrentUser resolves the user behind an authenticated subject id.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sanitized := *user
	sanitized.PasswordHash = ""
	return &sanitized, nil
}

// ParseAccessToken verifies the token and returns its claims.
func (s *AuthService) ParseAccessToken(token string) (*security.AccessTokenClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, security.ErrTokenExpired) {
			return nil, ErrExpiredAccessToken
		}
		return nil, ErrInvalidAccessToken
	}

	return claims, nil
}
