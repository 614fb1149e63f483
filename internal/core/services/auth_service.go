package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/jwt"
	"schoolconnect/internal/pkg/password"
	"schoolconnect/internal/pkg/validation"

	"go.uber.org/zap"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   *password.Hasher
	tokens   *jwt.Manager
	log      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher *password.Hasher,
	tokens *jwt.Manager,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		log:      log,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email     string  `json:"email" validate:"required,email"`
	Name      string  `json:"name" validate:"required"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	SchoolID  *string `json:"school_id"`
	MandalID  *string `json:"mandal_id"`
	BatchYear *int    `json:"batch_year"`
	Password  string  `json:"password" validate:"required"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// Register creates a new, unapproved user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	// bcrypt limit is in bytes, not characters
	if len(input.Password) > password.MaxLength {
		return nil, validation.NewError("password", fmt.Sprintf("password must be at most %d bytes", password.MaxLength))
	}

	role := domain.DefaultRole
	if input.Role != "" {
		role = domain.Role(input.Role)
		if !role.Valid() {
			return nil, validation.NewError("role", fmt.Sprintf("role must be one of: %s", roleList()))
		}
	}

	// 1. Check if email already exists
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	// 2. Hash password
	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create user
	user := &models.User{
		Email:          input.Email,
		Name:           input.Name,
		Phone:          input.Phone,
		Role:           role,
		SchoolID:       input.SchoolID,
		MandalID:       input.MandalID,
		BatchYear:      input.BatchYear,
		Approved:       false,
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration won the race to the unique index
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Login authenticates a user and issues a session token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	// 1. Find user by email
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	ok, err := s.hasher.Verify(input.Password, user.HashedPassword)
	if err != nil {
		s.log.Error("stored credential unreadable", zap.String("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("verify credential for %s: %w", user.ID, err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Issue token
	token, err := s.tokens.Issue(user.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID))

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// Authenticate verifies a bearer token and resolves its user.
// Every failure wraps domain.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, domain.ErrUnknownIdentity)
		}
		return nil, err
	}

	return user, nil
}

func roleList() string {
	names := make([]string, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
