package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"inkpress/internal/common"
	"inkpress/internal/common/security"
	"inkpress/internal/domain/model"
	"inkpress/internal/domain/repository"
)

// AuthService owns user identity records: registration, password
// verification and the login audit trail.
type AuthService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

type VerifyRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	UserAgent string `json:"-"`
}

// Register creates a new user. The confirmation check runs before anything
// else touches the store; the plaintext password never leaves this function.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Password != req.Password2 {
		return nil, fmt.Errorf("register: password confirmation does not match: %w", common.ErrValidation)
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("register: %v: %w", err, common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %v: %w", err, common.ErrHashing)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo tags the error kind (duplicate vs. persistence).
		return nil, fmt.Errorf("register: %w", err)
	}

	user.HashedPassword = "" // Clear before returning
	return user, nil
}

// Verify checks a credential and, on success, appends one entry to the
// user's login history and returns the sanitized user with the full trail.
// Failed attempts never write history.
func (s *AuthService) Verify(ctx context.Context, req VerifyRequest) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, fmt.Errorf("verify: incorrect password for user %q: %w", req.Username, common.ErrInvalidCredential)
	}

	entry := model.LoginEntry{
		LoggedAt:  time.Now().UTC(),
		UserAgent: req.UserAgent,
	}
	if err := s.userRepo.AppendLoginEntry(ctx, user.ID, entry); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	history, err := s.userRepo.LoginHistory(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	user.LoginHistory = history

	user.HashedPassword = ""
	return user, nil
}

// LoginHistory returns the audit trail for an already-authenticated user.
func (s *AuthService) LoginHistory(ctx context.Context, username string) ([]model.LoginEntry, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login history: %w", err)
	}
	history, err := s.userRepo.LoginHistory(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("login history: %w", err)
	}
	return history, nil
}
