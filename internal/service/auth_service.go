package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
	"webclass/internal/password"
	"webclass/internal/repository"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Email           string `validate:"required"`
	Username        string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// LoginInput is the login form.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, in LoginInput) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	validate *validator.Validate
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   password.Bcrypt{},
		validate: validator.New(),
	}
}

// Register validates the form, checks uniqueness and stores a user with a hashed password.
// Validation failures return before the repository is touched.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := s.validateRegister(in); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login returns the user whose credentials match.
// Unknown usernames still pay for one bcrypt comparison.
func (s *authService) Login(ctx context.Context, in LoginInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, apperrors.ErrMissingFields
	}

	user, err := s.userRepo.FindByUsername(ctx, in.Username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		_ = s.hasher.CompareDummy(in.Password)
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) validateRegister(in RegisterInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		if len(in.Password) > password.MaxLength {
			return apperrors.ErrPasswordTooLong
		}
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate registration: %w", err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return apperrors.ErrMissingFields
		}
	}
	return apperrors.ErrPasswordMismatch
}
