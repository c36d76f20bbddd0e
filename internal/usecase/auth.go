package usecase

import (
	"context"
	"errors"
	"time"

	"tablestay/internal/domain/user"
	"tablestay/internal/pkg/jwt"
	"tablestay/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

// AuthorizedUser is the read model handed to handlers after authentication.
type AuthorizedUser struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*AuthorizedUser, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUser, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, time.Time, *AuthorizedUser, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUser, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, time.Time, *AuthorizedUser, error) {
	authorized, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", time.Time{}, nil, err
	}

	role, err := user.NewRole(authorized.Role)
	if err != nil {
		return "", time.Time{}, nil, ErrAuthenticationFailed
	}

	token, expiresAt, err := a.jwtService.GenerateToken(authorized.ID, role)
	if err != nil {
		return "", time.Time{}, nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, authorized.ID); err != nil {
		return "", time.Time{}, nil, err
	}

	return token, expiresAt, authorized, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*AuthorizedUser, error) {
	authorized, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil || authorized == nil {
		return nil, ErrUserNotFound
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return authorized, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUser, error) {
	authorized, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || authorized == nil {
		return nil, ErrUserNotFound
	}

	return authorized, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
