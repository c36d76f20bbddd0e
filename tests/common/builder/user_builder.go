//go:build unit || e2e

package builder

import (
	"tablestay/internal/domain/user"
	"tablestay/internal/usecase"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "guest@example.com",
		PasswordHash: "hashed_password",
		Role:         "guest",
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsHost() *UserBuilder {
	u.Role = "host"
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildAuthorized() *usecase.AuthorizedUser {
	return &usecase.AuthorizedUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}
