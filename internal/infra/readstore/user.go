package readstore

import (
	"context"
	"time"

	"tablestay/internal/domain/user"
	"tablestay/internal/infra"
	"tablestay/internal/infra/db"
	"tablestay/internal/pkg/pgconv"
	"tablestay/internal/usecase"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db      db.DBTX
	timeout time.Duration
}

func NewUserReadStore(pool db.DBTX, timeout time.Duration) *UserReadStore {
	return &UserReadStore{db: pool, timeout: timeout}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*usecase.AuthorizedUser, string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var au usecase.AuthorizedUser
	var passwordHash string
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, password_hash FROM users WHERE email = $1`, email.Value()).
		Scan(&au.ID, &au.Email, &au.Role, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &au, passwordHash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*usecase.AuthorizedUser, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var au usecase.AuthorizedUser
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role FROM users WHERE id = $1`, id).
		Scan(&au.ID, &au.Email, &au.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &au, nil
}

func (r *UserReadStore) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
