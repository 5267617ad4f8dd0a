package repository

import (
	"context"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
)

const insertUserSQL = `
INSERT INTO users (username, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertUserSQL,
		u.Username().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to create user", err)
	}
	return id, nil
}
