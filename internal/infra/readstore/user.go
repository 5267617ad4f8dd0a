package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/usecase/queries"
)

const findUserByUsernameSQL = `
SELECT id, username, email, role, password_hash
FROM users WHERE username = $1`

type UserReadStore struct{}

func NewUserReadStore() *UserReadStore {
	return &UserReadStore{}
}

// FindByUsername also returns the password hash for credential checks.
func (r *UserReadStore) FindByUsername(ctx context.Context, db db.DBTX, username string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := db.QueryRow(ctx, findUserByUsernameSQL, username).Scan(&v.ID, &v.Username, &v.Email, &v.Role, &hash)
	if err != nil {
		return nil, "", infra.ClassifyPgErr("failed to find user", err)
	}
	return &v, hash, nil
}
