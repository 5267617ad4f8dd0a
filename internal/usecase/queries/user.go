package queries

import (
	"context"

	"room-booking/internal/infra/db"
)

type UserReadStore interface {
	FindByUsername(ctx context.Context, db db.DBTX, username string) (*AuthorizedUserView, string, error)
}
