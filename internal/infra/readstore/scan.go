package readstore

import "github.com/jackc/pgx/v5"

// collect drains rows into a non-nil slice and closes them.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}
