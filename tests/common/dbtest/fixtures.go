//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"room-booking/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, conn db.DBTX, username, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := conn.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id`,
		username, username+"@example.com", testPasswordHash, role).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, conn db.DBTX, title string, minCapacity, maxCapacity int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(context.Background(), `
		INSERT INTO rooms (title, max_capacity, min_capacity, duration, reset_buffer)
		VALUES ($1, $2, $3, 60, 15)
		RETURNING id`,
		title, maxCapacity, minCapacity).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestShowtime stores a weekly slot; day counts from Monday (0).
func CreateTestShowtime(t *testing.T, conn db.DBTX, roomID int64, day, timeslot int, start, end string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(context.Background(), `
		INSERT INTO showtimes (room_id, day_of_week, timeslot, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		roomID, day, timeslot, start, end).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCustomer(t *testing.T, conn db.DBTX, first, last, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(context.Background(), `
		INSERT INTO customers (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id`,
		first, last, email).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
