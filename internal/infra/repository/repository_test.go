//go:build unit

package repository

import (
	"context"
	"reflect"
	"testing"

	"room-booking/internal/infra"
	"room-booking/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// stubRow scans its values in order, or fails with err.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func TestRoomRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()
	stored := builder.NewRoomBuilder().BuildStored()

	t.Run("success: create returns the RETURNING id", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, insertRoomSQL, mock.Anything).Return(stubRow{values: []any{int64(5)}})

		id, err := repo.Create(ctx, db, stored)

		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
		db.AssertExpectations(t)
	})

	t.Run("error: unknown room", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, findRoomForUpdateSQL, []any{int64(9)}).Return(stubRow{err: pgx.ErrNoRows})

		_, err := repo.FindByID(ctx, db, 9)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: NOT_FOUND when no row is updated", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", ctx, updateRoomSQL, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

		err := repo.Update(ctx, db, stored)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: deleting a referenced room is a foreign key violation", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", ctx, deleteRoomSQL, []any{int64(1)}).
			Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23503", ConstraintName: "bookings_room_id_fkey"})

		err := repo.Delete(ctx, db, 1)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
		assert.True(t, infra.IsConstraint(err, "bookings_room_id_fkey"))
	})
}

func TestBookingRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()
	b := builder.NewBookingBuilder().BuildStored()

	tests := []struct {
		name       string
		constraint string
	}{
		{name: "double booking of a slot", constraint: BookingSlotConstraint},
		{name: "duplicate order id", constraint: BookingOrderIDConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", ctx, insertBookingSQL, mock.Anything).
				Return(stubRow{err: &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}})

			_, err := repo.Create(ctx, db, b)

			assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
			assert.True(t, infra.IsConstraint(err, tt.constraint))
		})
	}
}
