package shared

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/customer"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/roomcost"
	"room-booking/internal/domain/showtime"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	RoomCosts() RoomCostRepository
	Showtimes() ShowtimeRepository
	Customers() CustomerRepository
	Bookings() BookingRepository
	Users() UserRepository
	DB() db.DBTX
}

type RoomRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id int64) (*room.Room, error)
	Create(ctx context.Context, tx db.DBTX, r *room.Room) (int64, error)
	Update(ctx context.Context, tx db.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
	HasAssociations(ctx context.Context, tx db.DBTX, id int64) (bool, error)
}

type RoomCostRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id int64) (*roomcost.RoomCost, error)
	Create(ctx context.Context, tx db.DBTX, c *roomcost.RoomCost) (int64, error)
	Update(ctx context.Context, tx db.DBTX, c *roomcost.RoomCost) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type ShowtimeRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id int64) (*showtime.Showtime, error)
	ListByRoom(ctx context.Context, tx db.DBTX, roomID int64) ([]*showtime.Showtime, error)
	Create(ctx context.Context, tx db.DBTX, s *showtime.Showtime) (int64, error)
	Update(ctx context.Context, tx db.DBTX, s *showtime.Showtime) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id int64) (*customer.Customer, error)
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error)
	Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
	HasBookings(ctx context.Context, tx db.DBTX, id int64) (bool, error)
}

type BookingRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id int64) (*booking.Booking, error)
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (int64, error)
}
