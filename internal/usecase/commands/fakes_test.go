//go:build unit

package commands_test

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/customer"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/roomcost"
	"room-booking/internal/domain/showtime"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository"
	"room-booking/internal/usecase/shared"
)

// memUoW runs every unit of work against in-memory tables; a failing fn discards its writes.
type memUoW struct {
	tx *memTx
}

func newMemUoW() *memUoW {
	return &memUoW{tx: &memTx{
		rooms:     map[int64]*room.Room{},
		costs:     map[int64]*roomcost.RoomCost{},
		showtimes: map[int64]*showtime.Showtime{},
		customers: map[int64]*customer.Customer{},
		bookings:  map[int64]*booking.Booking{},
	}}
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snapshot := u.tx.clone()
	if err := fn(ctx, u.tx); err != nil {
		u.tx = snapshot
		return err
	}
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

type memTx struct {
	nextID    int64
	rooms     map[int64]*room.Room
	costs     map[int64]*roomcost.RoomCost
	showtimes map[int64]*showtime.Showtime
	customers map[int64]*customer.Customer
	bookings  map[int64]*booking.Booking
	users     []*user.User
}

func (t *memTx) clone() *memTx {
	c := *t
	c.rooms = copyMap(t.rooms)
	c.costs = copyMap(t.costs)
	c.showtimes = copyMap(t.showtimes)
	c.customers = copyMap(t.customers)
	c.bookings = copyMap(t.bookings)
	c.users = append([]*user.User(nil), t.users...)
	return &c
}

func copyMap[T any](m map[int64]*T) map[int64]*T {
	out := make(map[int64]*T, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

func (t *memTx) id() int64 {
	t.nextID++
	return t.nextID
}

func (t *memTx) Rooms() shared.RoomRepository         { return memRooms{t} }
func (t *memTx) RoomCosts() shared.RoomCostRepository { return nil }
func (t *memTx) Showtimes() shared.ShowtimeRepository { return memShowtimes{t} }
func (t *memTx) Customers() shared.CustomerRepository { return memCustomers{t} }
func (t *memTx) Bookings() shared.BookingRepository   { return memBookings{t} }
func (t *memTx) Users() shared.UserRepository         { return memUsers{t} }
func (t *memTx) DB() db.DBTX                          { return nil }

var errNotFound = infra.RepositoryError{Kind: infra.KindNotFound}

type memRooms struct{ t *memTx }

func (r memRooms) FindByID(_ context.Context, _ db.DBTX, id int64) (*room.Room, error) {
	found, ok := r.t.rooms[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *found
	return &cp, nil
}

func (r memRooms) Create(_ context.Context, _ db.DBTX, rm *room.Room) (int64, error) {
	id := r.t.id()
	r.t.rooms[id] = room.ReconstructRoom(id, roomParams(rm))
	return id, nil
}

func (r memRooms) Update(_ context.Context, _ db.DBTX, rm *room.Room) error {
	if _, ok := r.t.rooms[rm.ID()]; !ok {
		return errNotFound
	}
	r.t.rooms[rm.ID()] = rm
	return nil
}

func (r memRooms) Delete(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := r.t.rooms[id]; !ok {
		return errNotFound
	}
	delete(r.t.rooms, id)
	return nil
}

func (r memRooms) HasAssociations(_ context.Context, _ db.DBTX, id int64) (bool, error) {
	for _, c := range r.t.costs {
		if c.RoomID() == id {
			return true, nil
		}
	}
	for _, s := range r.t.showtimes {
		if s.RoomID() == id {
			return true, nil
		}
	}
	return false, nil
}

func roomParams(rm *room.Room) room.Params {
	return room.Params{
		Title:       rm.Title(),
		MaxCapacity: rm.MaxCapacity(),
		MinCapacity: rm.MinCapacity(),
		Duration:    rm.Duration(),
		ResetBuffer: rm.ResetBuffer(),
		LaunchDate:  rm.LaunchDate(),
		SunsetDate:  rm.SunsetDate(),
		Description: rm.Description(),
	}
}

type memShowtimes struct{ t *memTx }

func (r memShowtimes) FindByID(_ context.Context, _ db.DBTX, id int64) (*showtime.Showtime, error) {
	found, ok := r.t.showtimes[id]
	if !ok {
		return nil, errNotFound
	}
	return found, nil
}

func (r memShowtimes) ListByRoom(_ context.Context, _ db.DBTX, roomID int64) ([]*showtime.Showtime, error) {
	var list []*showtime.Showtime
	for _, s := range r.t.showtimes {
		if s.RoomID() == roomID {
			list = append(list, s)
		}
	}
	showtime.SortByWeek(list)
	return list, nil
}

func (r memShowtimes) Create(_ context.Context, _ db.DBTX, s *showtime.Showtime) (int64, error) {
	id := r.t.id()
	r.t.showtimes[id] = showtime.ReconstructShowtime(id, s.RoomID(), s.DayOfWeek(), s.Timeslot(), s.StartTime(), s.EndTime())
	return id, nil
}

func (r memShowtimes) Update(_ context.Context, _ db.DBTX, s *showtime.Showtime) error {
	r.t.showtimes[s.ID()] = s
	return nil
}

func (r memShowtimes) Delete(_ context.Context, _ db.DBTX, id int64) error {
	delete(r.t.showtimes, id)
	return nil
}

type memCustomers struct{ t *memTx }

func (r memCustomers) FindByID(_ context.Context, _ db.DBTX, id int64) (*customer.Customer, error) {
	found, ok := r.t.customers[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *found
	return &cp, nil
}

func (r memCustomers) Create(_ context.Context, _ db.DBTX, c *customer.Customer) (int64, error) {
	for _, existing := range r.t.customers {
		if existing.Email() == c.Email() {
			return 0, infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: repository.CustomerEmailConstraint}
		}
	}
	id := r.t.id()
	r.t.customers[id] = customer.ReconstructCustomer(id, customerParams(c))
	return id, nil
}

func (r memCustomers) Update(_ context.Context, _ db.DBTX, c *customer.Customer) error {
	for id, existing := range r.t.customers {
		if id != c.ID() && existing.Email() == c.Email() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: repository.CustomerEmailConstraint}
		}
	}
	r.t.customers[c.ID()] = c
	return nil
}

func (r memCustomers) Delete(_ context.Context, _ db.DBTX, id int64) error {
	delete(r.t.customers, id)
	return nil
}

func (r memCustomers) HasBookings(_ context.Context, _ db.DBTX, id int64) (bool, error) {
	for _, b := range r.t.bookings {
		if b.CustomerID() == id {
			return true, nil
		}
	}
	return false, nil
}

func customerParams(c *customer.Customer) customer.Params {
	return customer.Params{
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		IsMinor:   c.IsMinor(),
		IsBanned:  c.IsBanned(),
		Notes:     c.Notes(),
	}
}

type memBookings struct{ t *memTx }

func (r memBookings) FindByID(_ context.Context, _ db.DBTX, id int64) (*booking.Booking, error) {
	found, ok := r.t.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *found
	return &cp, nil
}

// conflict mirrors the unique constraints of the bookings table.
func (r memBookings) conflict(b *booking.Booking) error {
	for id, existing := range r.t.bookings {
		if id == b.ID() {
			continue
		}
		if existing.RoomID() == b.RoomID() && existing.ShowDate().Equal(b.ShowDate()) && existing.ShowTimeslot() == b.ShowTimeslot() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: repository.BookingSlotConstraint}
		}
		if existing.OrderID() == b.OrderID() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: repository.BookingOrderIDConstraint}
		}
	}
	return nil
}

func (r memBookings) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (int64, error) {
	if err := r.conflict(b); err != nil {
		return 0, err
	}
	id := r.t.id()
	r.t.bookings[id] = booking.ReconstructBooking(id, booking.Params{
		RoomID:       b.RoomID(),
		CustomerID:   b.CustomerID(),
		GuestCount:   b.GuestCount(),
		OrderID:      b.OrderID().String(),
		ShowDate:     b.ShowDate(),
		ShowTimeslot: b.ShowTimeslot(),
	}, b.BookingDate())
	return id, nil
}

func (r memBookings) Update(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	if err := r.conflict(b); err != nil {
		return err
	}
	r.t.bookings[b.ID()] = b
	return nil
}

func (r memBookings) Delete(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := r.t.bookings[id]; !ok {
		return errNotFound
	}
	delete(r.t.bookings, id)
	return nil
}

type memUsers struct{ t *memTx }

func (r memUsers) Create(_ context.Context, _ db.DBTX, u *user.User) (int64, error) {
	for _, existing := range r.t.users {
		if existing.Username() == u.Username() {
			return 0, infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	r.t.users = append(r.t.users, u)
	return int64(len(r.t.users)), nil
}
