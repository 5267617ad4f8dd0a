package console

import (
	"context"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

// API is the part of the api client the console views use.
type API interface {
	ListRooms(ctx context.Context) ([]resdto.RoomResponse, error)
	GetRoom(ctx context.Context, id int64) (*resdto.RoomResponse, error)
	CreateRoom(ctx context.Context, req reqdto.RoomRequest) (*resdto.CreatedResponse, error)
	UpdateRoom(ctx context.Context, id int64, req reqdto.RoomRequest) (string, error)
	DeleteRoom(ctx context.Context, id int64) error
	RoomAssociations(ctx context.Context, id int64) (bool, error)

	ListRoomCosts(ctx context.Context, roomID int64) ([]resdto.RoomCostResponse, error)
	GetRoomCost(ctx context.Context, id int64) (*resdto.RoomCostResponse, error)
	CreateRoomCost(ctx context.Context, roomID int64, req reqdto.RoomCostRequest) (*resdto.CreatedResponse, error)
	UpdateRoomCost(ctx context.Context, id int64, req reqdto.RoomCostRequest) (string, error)
	DeleteRoomCost(ctx context.Context, id int64) error

	ListShowtimes(ctx context.Context, roomID int64) ([]resdto.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, id int64) (*resdto.ShowtimeResponse, error)
	CreateShowtime(ctx context.Context, roomID int64, req reqdto.ShowtimeRequest) (*resdto.CreatedResponse, error)
	UpdateShowtime(ctx context.Context, id int64, req reqdto.ShowtimeRequest) (string, error)
	DeleteShowtime(ctx context.Context, id int64) error

	ListCustomers(ctx context.Context) ([]resdto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id int64) (*resdto.CustomerResponse, error)
	CreateCustomer(ctx context.Context, req reqdto.CustomerRequest) (*resdto.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, id int64, req reqdto.CustomerRequest) (string, error)
	DeleteCustomer(ctx context.Context, id int64) error

	ListBookings(ctx context.Context) ([]resdto.BookingResponse, error)
	GetBooking(ctx context.Context, id int64) (*resdto.BookingResponse, error)
	CreateBooking(ctx context.Context, req reqdto.BookingRequest) (*resdto.BookingCreatedResponse, error)
	UpdateBooking(ctx context.Context, id int64, req reqdto.BookingRequest) (string, error)
	DeleteBooking(ctx context.Context, id int64) error

	Login(ctx context.Context, req reqdto.LoginRequest) (string, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (string, error)
}
