package bookingflow

import (
	"context"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

// API is the part of the api client the public booking flow uses.
type API interface {
	ListRooms(ctx context.Context) ([]resdto.RoomResponse, error)
	AvailableDates(ctx context.Context, roomID int64, month string) ([]string, error)
	Timeslots(ctx context.Context, roomID int64, date string) ([]resdto.TimeslotResponse, error)
	FindCustomerByEmail(ctx context.Context, email string) (*resdto.CustomerResponse, error)
	CreateCustomer(ctx context.Context, req reqdto.CustomerRequest) (*resdto.CustomerResponse, error)
	CreateBooking(ctx context.Context, req reqdto.BookingRequest) (*resdto.BookingCreatedResponse, error)
}
