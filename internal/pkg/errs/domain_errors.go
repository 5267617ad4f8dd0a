package errs

import "errors"

// Sentinel errors shared by the api usecase layers
var (
	// Lookup errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomCostNotFound = errors.New("room cost not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// Conflict errors
	ErrRoomHasAssociations = errors.New("room has costs or showtimes")
	ErrCustomerHasBookings = errors.New("customer has bookings")
	ErrTimeslotTaken       = errors.New("timeslot already booked")
	ErrDuplicateShowtime   = errors.New("showtime timeslot already exists")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateUser       = errors.New("username or email already registered")
	ErrDuplicateOrderID    = errors.New("order id already used")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrUnknownTimeslot  = errors.New("timeslot not offered on that date")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
