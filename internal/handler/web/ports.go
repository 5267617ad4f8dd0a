package web

import (
	"room-booking/internal/usecase/bookingflow"
	"room-booking/internal/usecase/console"
)

// API is everything the front-end asks of the api: the public booking flow and the console.
type API interface {
	bookingflow.API
	console.API
}
