package response

import "room-booking/internal/usecase/queries"

type BookingResponse struct {
	ID           int64  `json:"id"`
	RoomID       int64  `json:"room_id"`
	RoomTitle    string `json:"room_title"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	GuestCount   int    `json:"guest_count"`
	OrderID      string `json:"order_id"`
	BookingDate  string `json:"booking_date" copier:"-"`
	ShowDate     string `json:"show_date" copier:"-"`
	ShowTimeslot int    `json:"show_timeslot"`
}

func FromBookingView(v *queries.BookingView) (BookingResponse, error) {
	var res BookingResponse
	if err := copyInto(&res, v); err != nil {
		return BookingResponse{}, err
	}
	res.BookingDate = v.BookingDate.Format(dateLayout)
	res.ShowDate = v.ShowDate.Format(dateLayout)
	return res, nil
}

func FromBookingViews(views []queries.BookingView) ([]BookingResponse, error) {
	list := make([]BookingResponse, 0, len(views))
	for i := range views {
		res, err := FromBookingView(&views[i])
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, nil
}
