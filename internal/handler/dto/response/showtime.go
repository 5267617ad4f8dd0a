package response

import "room-booking/internal/usecase/queries"

type ShowtimeResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	Timeslot  int    `json:"timeslot"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func FromShowtimeViews(views []queries.ShowtimeView) ([]ShowtimeResponse, error) {
	list := make([]ShowtimeResponse, 0, len(views))
	if err := copyInto(&list, views); err != nil {
		return nil, err
	}
	return list, nil
}

func FromShowtimeView(v *queries.ShowtimeView) (ShowtimeResponse, error) {
	var res ShowtimeResponse
	if err := copyInto(&res, v); err != nil {
		return ShowtimeResponse{}, err
	}
	return res, nil
}

// TimeslotResponse is one showtime of a room on a concrete date, in the camelCase shape the booking flow reads.
type TimeslotResponse = queries.TimeslotView
