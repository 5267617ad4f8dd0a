package response

import "room-booking/internal/usecase/queries"

type RoomResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	MaxCapacity int     `json:"max_capacity"`
	MinCapacity int     `json:"min_capacity"`
	Duration    int     `json:"duration"`
	ResetBuffer int     `json:"reset_buffer"`
	LaunchDate  *string `json:"launch_date" copier:"-"`
	SunsetDate  *string `json:"sunset_date" copier:"-"`
	Description *string `json:"description"`
}

func FromRoomView(v *queries.RoomView) (RoomResponse, error) {
	var res RoomResponse
	if err := copyInto(&res, v); err != nil {
		return RoomResponse{}, err
	}
	res.LaunchDate = formatDate(v.LaunchDate)
	res.SunsetDate = formatDate(v.SunsetDate)
	return res, nil
}

func FromRoomViews(views []queries.RoomView) ([]RoomResponse, error) {
	list := make([]RoomResponse, 0, len(views))
	for i := range views {
		res, err := FromRoomView(&views[i])
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, nil
}
