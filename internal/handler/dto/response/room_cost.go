package response

import "room-booking/internal/usecase/queries"

type RoomCostResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"room_id"`
	GuestsCount int     `json:"guests_count"`
	TotalCost   string  `json:"total_cost" copier:"-" example:"120.00"`
	StartDate   *string `json:"start_date" copier:"-"`
	EndDate     *string `json:"end_date" copier:"-"`
}

func FromRoomCostView(v *queries.RoomCostView) (RoomCostResponse, error) {
	var res RoomCostResponse
	if err := copyInto(&res, v); err != nil {
		return RoomCostResponse{}, err
	}
	res.TotalCost = v.TotalCost.StringFixed(2)
	res.StartDate = formatDate(v.StartDate)
	res.EndDate = formatDate(v.EndDate)
	return res, nil
}

func FromRoomCostViews(views []queries.RoomCostView) ([]RoomCostResponse, error) {
	list := make([]RoomCostResponse, 0, len(views))
	for i := range views {
		res, err := FromRoomCostView(&views[i])
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, nil
}
