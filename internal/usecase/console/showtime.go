package console

import (
	"context"
	"sort"
	"strconv"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/ptr"
)

type ShowtimeList struct {
	Room      resdto.RoomResponse
	Showtimes []resdto.ShowtimeResponse
}

type ShowtimeConsole interface {
	ListShowtimes(ctx context.Context, roomID int64) (*ShowtimeList, error)
	LoadShowtime(ctx context.Context, id int64) (form.Showtime, error)
	SaveShowtime(ctx context.Context, roomID, id int64, f form.Showtime) Outcome
	DeleteShowtime(ctx context.Context, id int64) error
}

type showtimeConsoleImpl struct {
	api API
}

func NewShowtimeConsole(api API) ShowtimeConsole {
	return &showtimeConsoleImpl{api: api}
}

// ListShowtimes orders by weekday then timeslot whatever order the api used.
func (uc *showtimeConsoleImpl) ListShowtimes(ctx context.Context, roomID int64) (*ShowtimeList, error) {
	room, err := uc.api.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	list, err := uc.api.ListShowtimes(ctx, roomID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DayOfWeek != list[j].DayOfWeek {
			return list[i].DayOfWeek < list[j].DayOfWeek
		}
		return list[i].Timeslot < list[j].Timeslot
	})
	return &ShowtimeList{Room: *room, Showtimes: list}, nil
}

func (uc *showtimeConsoleImpl) LoadShowtime(ctx context.Context, id int64) (form.Showtime, error) {
	st, err := uc.api.GetShowtime(ctx, id)
	if err != nil {
		return form.Showtime{}, err
	}
	return form.Showtime{
		DayOfWeek: strconv.Itoa(st.DayOfWeek),
		Timeslot:  strconv.Itoa(st.Timeslot),
		StartTime: st.StartTime,
		EndTime:   st.EndTime,
	}, nil
}

func (uc *showtimeConsoleImpl) SaveShowtime(ctx context.Context, roomID, id int64, f form.Showtime) Outcome {
	v, fe := f.Validate()
	if fe.Any() {
		return invalid(fe)
	}
	req := reqdto.ShowtimeRequest{
		DayOfWeek: ptr.To(v.DayOfWeek),
		Timeslot:  ptr.To(v.Timeslot),
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
	}

	if id == 0 {
		res, err := uc.api.CreateShowtime(ctx, roomID, req)
		if err != nil {
			return failed(err)
		}
		return Outcome{Message: res.Message, ID: res.ID}
	}
	msg, err := uc.api.UpdateShowtime(ctx, id, req)
	if err != nil {
		return failed(err)
	}
	return Outcome{Message: msg}
}

func (uc *showtimeConsoleImpl) DeleteShowtime(ctx context.Context, id int64) error {
	return uc.api.DeleteShowtime(ctx, id)
}
