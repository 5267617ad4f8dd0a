package console

import (
	"context"
	"strconv"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/ptr"
)

// RoomRow is a room list entry; CanDelete drives the delete control.
type RoomRow struct {
	resdto.RoomResponse
	CanDelete bool
}

const RoomDeleteBlockedTitle = "Remove costs and/or showtimes before deleting"

type RoomConsole interface {
	ListRooms(ctx context.Context) ([]RoomRow, error)
	LoadRoom(ctx context.Context, id int64) (form.Room, error)
	SaveRoom(ctx context.Context, id int64, f form.Room) Outcome
	DeleteRoom(ctx context.Context, id int64) error
}

type roomConsoleImpl struct {
	api API
}

func NewRoomConsole(api API) RoomConsole {
	return &roomConsoleImpl{api: api}
}

// ListRooms asks the api about associations once per room; a failed check keeps delete disabled.
func (uc *roomConsoleImpl) ListRooms(ctx context.Context) ([]RoomRow, error) {
	rooms, err := uc.api.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]RoomRow, 0, len(rooms))
	for _, r := range rooms {
		has, err := uc.api.RoomAssociations(ctx, r.ID)
		rows = append(rows, RoomRow{RoomResponse: r, CanDelete: err == nil && !has})
	}
	return rows, nil
}

func (uc *roomConsoleImpl) LoadRoom(ctx context.Context, id int64) (form.Room, error) {
	r, err := uc.api.GetRoom(ctx, id)
	if err != nil {
		return form.Room{}, err
	}
	return form.Room{
		Title:       r.Title,
		MaxCapacity: strconv.Itoa(r.MaxCapacity),
		MinCapacity: strconv.Itoa(r.MinCapacity),
		Duration:    strconv.Itoa(r.Duration),
		ResetBuffer: strconv.Itoa(r.ResetBuffer),
		LaunchDate:  ptr.Deref(r.LaunchDate),
		SunsetDate:  ptr.Deref(r.SunsetDate),
		Description: ptr.Deref(r.Description),
	}, nil
}

// SaveRoom creates when id is 0. Nothing is sent while the form has field errors.
func (uc *roomConsoleImpl) SaveRoom(ctx context.Context, id int64, f form.Room) Outcome {
	v, fe := f.Validate()
	if fe.Any() {
		return invalid(fe)
	}
	req := reqdto.RoomRequest{
		Title:       v.Title,
		MaxCapacity: ptr.To(v.MaxCapacity),
		MinCapacity: ptr.To(v.MinCapacity),
		Duration:    ptr.To(v.Duration),
		ResetBuffer: ptr.To(v.ResetBuffer),
		LaunchDate:  v.LaunchDate,
		SunsetDate:  v.SunsetDate,
		Description: v.Description,
	}

	if id == 0 {
		res, err := uc.api.CreateRoom(ctx, req)
		if err != nil {
			return failed(err)
		}
		return Outcome{Message: res.Message, ID: res.ID}
	}
	msg, err := uc.api.UpdateRoom(ctx, id, req)
	if err != nil {
		return failed(err)
	}
	return Outcome{Message: msg}
}

func (uc *roomConsoleImpl) DeleteRoom(ctx context.Context, id int64) error {
	return uc.api.DeleteRoom(ctx, id)
}
