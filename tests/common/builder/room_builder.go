//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/ptr"
	"room-booking/internal/usecase/queries"
)

type RoomBuilder struct {
	ID          int64
	Title       string
	MaxCapacity int
	MinCapacity int
	Duration    int
	ResetBuffer int
	LaunchDate  *time.Time
	SunsetDate  *time.Time
	Description *string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          1,
		Title:       "Theater A",
		MaxCapacity: 8,
		MinCapacity: 2,
		Duration:    60,
		ResetBuffer: 15,
		Description: ptr.To("Escape room with a haunted theater theme"),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) Params() room.Params {
	return room.Params{
		Title:       b.Title,
		MaxCapacity: b.MaxCapacity,
		MinCapacity: b.MinCapacity,
		Duration:    b.Duration,
		ResetBuffer: b.ResetBuffer,
		LaunchDate:  b.LaunchDate,
		SunsetDate:  b.SunsetDate,
		Description: b.Description,
	}
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.Params())
}

// BuildStored returns a room as loaded from the database.
func (b *RoomBuilder) BuildStored() *room.Room {
	return room.ReconstructRoom(b.ID, b.Params())
}

func (b *RoomBuilder) BuildView() queries.RoomView {
	return queries.RoomView{
		ID:          b.ID,
		Title:       b.Title,
		MaxCapacity: b.MaxCapacity,
		MinCapacity: b.MinCapacity,
		Duration:    b.Duration,
		ResetBuffer: b.ResetBuffer,
		LaunchDate:  b.LaunchDate,
		SunsetDate:  b.SunsetDate,
		Description: b.Description,
	}
}

func (b *RoomBuilder) BuildDTO() reqdto.RoomRequest {
	req := reqdto.RoomRequest{
		Title:       b.Title,
		MaxCapacity: ptr.To(b.MaxCapacity),
		MinCapacity: ptr.To(b.MinCapacity),
		Duration:    ptr.To(b.Duration),
		ResetBuffer: ptr.To(b.ResetBuffer),
		Description: b.Description,
	}
	if b.LaunchDate != nil {
		req.LaunchDate = ptr.To(b.LaunchDate.Format("2006-01-02"))
	}
	if b.SunsetDate != nil {
		req.SunsetDate = ptr.To(b.SunsetDate.Format("2006-01-02"))
	}
	return req
}

func (b *RoomBuilder) WithTitle(title string) *RoomBuilder {
	b.Title = title
	return b
}

func (b *RoomBuilder) WithCapacity(min, max int) *RoomBuilder {
	b.MinCapacity = min
	b.MaxCapacity = max
	return b
}

func (b *RoomBuilder) WithDates(launch, sunset *time.Time) *RoomBuilder {
	b.LaunchDate = launch
	b.SunsetDate = sunset
	return b
}
