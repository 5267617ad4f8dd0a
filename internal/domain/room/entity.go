package room

import (
	"strings"
	"time"

	"room-booking/internal/pkg/errs"
)

var (
	ErrEmptyTitle         = errs.Validation("Room Title is required")
	ErrInvalidMaxCapacity = errs.Validation("Max Capacity must be a positive integer")
	ErrInvalidMinCapacity = errs.Validation("Min Capacity must be a positive integer")
	ErrMinAboveMax        = errs.Validation("Min Capacity must be less than Max Capacity")
	ErrInvalidDuration    = errs.Validation("Duration must be a positive integer")
	ErrInvalidResetBuffer = errs.Validation("Reset Buffer must not be negative")
	ErrSunsetBeforeLaunch = errs.Validation("Sunset Date must not be before Launch Date")
	ErrTitleTooLong       = errs.Validation("Room Title must be at most 100 characters")
)

const MaxTitleLength = 100

// Params carries the editable attributes of a room.
type Params struct {
	Title       string
	MaxCapacity int
	MinCapacity int
	Duration    int
	ResetBuffer int
	LaunchDate  *time.Time
	SunsetDate  *time.Time
	Description *string
}

type Room struct {
	id          int64
	title       string
	maxCapacity int
	minCapacity int
	duration    int
	resetBuffer int
	launchDate  *time.Time
	sunsetDate  *time.Time
	description *string
}

func NewRoom(p Params) (*Room, error) {
	r := &Room{}
	if err := r.apply(p); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(id int64, p Params) *Room {
	return &Room{
		id:          id,
		title:       p.Title,
		maxCapacity: p.MaxCapacity,
		minCapacity: p.MinCapacity,
		duration:    p.Duration,
		resetBuffer: p.ResetBuffer,
		launchDate:  p.LaunchDate,
		sunsetDate:  p.SunsetDate,
		description: p.Description,
	}
}

// Update replaces every editable attribute; the room is unchanged on error.
func (r *Room) Update(p Params) error {
	next := *r
	if err := next.apply(p); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *Room) apply(p Params) error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len([]rune(title)) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if p.MaxCapacity <= 0 {
		return ErrInvalidMaxCapacity
	}
	if p.MinCapacity <= 0 {
		return ErrInvalidMinCapacity
	}
	if p.MinCapacity > p.MaxCapacity {
		return ErrMinAboveMax
	}
	if p.Duration <= 0 {
		return ErrInvalidDuration
	}
	if p.ResetBuffer < 0 {
		return ErrInvalidResetBuffer
	}
	if p.LaunchDate != nil && p.SunsetDate != nil && p.SunsetDate.Before(*p.LaunchDate) {
		return ErrSunsetBeforeLaunch
	}

	var desc *string
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		d := strings.TrimSpace(*p.Description)
		desc = &d
	}

	r.title = title
	r.maxCapacity = p.MaxCapacity
	r.minCapacity = p.MinCapacity
	r.duration = p.Duration
	r.resetBuffer = p.ResetBuffer
	r.launchDate = p.LaunchDate
	r.sunsetDate = p.SunsetDate
	r.description = desc
	return nil
}

// Fits reports whether a party of guests fits the room.
func (r *Room) Fits(guests int) bool {
	return guests <= r.maxCapacity
}

func (r *Room) ID() int64              { return r.id }
func (r *Room) Title() string          { return r.title }
func (r *Room) MaxCapacity() int       { return r.maxCapacity }
func (r *Room) MinCapacity() int       { return r.minCapacity }
func (r *Room) Duration() int          { return r.duration }
func (r *Room) ResetBuffer() int       { return r.resetBuffer }
func (r *Room) LaunchDate() *time.Time { return r.launchDate }
func (r *Room) SunsetDate() *time.Time { return r.sunsetDate }
func (r *Room) Description() *string   { return r.description }
