package bookingflow

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"room-booking/internal/domain/calendar"
	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/ptr"
)

var (
	ErrSlotUnavailable = errs.New("Timeslot is not available on that date")
	ErrSlotBooked      = errs.New("Timeslot already booked")
)

// Selection is what the URL carries between the steps of the flow.
type Selection struct {
	RoomID int64
	Month  string
	Date   string
}

type HomeView struct {
	Rooms     []resdto.RoomResponse
	Room      *resdto.RoomResponse
	Calendar  calendar.Month
	Date      string
	Timeslots []resdto.TimeslotResponse
	// Error is set when one of the lookups failed; the parts fetched so far are still shown.
	Error string
}

// ConfirmView is the confirmation dialog for one free timeslot.
type ConfirmView struct {
	Room     resdto.RoomResponse
	Date     string
	Timeslot resdto.TimeslotResponse
}

type ConfirmResult struct {
	BookingID  int64
	OrderID    string
	CustomerID int64
}

type Flow interface {
	Home(ctx context.Context, sel Selection) *HomeView
	Confirmation(ctx context.Context, roomID int64, date string, timeslot int) (*ConfirmView, error)
	LookupCustomer(ctx context.Context, email string) (*resdto.CustomerResponse, error)
	Confirm(ctx context.Context, view *ConfirmView, f form.Confirm) (*ConfirmResult, form.FieldErrors, error)
}

type flowImpl struct {
	api   API
	clock clock.Clock
	loc   *time.Location
}

func NewFlow(api API, clk clock.Clock, cfg config.BookingConfig) Flow {
	return &flowImpl{api: api, clock: clk, loc: cfg.Location()}
}

func (f *flowImpl) today() time.Time {
	return clock.Today(f.clock, f.loc)
}

// Home loads the room list, the selected room's calendar and, once a day is picked, its timeslots.
func (f *flowImpl) Home(ctx context.Context, sel Selection) *HomeView {
	today := f.today()
	month := calendar.ParseMonth(sel.Month, today)
	view := &HomeView{Calendar: calendar.Build(month, today, nil, "")}

	rooms, err := f.api.ListRooms(ctx)
	if err != nil {
		view.Error = apiclient.Message(err)
		return view
	}
	view.Rooms = rooms

	for i := range rooms {
		if rooms[i].ID == sel.RoomID {
			view.Room = &rooms[i]
		}
	}
	if view.Room == nil {
		return view
	}

	dates, err := f.api.AvailableDates(ctx, view.Room.ID, month.Format(calendar.MonthLayout))
	if err != nil {
		view.Error = apiclient.Message(err)
		return view
	}
	view.Calendar = calendar.Build(month, today, dates, sel.Date)

	if sel.Date == "" || !view.Calendar.IsSelectable(sel.Date) {
		return view
	}
	view.Date = sel.Date

	slots, err := f.api.Timeslots(ctx, view.Room.ID, sel.Date)
	if err != nil {
		view.Error = apiclient.Message(err)
		return view
	}
	view.Timeslots = slots
	return view
}

// Confirmation re-reads the day's timeslots so a booked or unknown timeslot is refused.
func (f *flowImpl) Confirmation(ctx context.Context, roomID int64, date string, timeslot int) (*ConfirmView, error) {
	rooms, err := f.api.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	var room *resdto.RoomResponse
	for i := range rooms {
		if rooms[i].ID == roomID {
			room = &rooms[i]
		}
	}
	if room == nil {
		return nil, ErrSlotUnavailable
	}

	slots, err := f.api.Timeslots(ctx, roomID, date)
	if err != nil {
		return nil, err
	}
	for _, s := range slots {
		if s.Timeslot != timeslot {
			continue
		}
		if s.IsBooked {
			return nil, ErrSlotBooked
		}
		return &ConfirmView{Room: *room, Date: date, Timeslot: s}, nil
	}
	return nil, ErrSlotUnavailable
}

// LookupCustomer returns nil without error when the email is unknown.
func (f *flowImpl) LookupCustomer(ctx context.Context, email string) (*resdto.CustomerResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	found, err := f.api.FindCustomerByEmail(ctx, email)
	if apiclient.IsNotFound(err) {
		return nil, nil
	}
	return found, err
}

// Confirm books the dialog's timeslot, registering the customer first when the email is new.
func (f *flowImpl) Confirm(ctx context.Context, view *ConfirmView, cf form.Confirm) (*ConfirmResult, form.FieldErrors, error) {
	v, fe := cf.Validate()
	if fe.Any() {
		return nil, fe, nil
	}

	customerID, err := f.resolveCustomer(ctx, v)
	if err != nil {
		return nil, nil, err
	}

	res, err := f.api.CreateBooking(ctx, reqdto.BookingRequest{
		RoomID:       view.Room.ID,
		CustomerID:   customerID,
		GuestCount:   ptr.To(v.GuestCount),
		BookingDate:  f.today().Format(calendar.DateLayout),
		ShowDate:     view.Date,
		ShowTimeslot: ptr.To(view.Timeslot.Timeslot),
	})
	if err != nil {
		return nil, nil, err
	}
	return &ConfirmResult{BookingID: res.ID, OrderID: res.OrderID, CustomerID: customerID}, nil, nil
}

// resolveCustomer books under the customer that owns the email. A customer id
// carried by the dialog only stands when it belongs to that email.
func (f *flowImpl) resolveCustomer(ctx context.Context, v form.ConfirmValues) (int64, error) {
	found, err := f.LookupCustomer(ctx, v.Email)
	if err != nil {
		return 0, err
	}
	if found != nil {
		if v.CustomerID != 0 && v.CustomerID != found.ID {
			slog.Warn("メールと一致しない顧客IDを破棄しました", "customer_id", v.CustomerID, "email_owner", found.ID)
		}
		return found.ID, nil
	}

	created, err := f.api.CreateCustomer(ctx, reqdto.CustomerRequest{
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
	})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}
