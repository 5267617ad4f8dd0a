//go:build unit

package console_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/ptr"
	"room-booking/internal/usecase/console"
	consolemock "room-booking/tests/mock/console"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomConsoleTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	api     *consolemock.MockAPI
	console console.RoomConsole
	ctx     context.Context
}

func (s *RoomConsoleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = consolemock.NewMockAPI(s.ctrl)
	s.console = console.NewRoomConsole(s.api)
	s.ctx = context.Background()
}

func (s *RoomConsoleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRoomConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(RoomConsoleTestSuite))
}

func validRoomForm() form.Room {
	return form.Room{
		Title:       " Theater A ",
		MaxCapacity: "8",
		MinCapacity: "2",
		Duration:    "60",
		ResetBuffer: "15",
		LaunchDate:  "2025-01-01",
		Description: "",
	}
}

func (s *RoomConsoleTestSuite) TestListRooms() {
	s.api.EXPECT().ListRooms(s.ctx).Return([]resdto.RoomResponse{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}, nil)
	s.api.EXPECT().RoomAssociations(s.ctx, int64(1)).Return(true, nil)
	s.api.EXPECT().RoomAssociations(s.ctx, int64(2)).Return(false, nil)
	s.api.EXPECT().RoomAssociations(s.ctx, int64(3)).Return(false, &apiclient.TransportError{Op: "GET", Err: errors.New("refused")})

	rows, err := s.console.ListRooms(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.False(rows[0].CanDelete, "関連データありは削除不可")
	s.True(rows[1].CanDelete)
	s.False(rows[2].CanDelete, "確認に失敗したら削除不可のまま")
}

func (s *RoomConsoleTestSuite) TestLoadRoom() {
	s.api.EXPECT().GetRoom(s.ctx, int64(4)).Return(&resdto.RoomResponse{
		ID: 4, Title: "Attic", MaxCapacity: 6, MinCapacity: 1, Duration: 45, ResetBuffer: 10,
		SunsetDate: ptr.To("2025-12-31"),
	}, nil)

	f, err := s.console.LoadRoom(s.ctx, 4)

	s.Require().NoError(err)
	want := form.Room{Title: "Attic", MaxCapacity: "6", MinCapacity: "1", Duration: "45", ResetBuffer: "10", SunsetDate: "2025-12-31"}
	if diff := cmp.Diff(want, f); diff != "" {
		s.T().Errorf("LoadRoom() mismatch (-want +got):\n%s", diff)
	}
}

func (s *RoomConsoleTestSuite) TestSaveRoom() {
	wantReq := reqdto.RoomRequest{
		Title:       "Theater A",
		MaxCapacity: ptr.To(8),
		MinCapacity: ptr.To(2),
		Duration:    ptr.To(60),
		ResetBuffer: ptr.To(15),
		LaunchDate:  ptr.To("2025-01-01"),
	}

	s.Run("success: create", func() {
		s.api.EXPECT().CreateRoom(s.ctx, wantReq).Return(&resdto.CreatedResponse{Message: "Room created successfully!", ID: 9}, nil)

		out := s.console.SaveRoom(s.ctx, 0, validRoomForm())

		s.True(out.OK())
		s.Equal("Room created successfully!", out.Message)
		s.Equal(int64(9), out.ID)
	})

	s.Run("success: update", func() {
		s.api.EXPECT().UpdateRoom(s.ctx, int64(9), wantReq).Return("Room updated successfully!", nil)

		out := s.console.SaveRoom(s.ctx, 9, validRoomForm())

		s.True(out.OK())
		s.Equal("Room updated successfully!", out.Message)
		s.Zero(out.ID)
	})

	s.Run("error: invalid input never calls the api", func() {
		f := validRoomForm()
		f.Title = ""
		f.MaxCapacity = "many"
		f.LaunchDate = "01/01/2025"

		out := s.console.SaveRoom(s.ctx, 0, f)

		s.False(out.OK())
		s.Equal("Room Title is required", out.Fields["title"])
		s.Equal("Max Capacity must be an integer", out.Fields["max_capacity"])
		s.Equal("Launch Date must be YYYY-MM-DD", out.Fields["launch_date"])
	})

	s.Run("error: server validation message shown verbatim", func() {
		s.api.EXPECT().CreateRoom(s.ctx, gomock.Any()).
			Return(nil, &apiclient.APIError{Status: http.StatusBadRequest, Message: "Min capacity cannot exceed max capacity"})

		out := s.console.SaveRoom(s.ctx, 0, validRoomForm())

		s.False(out.OK())
		s.Equal("Min capacity cannot exceed max capacity", out.Error)
	})
}

func (s *RoomConsoleTestSuite) TestDeleteRoom() {
	conflict := &apiclient.APIError{Status: http.StatusConflict, Message: console.RoomDeleteBlockedTitle}
	s.api.EXPECT().DeleteRoom(s.ctx, int64(2)).Return(conflict)

	err := s.console.DeleteRoom(s.ctx, 2)

	s.Equal(console.RoomDeleteBlockedTitle, apiclient.Message(err))
}
