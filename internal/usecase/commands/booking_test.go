//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"
	commandsmock "lendshare/tests/mock/commands"
	queriesmock "lendshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *commandsmock.MockBookingRepository
	items    *commandsmock.MockItemReader
	users    *commandsmock.MockUserReader
	q        *queriesmock.MockBookingQueries
	cmds     commands.BookingCommands
	bookerID uuid.UUID
	ownerID  uuid.UUID
	itemID   uuid.UUID
	start    time.Time
	end      time.Time
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.items = commandsmock.NewMockItemReader(s.ctrl)
	s.users = commandsmock.NewMockUserReader(s.ctrl)
	s.q = queriesmock.NewMockBookingQueries(s.ctrl)
	s.cmds = commands.NewBookingCommands(s.repo, s.items, s.users, s.q)

	s.bookerID = uuid.New()
	s.ownerID = uuid.New()
	s.itemID = uuid.New()
	s.start = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s.end = s.start.Add(72 * time.Hour)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) booker() *commands.UserSnapshot {
	return &commands.UserSnapshot{ID: s.bookerID, Name: "booker", Email: "booker@example.com"}
}

func (s *BookingCommandsTestSuite) item(available bool) *commands.ItemSnapshot {
	return &commands.ItemSnapshot{
		ID:        s.itemID,
		OwnerID:   s.ownerID,
		Name:      "drill",
		Available: available,
	}
}

func (s *BookingCommandsTestSuite) TestCreate() {
	s.Run("creates a waiting booking", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).Return(s.booker(), nil)
		s.items.EXPECT().FindByID(gomock.Any(), s.bookerID, s.itemID).Return(s.item(true), nil)

		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) (*queries.BookingView, error) {
				s.Equal(s.itemID, b.ItemID())
				s.Equal(s.bookerID, b.BookerID())
				s.Equal(booking.StatusWaiting, b.Status())
				return &queries.BookingView{
					ID:     b.ID(),
					Start:  b.Start(),
					End:    b.End(),
					Status: b.Status(),
					Item:   queries.ItemBrief{ID: s.itemID, Name: "drill", OwnerID: s.ownerID},
					Booker: queries.UserBrief{ID: s.bookerID, Name: "booker"},
				}, nil
			})

		view, err := s.cmds.Create(context.Background(), s.bookerID, s.itemID, s.start, s.end)
		s.Require().NoError(err)
		s.Equal(booking.StatusWaiting, view.Status)
	})

	s.Run("unknown booker", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.cmds.Create(context.Background(), s.bookerID, s.itemID, s.start, s.end)
		s.Require().ErrorIs(err, errs.ErrUserNotFound)
	})

	s.Run("unknown item", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).Return(s.booker(), nil)
		s.items.EXPECT().FindByID(gomock.Any(), s.bookerID, s.itemID).
			Return(nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound))

		_, err := s.cmds.Create(context.Background(), s.bookerID, s.itemID, s.start, s.end)
		s.Require().ErrorIs(err, errs.ErrItemNotFound)
	})

	s.Run("unavailable item", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).Return(s.booker(), nil)
		s.items.EXPECT().FindByID(gomock.Any(), s.bookerID, s.itemID).Return(s.item(false), nil)

		_, err := s.cmds.Create(context.Background(), s.bookerID, s.itemID, s.start, s.end)
		s.Require().ErrorIs(err, booking.ErrItemUnavailable)
	})

	s.Run("owner booking own item", func() {
		owner := &commands.UserSnapshot{ID: s.ownerID, Name: "owner", Email: "owner@example.com"}
		s.users.EXPECT().FindByID(gomock.Any(), s.ownerID).Return(owner, nil)
		s.items.EXPECT().FindByID(gomock.Any(), s.ownerID, s.itemID).Return(s.item(true), nil)

		_, err := s.cmds.Create(context.Background(), s.ownerID, s.itemID, s.start, s.end)
		s.Require().ErrorIs(err, booking.ErrOwnerBooking)
	})
}

func (s *BookingCommandsTestSuite) waitingView(bookingID uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:     bookingID,
		Start:  s.start,
		End:    s.end,
		Status: booking.StatusWaiting,
		Item:   queries.ItemBrief{ID: s.itemID, Name: "drill", OwnerID: s.ownerID},
		Booker: queries.UserBrief{ID: s.bookerID, Name: "booker"},
	}
}

func (s *BookingCommandsTestSuite) TestDecide() {
	bookingID := uuid.New()

	s.Run("owner approves", func() {
		s.q.EXPECT().GetByID(gomock.Any(), s.ownerID, bookingID).Return(s.waitingView(bookingID), nil)
		s.repo.EXPECT().DecideStatus(gomock.Any(), bookingID, booking.StatusApproved).Return(true, nil)

		view, err := s.cmds.Decide(context.Background(), s.ownerID, bookingID, true)
		s.Require().NoError(err)
		s.Equal(booking.StatusApproved, view.Status)
	})

	s.Run("owner rejects", func() {
		s.q.EXPECT().GetByID(gomock.Any(), s.ownerID, bookingID).Return(s.waitingView(bookingID), nil)
		s.repo.EXPECT().DecideStatus(gomock.Any(), bookingID, booking.StatusRejected).Return(true, nil)

		view, err := s.cmds.Decide(context.Background(), s.ownerID, bookingID, false)
		s.Require().NoError(err)
		s.Equal(booking.StatusRejected, view.Status)
	})

	s.Run("booker may see but not decide", func() {
		s.q.EXPECT().GetByID(gomock.Any(), s.bookerID, bookingID).Return(s.waitingView(bookingID), nil)

		_, err := s.cmds.Decide(context.Background(), s.bookerID, bookingID, true)
		s.Require().ErrorIs(err, booking.ErrNotOwner)
	})

	s.Run("stranger gets not found from visibility", func() {
		strangerID := uuid.New()
		s.q.EXPECT().GetByID(gomock.Any(), strangerID, bookingID).Return(nil, errs.ErrBookingNotFound)

		_, err := s.cmds.Decide(context.Background(), strangerID, bookingID, true)
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("second decision fails", func() {
		decided := s.waitingView(bookingID)
		decided.Status = booking.StatusApproved
		s.q.EXPECT().GetByID(gomock.Any(), s.ownerID, bookingID).Return(decided, nil)

		_, err := s.cmds.Decide(context.Background(), s.ownerID, bookingID, false)
		s.Require().ErrorIs(err, booking.ErrAlreadyDecided)
	})

	s.Run("losing the decision race fails the same way", func() {
		s.q.EXPECT().GetByID(gomock.Any(), s.ownerID, bookingID).Return(s.waitingView(bookingID), nil)
		s.repo.EXPECT().DecideStatus(gomock.Any(), bookingID, booking.StatusApproved).Return(false, nil)

		_, err := s.cmds.Decide(context.Background(), s.ownerID, bookingID, true)
		s.Require().ErrorIs(err, booking.ErrAlreadyDecided)
	})
}
