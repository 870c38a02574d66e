//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"
	queriesmock "lendshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *queriesmock.MockBookingReadStore
	users     *queriesmock.MockUserReadStore
	clock     *clock.FixedClock
	q         queries.BookingQueries
	bookerID  uuid.UUID
	ownerID   uuid.UUID
	bookingID uuid.UUID
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.clock = clock.NewFixedClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	s.q = queries.NewBookingQueries(s.store, s.users, s.clock)

	s.bookerID = uuid.New()
	s.ownerID = uuid.New()
	s.bookingID = uuid.New()
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) view() *queries.BookingView {
	return &queries.BookingView{
		ID:     s.bookingID,
		Start:  s.clock.Now().Add(24 * time.Hour),
		End:    s.clock.Now().Add(48 * time.Hour),
		Status: booking.StatusWaiting,
		Item:   queries.ItemBrief{ID: uuid.New(), Name: "drill", OwnerID: s.ownerID},
		Booker: queries.UserBrief{ID: s.bookerID, Name: "booker"},
	}
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	s.Run("booker sees the booking", func() {
		s.store.EXPECT().FindByID(gomock.Any(), s.bookingID).Return(s.view(), nil)

		view, err := s.q.GetByID(context.Background(), s.bookerID, s.bookingID)
		s.Require().NoError(err)
		s.Equal(s.bookingID, view.ID)
	})

	s.Run("item owner sees the booking", func() {
		s.store.EXPECT().FindByID(gomock.Any(), s.bookingID).Return(s.view(), nil)

		view, err := s.q.GetByID(context.Background(), s.ownerID, s.bookingID)
		s.Require().NoError(err)
		s.Equal(s.bookingID, view.ID)
	})

	s.Run("stranger gets not found", func() {
		s.store.EXPECT().FindByID(gomock.Any(), s.bookingID).Return(s.view(), nil)

		_, err := s.q.GetByID(context.Background(), uuid.New(), s.bookingID)
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("missing booking maps to not found", func() {
		s.store.EXPECT().FindByID(gomock.Any(), s.bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.q.GetByID(context.Background(), s.bookerID, s.bookingID)
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListByBooker() {
	userView := &queries.UserView{ID: s.bookerID, Name: "booker", Email: "booker@example.com"}

	s.Run("resolves token and page before hitting the store", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).Return(userView, nil)

		wantFilter := queries.BookingFilter{}
		wantPage := queries.PageWindow{Index: 1, Size: 5}
		s.store.EXPECT().FindByBooker(gomock.Any(), s.bookerID, wantFilter, wantPage).
			Return([]*queries.BookingView{s.view()}, nil)

		views, err := s.q.ListByBooker(context.Background(), s.bookerID, "ALL", int32p(5), int32p(5))
		s.Require().NoError(err)
		s.Len(views, 1)
	})

	s.Run("WAITING resolves to a status filter", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).Return(userView, nil)

		st := booking.StatusWaiting
		wantFilter := queries.BookingFilter{Status: &st}
		s.store.EXPECT().FindByBooker(gomock.Any(), s.bookerID, wantFilter, gomock.Any()).
			Return([]*queries.BookingView{}, nil)

		_, err := s.q.ListByBooker(context.Background(), s.bookerID, "WAITING", nil, nil)
		s.Require().NoError(err)
	})

	s.Run("unknown user fails before anything else", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.q.ListByBooker(context.Background(), s.bookerID, "ALL", nil, nil)
		s.Require().ErrorIs(err, errs.ErrUserNotFound)
	})

	s.Run("bad token fails after the user check", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).Return(userView, nil)

		_, err := s.q.ListByBooker(context.Background(), s.bookerID, "bogus", nil, nil)
		var stateErr *queries.UnknownStateError
		s.Require().ErrorAs(err, &stateErr)
		s.Equal("bogus", stateErr.Token)
	})

	s.Run("bad pagination fails after the token check", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.bookerID).Return(userView, nil)

		_, err := s.q.ListByBooker(context.Background(), s.bookerID, "ALL", int32p(-1), nil)
		s.Require().ErrorIs(err, errs.ErrInvalidPagination)
	})
}

func (s *BookingQueriesTestSuite) TestListByOwner() {
	userView := &queries.UserView{ID: s.ownerID, Name: "owner", Email: "owner@example.com"}

	s.Run("queries the owner scope", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.ownerID).Return(userView, nil)
		s.store.EXPECT().FindByOwner(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
			Return([]*queries.BookingView{s.view(), s.view()}, nil)

		views, err := s.q.ListByOwner(context.Background(), s.ownerID, "FUTURE", nil, nil)
		s.Require().NoError(err)
		s.Len(views, 2)
	})
}
