//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"
	commandsmock "lendshare/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *commandsmock.MockItemRepository
	comments *commandsmock.MockCommentRepository
	items    *commandsmock.MockItemReader
	users    *commandsmock.MockUserReader
	clock    *clock.FixedClock
	cmds     commands.ItemCommands
	ownerID  uuid.UUID
	userID   uuid.UUID
	itemID   uuid.UUID
}

func (s *ItemCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockItemRepository(s.ctrl)
	s.comments = commandsmock.NewMockCommentRepository(s.ctrl)
	s.items = commandsmock.NewMockItemReader(s.ctrl)
	s.users = commandsmock.NewMockUserReader(s.ctrl)
	s.clock = clock.NewFixedClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC))
	s.cmds = commands.NewItemCommands(s.repo, s.comments, s.items, s.users, s.clock)

	s.ownerID = uuid.New()
	s.userID = uuid.New()
	s.itemID = uuid.New()
}

func (s *ItemCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestItemCommandsSuite(t *testing.T) {
	suite.Run(t, new(ItemCommandsTestSuite))
}

func (s *ItemCommandsTestSuite) user(id uuid.UUID) *commands.UserSnapshot {
	return &commands.UserSnapshot{ID: id, Name: "someone", Email: "someone@example.com"}
}

func (s *ItemCommandsTestSuite) snapshot() *commands.ItemSnapshot {
	return &commands.ItemSnapshot{
		ID:          s.itemID,
		OwnerID:     s.ownerID,
		Name:        "drill",
		Description: "cordless drill",
		Available:   true,
	}
}

func (s *ItemCommandsTestSuite) TestCreate() {
	s.Run("creates for an existing owner", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.ownerID).Return(s.user(s.ownerID), nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item commands.ItemSnapshot) (*queries.ItemView, error) {
				s.Equal(s.ownerID, item.OwnerID)
				s.NotEqual(uuid.Nil, item.ID)
				return &queries.ItemView{ID: item.ID, Name: item.Name, OwnerID: item.OwnerID, Available: item.Available}, nil
			})

		view, err := s.cmds.Create(context.Background(), s.ownerID, "drill", "cordless drill", true, nil)
		s.Require().NoError(err)
		s.Equal("drill", view.Name)
	})

	s.Run("unknown owner", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.ownerID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.cmds.Create(context.Background(), s.ownerID, "drill", "cordless drill", true, nil)
		s.Require().ErrorIs(err, errs.ErrUserNotFound)
	})

	s.Run("dangling request reference", func() {
		requestID := uuid.New()
		s.users.EXPECT().FindByID(gomock.Any(), s.ownerID).Return(s.user(s.ownerID), nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", nil, infra.KindForeignKeyViolated))

		_, err := s.cmds.Create(context.Background(), s.ownerID, "drill", "cordless drill", true, &requestID)
		s.Require().ErrorIs(err, errs.ErrRequestNotFound)
	})
}

func (s *ItemCommandsTestSuite) TestUpdate() {
	name := "hammer drill"

	s.Run("owner patches a single field", func() {
		s.items.EXPECT().FindByID(gomock.Any(), s.ownerID, s.itemID).Return(s.snapshot(), nil)
		s.repo.EXPECT().Update(gomock.Any(), s.itemID, name, "cordless drill", true).
			Return(&queries.ItemView{ID: s.itemID, Name: name, Description: "cordless drill", Available: true, OwnerID: s.ownerID}, nil)

		view, err := s.cmds.Update(context.Background(), s.ownerID, s.itemID, &name, nil, nil)
		s.Require().NoError(err)
		s.Equal(name, view.Name)
		s.Equal("cordless drill", view.Description)
	})

	s.Run("non-owner gets not found", func() {
		s.items.EXPECT().FindByID(gomock.Any(), s.userID, s.itemID).Return(s.snapshot(), nil)

		_, err := s.cmds.Update(context.Background(), s.userID, s.itemID, &name, nil, nil)
		s.Require().ErrorIs(err, errs.ErrItemNotFound)
	})

	s.Run("missing item", func() {
		s.items.EXPECT().FindByID(gomock.Any(), s.ownerID, s.itemID).
			Return(nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound))

		_, err := s.cmds.Update(context.Background(), s.ownerID, s.itemID, &name, nil, nil)
		s.Require().ErrorIs(err, errs.ErrItemNotFound)
	})
}

func (s *ItemCommandsTestSuite) TestAddComment() {
	s.Run("allowed after a finished approved booking", func() {
		now := s.clock.Now()
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.user(s.userID), nil)
		s.items.EXPECT().FindByID(gomock.Any(), s.userID, s.itemID).Return(s.snapshot(), nil)
		s.comments.EXPECT().HasFinishedApprovedBooking(gomock.Any(), s.userID, s.itemID, now).Return(true, nil)
		s.comments.EXPECT().Create(gomock.Any(), gomock.Any(), s.itemID, s.userID, "works great", now).
			Return(&queries.CommentView{ID: uuid.New(), Text: "works great", AuthorName: "someone", Created: now}, nil)

		view, err := s.cmds.AddComment(context.Background(), s.userID, s.itemID, "  works great  ")
		s.Require().NoError(err)
		s.Equal("works great", view.Text)
	})

	s.Run("rejected without a finished booking", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.user(s.userID), nil)
		s.items.EXPECT().FindByID(gomock.Any(), s.userID, s.itemID).Return(s.snapshot(), nil)
		s.comments.EXPECT().HasFinishedApprovedBooking(gomock.Any(), s.userID, s.itemID, gomock.Any()).Return(false, nil)

		_, err := s.cmds.AddComment(context.Background(), s.userID, s.itemID, "never used it")
		s.Require().ErrorIs(err, errs.ErrCommentWithoutBooking)
	})

	s.Run("missing item", func() {
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.user(s.userID), nil)
		s.items.EXPECT().FindByID(gomock.Any(), s.userID, s.itemID).
			Return(nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound))

		_, err := s.cmds.AddComment(context.Background(), s.userID, s.itemID, "text")
		s.Require().ErrorIs(err, errs.ErrItemNotFound)
	})
}
