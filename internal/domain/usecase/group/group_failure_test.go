package group

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/mensunw/people-bets/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestJoinGroupRollsBack(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := usecasetest.NewClock(now)

	t.Run("Private group", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		groups := persistencemocks.NewMockGroupRepository(t)
		private := &entity.Group{ID: "g-1", Name: "Friends", IsPrivate: true, LeaderID: leaderID, CreatedAt: now}

		uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		uow.EXPECT().GetGroupRepository(ctx).Return(groups).Once()
		groups.EXPECT().GetByID(ctx, "g-1").Return(private, nil).Once()
		uow.EXPECT().Rollback(ctx).Return(nil).Once()

		err := NewGroupUseCase(uow, clock.TimeProvider(t), logger.NewNoopLogger()).JoinGroup(ctx, "g-1", otherID)

		assert.True(t, errors.Is(err, errs.ErrAuthorization))
	})

	t.Run("Membership write fails", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		groups := persistencemocks.NewMockGroupRepository(t)
		users := persistencemocks.NewMockUserRepository(t)
		public := &entity.Group{ID: "g-2", Name: "Open", LeaderID: leaderID, CreatedAt: now}
		user, _ := entity.NewUser(otherID, "", 1000, now)
		storeErr := errors.New("deadlock detected")

		uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		uow.EXPECT().GetGroupRepository(ctx).Return(groups).Once()
		groups.EXPECT().GetByID(ctx, "g-2").Return(public, nil).Once()
		uow.EXPECT().GetUserRepository(ctx).Return(users).Once()
		users.EXPECT().GetByID(ctx, otherID).Return(user, nil).Once()
		groups.EXPECT().AddMember(ctx, mock.MatchedBy(func(m *entity.Membership) bool {
			return m.GroupID == "g-2" && m.UserID == otherID
		})).Return(storeErr).Once()
		uow.EXPECT().Rollback(ctx).Return(nil).Once()

		err := NewGroupUseCase(uow, clock.TimeProvider(t), logger.NewNoopLogger()).JoinGroup(ctx, "g-2", otherID)

		assert.Equal(t, storeErr, err)
	})
}
