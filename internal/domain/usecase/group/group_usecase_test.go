package group

import (
	"context"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
	"github.com/mensunw/people-bets/internal/domain/usecase/usecasetest"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	leaderID = "a1b2c3d4-0000-4000-8000-000000000001"
	memberID = "a1b2c3d4-0000-4000-8000-000000000002"
	otherID  = "a1b2c3d4-0000-4000-8000-000000000003"
	ghostID  = "a1b2c3d4-0000-4000-8000-0000000000ff"
)

func setup(t *testing.T) (*GroupUseCase, *memory.Store) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := usecasetest.NewStore(t, now)
	for _, id := range []string{leaderID, memberID, otherID} {
		usecasetest.AddUser(t, store, id, 1000, now)
	}
	clock := usecasetest.NewClock(now)
	return NewGroupUseCase(store, clock.TimeProvider(t), logger.NewNoopLogger()), store
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader becomes the first member", func(t *testing.T) {
		uc, _ := setup(t)

		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "  Poker night ", IsPrivate: true})

		require.NoError(t, err)
		assert.Equal(t, "Poker night", group.Name)
		assert.Equal(t, leaderID, group.LeaderID)

		detail, err := uc.GetGroup(ctx, group.ID, leaderID)
		require.NoError(t, err)
		require.Len(t, detail.Members, 1)
		assert.Equal(t, leaderID, detail.Members[0].UserID)
		assert.True(t, detail.IsMember)
	})

	t.Run("Short name is rejected", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: " x "})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Unknown leader", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.CreateGroup(ctx, ghostID, usecase.CreateGroupInput{Name: "Ghosts"})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestJoinGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("Join public group", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Open table"})
		require.NoError(t, err)

		require.NoError(t, uc.JoinGroup(ctx, group.ID, memberID))

		mine, err := uc.ListMyGroups(ctx, memberID)
		require.NoError(t, err)
		ids := []string{}
		for _, g := range mine {
			ids = append(ids, g.ID)
		}
		assert.ElementsMatch(t, []string{entity.GlobalGroupID, group.ID}, ids)
	})

	t.Run("Second join is a conflict", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Open table"})
		require.NoError(t, err)
		require.NoError(t, uc.JoinGroup(ctx, group.ID, memberID))

		err = uc.JoinGroup(ctx, group.ID, memberID)

		assert.ErrorIs(t, err, errs.ErrAlreadyMember)
		assert.Equal(t, errs.CodeAlreadyMember, errs.ErrorCode(err))
	})

	t.Run("Private group rejects joins", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Secret", IsPrivate: true})
		require.NoError(t, err)

		err = uc.JoinGroup(ctx, group.ID, memberID)

		assert.ErrorIs(t, err, errs.ErrAuthorization)
		_, err = uc.GetGroup(ctx, group.ID, memberID)
		assert.ErrorIs(t, err, errs.ErrAuthorization)
	})

	t.Run("Joining Global is a no-op", func(t *testing.T) {
		uc, _ := setup(t)

		assert.NoError(t, uc.JoinGroup(ctx, entity.GlobalGroupID, memberID))
	})

	t.Run("Unknown group", func(t *testing.T) {
		uc, _ := setup(t)

		assert.ErrorIs(t, uc.JoinGroup(ctx, "missing", memberID), errs.ErrGroupNotFound)
	})
}

func TestInviteMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader invites, existing members are skipped", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Secret", IsPrivate: true})
		require.NoError(t, err)

		added, err := uc.InviteMembers(ctx, group.ID, leaderID, []string{memberID, leaderID, memberID, otherID})

		require.NoError(t, err)
		assert.Equal(t, 2, added)
		detail, err := uc.GetGroup(ctx, group.ID, otherID)
		require.NoError(t, err)
		assert.Len(t, detail.Members, 3)
	})

	t.Run("Only the leader may invite", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Secret", IsPrivate: true})
		require.NoError(t, err)

		_, err = uc.InviteMembers(ctx, group.ID, memberID, []string{otherID})

		assert.ErrorIs(t, err, errs.ErrAuthorization)
	})

	t.Run("Unknown invitee rolls back the invite", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Secret", IsPrivate: true})
		require.NoError(t, err)

		_, err = uc.InviteMembers(ctx, group.ID, leaderID, []string{memberID, ghostID})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		detail, err := uc.GetGroup(ctx, group.ID, leaderID)
		require.NoError(t, err)
		assert.Len(t, detail.Members, 1)
	})
}

func TestLeaveGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("Member leaves", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Open table"})
		require.NoError(t, err)
		require.NoError(t, uc.JoinGroup(ctx, group.ID, memberID))

		require.NoError(t, uc.LeaveGroup(ctx, group.ID, memberID))

		detail, err := uc.GetGroup(ctx, group.ID, memberID)
		require.NoError(t, err)
		assert.False(t, detail.IsMember)
	})

	t.Run("Leader cannot leave", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Open table"})
		require.NoError(t, err)

		err = uc.LeaveGroup(ctx, group.ID, leaderID)

		assert.ErrorIs(t, err, errs.ErrAuthorization)
		assert.Contains(t, err.Error(), "Group leaders cannot leave their group. Delete the group instead.")
	})

	t.Run("Global cannot be left", func(t *testing.T) {
		uc, _ := setup(t)

		assert.ErrorIs(t, uc.LeaveGroup(ctx, entity.GlobalGroupID, memberID), errs.ErrValidation)
	})

	t.Run("Non member", func(t *testing.T) {
		uc, _ := setup(t)
		group, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Open table"})
		require.NoError(t, err)

		assert.ErrorIs(t, uc.LeaveGroup(ctx, group.ID, otherID), errs.ErrMembershipNotFound)
	})
}

func TestListPublicGroups(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup(t)
	_, err := uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Secret", IsPrivate: true})
	require.NoError(t, err)
	_, err = uc.CreateGroup(ctx, leaderID, usecase.CreateGroupInput{Name: "Alpha"})
	require.NoError(t, err)

	groups, err := uc.ListPublicGroups(ctx)

	require.NoError(t, err)
	names := []string{}
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Alpha", "Global"}, names)
}
