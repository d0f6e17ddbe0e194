package group

import (
	"context"
	"errors"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
	"github.com/mensunw/people-bets/internal/domain/port/usecase"
)

// GroupUseCase handles group membership rules
type GroupUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGroupUseCase creates a new GroupUseCase
func NewGroupUseCase(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *GroupUseCase {
	return &GroupUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateGroup creates a group and enrolls the leader in the same transaction
func (g *GroupUseCase) CreateGroup(ctx context.Context, leaderID string, input usecase.CreateGroupInput) (*entity.Group, error) {
	now := g.timeProvider.Now()
	group, err := entity.NewGroup(input.Name, input.Description, input.IsPrivate, leaderID, now)
	if err != nil {
		return nil, err
	}

	err = persistence.RunInTransaction(ctx, g.uow, func(txCtx context.Context) error {
		if _, err := g.uow.GetUserRepository(txCtx).GetByID(txCtx, leaderID); err != nil {
			return err
		}
		groups := g.uow.GetGroupRepository(txCtx)
		if err := groups.Create(txCtx, group); err != nil {
			return err
		}
		return groups.AddMember(txCtx, entity.NewMembership(group.ID, leaderID, now))
	})
	if err != nil {
		return nil, err
	}

	g.logger.Info("Group created", map[string]any{
		"group_id":   group.ID,
		"leader_id":  leaderID,
		"is_private": group.IsPrivate,
	})
	return group, nil
}

// GetGroup returns a group and its members
func (g *GroupUseCase) GetGroup(ctx context.Context, groupID, viewerID string) (*usecase.GroupDetail, error) {
	groups := g.uow.GetGroupRepository(ctx)
	group, err := groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	isMember, err := groups.IsMember(ctx, groupID, viewerID)
	if err != nil {
		return nil, err
	}
	if group.IsPrivate && !isMember {
		return nil, errs.NewAuthorizationError(viewerID, "view group", "group is private")
	}

	members, err := groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &usecase.GroupDetail{Group: group, Members: members, IsMember: isMember || group.IsGlobal()}, nil
}

// ListMyGroups returns the groups the user belongs to
func (g *GroupUseCase) ListMyGroups(ctx context.Context, userID string) ([]*entity.Group, error) {
	return g.uow.GetGroupRepository(ctx).ListForUser(ctx, userID)
}

// ListPublicGroups returns every discoverable group
func (g *GroupUseCase) ListPublicGroups(ctx context.Context) ([]*entity.Group, error) {
	return g.uow.GetGroupRepository(ctx).ListPublic(ctx)
}

// JoinGroup enrolls a user in a public group. Joining Global is a no-op.
func (g *GroupUseCase) JoinGroup(ctx context.Context, groupID, userID string) error {
	now := g.timeProvider.Now()

	return persistence.RunInTransaction(ctx, g.uow, func(txCtx context.Context) error {
		groups := g.uow.GetGroupRepository(txCtx)
		group, err := groups.GetByID(txCtx, groupID)
		if err != nil {
			return err
		}
		if group.IsGlobal() {
			return nil
		}
		if group.IsPrivate {
			return errs.NewAuthorizationError(userID, "join group", "group is private, ask the leader for an invite")
		}
		if _, err := g.uow.GetUserRepository(txCtx).GetByID(txCtx, userID); err != nil {
			return err
		}
		if err := groups.AddMember(txCtx, entity.NewMembership(groupID, userID, now)); err != nil {
			return err
		}

		g.logger.Info("User joined group", map[string]any{
			"group_id": groupID,
			"user_id":  userID,
		})
		return nil
	})
}

// InviteMembers adds users to a group on the leader's behalf. Users who are
// already members are skipped; any unknown user fails the whole invite.
func (g *GroupUseCase) InviteMembers(ctx context.Context, groupID, leaderID string, userIDs []string) (int, error) {
	if len(userIDs) == 0 {
		return 0, errs.NewValidationError("userIds", "at least one user is required")
	}

	now := g.timeProvider.Now()
	added := 0

	err := persistence.RunInTransaction(ctx, g.uow, func(txCtx context.Context) error {
		groups := g.uow.GetGroupRepository(txCtx)
		group, err := groups.GetByID(txCtx, groupID)
		if err != nil {
			return err
		}
		if !group.IsLeader(leaderID) {
			return errs.NewAuthorizationError(leaderID, "invite members", "only the group leader can invite")
		}

		users := g.uow.GetUserRepository(txCtx)
		seen := make(map[string]struct{}, len(userIDs))
		for _, id := range userIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			if _, err := users.GetByID(txCtx, id); err != nil {
				return err
			}
			err := groups.AddMember(txCtx, entity.NewMembership(groupID, id, now))
			if errors.Is(err, errs.ErrAlreadyMember) {
				continue
			}
			if err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	g.logger.Info("Members invited", map[string]any{
		"group_id":  groupID,
		"leader_id": leaderID,
		"added":     added,
	})
	return added, nil
}

// LeaveGroup removes a member. Leaders and the Global group are pinned.
func (g *GroupUseCase) LeaveGroup(ctx context.Context, groupID, userID string) error {
	return persistence.RunInTransaction(ctx, g.uow, func(txCtx context.Context) error {
		groups := g.uow.GetGroupRepository(txCtx)
		group, err := groups.GetByID(txCtx, groupID)
		if err != nil {
			return err
		}
		if err := group.CanLeave(userID); err != nil {
			return err
		}
		if err := groups.RemoveMember(txCtx, groupID, userID); err != nil {
			return err
		}

		g.logger.Info("User left group", map[string]any{
			"group_id": groupID,
			"user_id":  userID,
		})
		return nil
	})
}
