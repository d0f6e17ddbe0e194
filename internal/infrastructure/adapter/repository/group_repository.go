package repository

import (
	"context"
	"errors"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository implements persistence.GroupRepository using GORM
type GroupRepository struct {
	base
}

// NewGroupRepository creates a new GroupRepository instance
func NewGroupRepository(db *gorm.DB, logger coreport.Logger) *GroupRepository {
	return &GroupRepository{base: newBase(db, logger)}
}

func groupToEntity(m *model.Group) *entity.Group {
	return &entity.Group{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsPrivate:   m.IsPrivate,
		LeaderID:    m.LeaderID,
		CreatedAt:   m.CreatedAt,
	}
}

func groupsToEntities(rows []model.Group) []*entity.Group {
	groups := make([]*entity.Group, 0, len(rows))
	for i := range rows {
		groups = append(groups, groupToEntity(&rows[i]))
	}
	return groups
}

// Create stores a new group
func (r *GroupRepository) Create(ctx context.Context, group *entity.Group) error {
	m := model.Group{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		IsPrivate:   group.IsPrivate,
		LeaderID:    group.LeaderID,
		CreatedAt:   group.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating group", err, errs.ErrGroupNotFound, map[string]any{"group_id": group.ID})
	}
	return nil
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var m model.Group
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting group", err, errs.ErrGroupNotFound, map[string]any{"group_id": id})
	}
	return groupToEntity(&m), nil
}

// ListForUser returns the groups the user belongs to, ordered by name
func (r *GroupRepository) ListForUser(ctx context.Context, userID string) ([]*entity.Group, error) {
	var rows []model.Group
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members gm ON gm.group_id = groups.id").
		Where("gm.user_id = ?", userID).
		Order("groups.name, groups.id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing groups for user", err, errs.ErrNotFound, map[string]any{"user_id": userID})
	}
	return groupsToEntities(rows), nil
}

// ListPublic returns every non-private group, ordered by name
func (r *GroupRepository) ListPublic(ctx context.Context) ([]*entity.Group, error) {
	var rows []model.Group
	if err := r.db.WithContext(ctx).Where("is_private = ?", false).Order("name, id").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing public groups", err, errs.ErrNotFound, nil)
	}
	return groupsToEntities(rows), nil
}

// AddMember inserts a membership row. An existing row is left untouched and
// reported as ErrAlreadyMember without raising a unique violation, so the
// surrounding transaction stays usable.
func (r *GroupRepository) AddMember(ctx context.Context, membership *entity.Membership) error {
	m := model.GroupMember{
		GroupID:  membership.GroupID,
		UserID:   membership.UserID,
		JoinedAt: membership.JoinedAt,
	}
	fields := map[string]any{"group_id": membership.GroupID, "user_id": membership.UserID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&m)
	err := result.Error
	if err == nil {
		if result.RowsAffected == 0 {
			return errs.ErrAlreadyMember
		}
		return nil
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrAlreadyMember
	}
	if r.errorClassifier.IsConstraintError(err) && !r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Membership references a missing group or user", fields)
		return errs.ErrGroupNotFound
	}
	return r.handleDatabaseError("adding member", err, errs.ErrGroupNotFound, fields)
}

// RemoveMember deletes a membership row
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMember{})
	if result.Error != nil {
		return r.handleDatabaseError("removing member", result.Error, errs.ErrMembershipNotFound,
			map[string]any{"group_id": groupID, "user_id": userID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrMembershipNotFound
	}
	return nil
}

// IsMember reports whether the user belongs to the group
func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var m model.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, r.handleDatabaseError("checking membership", err, errs.ErrMembershipNotFound,
			map[string]any{"group_id": groupID, "user_id": userID})
	}
	return true, nil
}

// ListMembers returns memberships in join order
func (r *GroupRepository) ListMembers(ctx context.Context, groupID string) ([]*entity.Membership, error) {
	var rows []model.GroupMember
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("joined_at, user_id").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing members", err, errs.ErrNotFound, map[string]any{"group_id": groupID})
	}
	members := make([]*entity.Membership, 0, len(rows))
	for _, row := range rows {
		members = append(members, &entity.Membership{GroupID: row.GroupID, UserID: row.UserID, JoinedAt: row.JoinedAt})
	}
	return members, nil
}
