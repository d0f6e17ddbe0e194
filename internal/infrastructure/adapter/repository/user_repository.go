package repository

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	base
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{base: newBase(db, logger)}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(m *model.User) *entity.User {
	return entity.RestoreUser(m.ID, m.Username, m.Balance, m.LastClaimDate, m.CreatedAt, m.UpdatedAt)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, errs.ErrUserNotFound, map[string]any{"user_id": id})
	}
	return r.modelToEntity(&m), nil
}

// GetForUpdate retrieves a user with SELECT ... FOR UPDATE
func (r *UserRepository) GetForUpdate(ctx context.Context, id string) (*entity.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking user", err, errs.ErrUserNotFound, map[string]any{"user_id": id})
	}
	return r.modelToEntity(&m), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := model.User{
		ID:            user.ID,
		Username:      user.Username,
		Balance:       user.Balance(),
		LastClaimDate: user.LastClaimDate,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating user", err, errs.ErrUserNotFound, map[string]any{"user_id": user.ID})
	}
	r.logger.Debug("User created", map[string]any{"user_id": user.ID, "balance": user.Balance()})
	return nil
}

// Update persists balance, username and grant claim date
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"username":        user.Username,
			"balance":         user.Balance(),
			"last_claim_date": user.LastClaimDate,
			"updated_at":      user.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, errs.ErrUserNotFound, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{"user_id": user.ID})
		return errs.ErrUserNotFound
	}
	return nil
}

// GetUsernames resolves display names for a set of user IDs
func (r *UserRepository) GetUsernames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []model.User
	if err := r.db.WithContext(ctx).Select("id", "username").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("resolving usernames", err, errs.ErrNotFound, map[string]any{"count": len(ids)})
	}
	for _, row := range rows {
		names[row.ID] = row.Username
	}
	return names, nil
}
