package repository

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerRepository implements persistence.LedgerRepository using GORM
type LedgerRepository struct {
	base
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{base: newBase(db, logger)}
}

// Create appends an entry. The unique reference index rejects replays.
func (r *LedgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	m := model.LedgerEntry{
		ID:            entry.ID,
		UserID:        entry.UserID,
		Kind:          string(entry.Kind),
		Amount:        entry.Amount,
		Reference:     entry.Reference,
		ResultBalance: entry.ResultBalance,
		CreatedAt:     entry.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("appending ledger entry", err, errs.ErrUserNotFound, map[string]any{
			"user_id":   entry.UserID,
			"reference": entry.Reference,
		})
	}
	return nil
}

// ExistsByReference checks whether a movement was already recorded
func (r *LedgerRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LedgerEntry{}).Where("reference = ?", reference).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking ledger reference", err, errs.ErrNotFound, map[string]any{"reference": reference})
	}
	return count > 0, nil
}

// ListByUser returns the user's most recent entries, newest first
func (r *LedgerRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.LedgerEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.LedgerEntry
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing ledger entries", err, errs.ErrNotFound, map[string]any{"user_id": userID})
	}

	entries := make([]*entity.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.LedgerEntry{
			ID:            row.ID,
			UserID:        row.UserID,
			Kind:          entity.LedgerKind(row.Kind),
			Amount:        row.Amount,
			Reference:     row.Reference,
			ResultBalance: row.ResultBalance,
			CreatedAt:     row.CreatedAt,
		})
	}
	return entries, nil
}
