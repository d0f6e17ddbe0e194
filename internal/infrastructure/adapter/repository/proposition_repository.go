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

// PropositionRepository implements persistence.PropositionRepository using GORM
type PropositionRepository struct {
	base
}

// NewPropositionRepository creates a new PropositionRepository instance
func NewPropositionRepository(db *gorm.DB, logger coreport.Logger) *PropositionRepository {
	return &PropositionRepository{base: newBase(db, logger)}
}

func propositionToModel(p *entity.Proposition) *model.Proposition {
	m := &model.Proposition{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Target:      p.Target,
		GroupID:     p.GroupID,
		CreatorID:   p.CreatorID,
		WindowEnd:   p.WindowEnd,
		Status:      string(p.Status),
		ResolvedAt:  p.ResolvedAt,
		CreatedAt:   p.CreatedAt,
	}
	if p.WinningSide != nil {
		side := string(*p.WinningSide)
		m.WinningSide = &side
	}
	return m
}

func propositionToEntity(m *model.Proposition) *entity.Proposition {
	p := &entity.Proposition{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Target:      m.Target,
		GroupID:     m.GroupID,
		CreatorID:   m.CreatorID,
		WindowEnd:   m.WindowEnd.UTC(),
		Status:      entity.PropositionStatus(m.Status),
		ResolvedAt:  m.ResolvedAt,
		CreatedAt:   m.CreatedAt,
	}
	if m.WinningSide != nil {
		side := entity.Side(*m.WinningSide)
		p.WinningSide = &side
	}
	return p
}

// Create stores a new proposition
func (r *PropositionRepository) Create(ctx context.Context, proposition *entity.Proposition) error {
	if err := r.db.WithContext(ctx).Create(propositionToModel(proposition)).Error; err != nil {
		return r.handleDatabaseError("creating proposition", err, errs.ErrPropositionNotFound,
			map[string]any{"proposition_id": proposition.ID, "group_id": proposition.GroupID})
	}
	return nil
}

// GetByID retrieves a proposition by ID
func (r *PropositionRepository) GetByID(ctx context.Context, id string) (*entity.Proposition, error) {
	var m model.Proposition
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting proposition", err, errs.ErrPropositionNotFound,
			map[string]any{"proposition_id": id})
	}
	return propositionToEntity(&m), nil
}

// GetForUpdate retrieves a proposition with SELECT ... FOR UPDATE
func (r *PropositionRepository) GetForUpdate(ctx context.Context, id string) (*entity.Proposition, error) {
	var m model.Proposition
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking proposition", err, errs.ErrPropositionNotFound,
			map[string]any{"proposition_id": id})
	}
	return propositionToEntity(&m), nil
}

// Update persists the resolution fields
func (r *PropositionRepository) Update(ctx context.Context, proposition *entity.Proposition) error {
	m := propositionToModel(proposition)
	result := r.db.WithContext(ctx).Model(&model.Proposition{}).
		Where("id = ?", proposition.ID).
		Updates(map[string]interface{}{
			"status":       m.Status,
			"winning_side": m.WinningSide,
			"resolved_at":  m.ResolvedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating proposition", result.Error, errs.ErrPropositionNotFound,
			map[string]any{"proposition_id": proposition.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrPropositionNotFound
	}
	return nil
}

// ListByGroup returns a group's propositions, newest first
func (r *PropositionRepository) ListByGroup(ctx context.Context, groupID string) ([]*entity.Proposition, error) {
	var rows []model.Proposition
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing propositions", err, errs.ErrNotFound, map[string]any{"group_id": groupID})
	}
	props := make([]*entity.Proposition, 0, len(rows))
	for i := range rows {
		props = append(props, propositionToEntity(&rows[i]))
	}
	return props, nil
}
