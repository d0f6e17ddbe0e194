package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettlementRepository implements persistence.SettlementRepository using GORM
type SettlementRepository struct {
	base
}

// NewSettlementRepository creates a new SettlementRepository instance
func NewSettlementRepository(db *gorm.DB, logger coreport.Logger) *SettlementRepository {
	return &SettlementRepository{base: newBase(db, logger)}
}

// Create stores the settlement. The proposition id is the primary key, so a
// second settlement of the same proposition fails with ErrDuplicateKey.
func (r *SettlementRepository) Create(ctx context.Context, settlement *entity.Settlement) error {
	payouts := settlement.Payouts
	if payouts == nil {
		payouts = []entity.Payout{}
	}
	raw, err := json.Marshal(payouts)
	if err != nil {
		return fmt.Errorf("failed to encode payouts: %w", err)
	}

	m := model.Settlement{
		PropositionID: settlement.PropositionID,
		WinningSide:   string(settlement.WinningSide),
		TotalOver:     settlement.Totals.TotalOver,
		TotalUnder:    settlement.Totals.TotalUnder,
		Stakers:       settlement.Totals.Stakers,
		WinningTotal:  settlement.WinningTotal,
		PaidOut:       settlement.PaidOut,
		Forfeited:     settlement.Forfeited,
		Payouts:       datatypes.JSON(raw),
		SettledAt:     settlement.SettledAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("recording settlement", err, errs.ErrPropositionNotFound,
			map[string]any{"proposition_id": settlement.PropositionID})
	}
	return nil
}

// GetByProposition loads the settlement of a resolved proposition
func (r *SettlementRepository) GetByProposition(ctx context.Context, propositionID string) (*entity.Settlement, error) {
	var m model.Settlement
	if err := r.db.WithContext(ctx).Where("proposition_id = ?", propositionID).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting settlement", err, errs.ErrNotFound,
			map[string]any{"proposition_id": propositionID})
	}

	var payouts []entity.Payout
	if err := json.Unmarshal(m.Payouts, &payouts); err != nil {
		return nil, fmt.Errorf("failed to decode payouts of %s: %w", propositionID, err)
	}

	return &entity.Settlement{
		PropositionID: m.PropositionID,
		WinningSide:   entity.Side(m.WinningSide),
		Totals: entity.PoolTotals{
			TotalOver:  m.TotalOver,
			TotalUnder: m.TotalUnder,
			Stakers:    m.Stakers,
		},
		WinningTotal: m.WinningTotal,
		Payouts:      payouts,
		PaidOut:      m.PaidOut,
		Forfeited:    m.Forfeited,
		SettledAt:    m.SettledAt,
	}, nil
}
