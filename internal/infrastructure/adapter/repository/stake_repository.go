package repository

import (
	"context"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// poolSubquery aggregates every proposition's pool in one pass
const poolSubquery = `SELECT proposition_id,
		COALESCE(SUM(CASE WHEN side = 'over' THEN amount ELSE 0 END), 0) AS total_over,
		COALESCE(SUM(CASE WHEN side = 'under' THEN amount ELSE 0 END), 0) AS total_under,
		COUNT(DISTINCT user_id) AS stakers
	FROM stakes GROUP BY proposition_id`

// StakeRepository implements persistence.StakeRepository using GORM
type StakeRepository struct {
	base
}

// NewStakeRepository creates a new StakeRepository instance
func NewStakeRepository(db *gorm.DB, logger coreport.Logger) *StakeRepository {
	return &StakeRepository{base: newBase(db, logger)}
}

func stakeToEntity(m *model.Stake) *entity.Stake {
	return &entity.Stake{
		ID:            m.ID,
		PropositionID: m.PropositionID,
		UserID:        m.UserID,
		Side:          entity.Side(m.Side),
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
	}
}

// Create stores a stake; the unique index turns a second stake into DuplicateStakeError
func (r *StakeRepository) Create(ctx context.Context, stake *entity.Stake) error {
	m := model.Stake{
		ID:            stake.ID,
		PropositionID: stake.PropositionID,
		UserID:        stake.UserID,
		Side:          string(stake.Side),
		Amount:        stake.Amount,
		CreatedAt:     stake.CreatedAt,
	}
	err := r.db.WithContext(ctx).Create(&m).Error
	if err == nil {
		return nil
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate stake rejected by unique index", map[string]any{
			"proposition_id": stake.PropositionID,
			"user_id":        stake.UserID,
		})
		return errs.NewDuplicateStakeError(stake.PropositionID, stake.UserID)
	}
	return r.handleDatabaseError("creating stake", err, errs.ErrPropositionNotFound,
		map[string]any{"proposition_id": stake.PropositionID, "user_id": stake.UserID})
}

// GetByUserAndProposition returns the user's stake on a proposition
func (r *StakeRepository) GetByUserAndProposition(ctx context.Context, propositionID, userID string) (*entity.Stake, error) {
	var m model.Stake
	err := r.db.WithContext(ctx).
		Where("proposition_id = ? AND user_id = ?", propositionID, userID).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting stake", err, errs.ErrNotFound,
			map[string]any{"proposition_id": propositionID, "user_id": userID})
	}
	return stakeToEntity(&m), nil
}

// ListByProposition returns stakes in placement order
func (r *StakeRepository) ListByProposition(ctx context.Context, propositionID string) ([]*entity.Stake, error) {
	var rows []model.Stake
	err := r.db.WithContext(ctx).
		Where("proposition_id = ?", propositionID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing stakes", err, errs.ErrNotFound, map[string]any{"proposition_id": propositionID})
	}
	stakes := make([]*entity.Stake, 0, len(rows))
	for i := range rows {
		stakes = append(stakes, stakeToEntity(&rows[i]))
	}
	return stakes, nil
}

type poolRow struct {
	PropositionID string
	TotalOver     int64
	TotalUnder    int64
	Stakers       int
}

// TotalsByPropositions aggregates pools for several propositions in one query
func (r *StakeRepository) TotalsByPropositions(ctx context.Context, propositionIDs []string) (map[string]entity.PoolTotals, error) {
	totals := make(map[string]entity.PoolTotals, len(propositionIDs))
	if len(propositionIDs) == 0 {
		return totals, nil
	}
	for _, id := range propositionIDs {
		totals[id] = entity.PoolTotals{}
	}

	var rows []poolRow
	err := r.db.WithContext(ctx).
		Table("stakes").
		Select(`proposition_id,
			COALESCE(SUM(CASE WHEN side = 'over' THEN amount ELSE 0 END), 0) AS total_over,
			COALESCE(SUM(CASE WHEN side = 'under' THEN amount ELSE 0 END), 0) AS total_under,
			COUNT(DISTINCT user_id) AS stakers`).
		Where("proposition_id IN ?", propositionIDs).
		Group("proposition_id").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating pools", err, errs.ErrNotFound, map[string]any{"count": len(propositionIDs)})
	}
	for _, row := range rows {
		totals[row.PropositionID] = entity.PoolTotals{
			TotalOver:  row.TotalOver,
			TotalUnder: row.TotalUnder,
			Stakers:    row.Stakers,
		}
	}
	return totals, nil
}

type settledRow struct {
	StakeID       string
	PropositionID string
	UserID        string
	Side          string
	Amount        int64
	StakedAt      time.Time
	WinningSide   string
	ResolvedAt    time.Time
	TotalOver     int64
	TotalUnder    int64
	Stakers       int
}

// ListSettled returns every stake on a resolved proposition with its final pool
func (r *StakeRepository) ListSettled(ctx context.Context) ([]entity.SettledStake, error) {
	var rows []settledRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id AS stake_id, s.proposition_id, s.user_id, s.side, s.amount,
			s.created_at AS staked_at, p.winning_side, p.resolved_at,
			pool.total_over, pool.total_under, pool.stakers
		FROM stakes s
		JOIN propositions p ON p.id = s.proposition_id
		JOIN (`+poolSubquery+`) pool ON pool.proposition_id = s.proposition_id
		WHERE p.status = ? AND p.winning_side IS NOT NULL AND p.resolved_at IS NOT NULL
		ORDER BY s.created_at, s.id`, string(entity.StatusResolved)).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing settled stakes", err, errs.ErrNotFound, nil)
	}

	settled := make([]entity.SettledStake, 0, len(rows))
	for _, row := range rows {
		settled = append(settled, entity.SettledStake{
			StakeID:       row.StakeID,
			PropositionID: row.PropositionID,
			UserID:        row.UserID,
			Side:          entity.Side(row.Side),
			Amount:        row.Amount,
			StakedAt:      row.StakedAt,
			WinningSide:   entity.Side(row.WinningSide),
			ResolvedAt:    row.ResolvedAt,
			Totals: entity.PoolTotals{
				TotalOver:  row.TotalOver,
				TotalUnder: row.TotalUnder,
				Stakers:    row.Stakers,
			},
		})
	}
	return settled, nil
}

type recordRow struct {
	StakeID     string
	Amount      int64
	Side        string
	StakedAt    time.Time
	Status      string
	WinningSide *string
	TotalOver   int64
	TotalUnder  int64
	Stakers     int
}

// ListByUserSince returns a user's stakes placed at or after since, oldest first
func (r *StakeRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]entity.StakeRecord, error) {
	var rows []recordRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id AS stake_id, s.amount, s.side, s.created_at AS staked_at,
			p.status, p.winning_side,
			pool.total_over, pool.total_under, pool.stakers
		FROM stakes s
		JOIN propositions p ON p.id = s.proposition_id
		JOIN (`+poolSubquery+`) pool ON pool.proposition_id = s.proposition_id
		WHERE s.user_id = ? AND s.created_at >= ?
		ORDER BY s.created_at, s.id`, userID, since).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing user stakes", err, errs.ErrNotFound,
			map[string]any{"user_id": userID, "since": since})
	}

	records := make([]entity.StakeRecord, 0, len(rows))
	for _, row := range rows {
		record := entity.StakeRecord{
			StakeID:  row.StakeID,
			Amount:   row.Amount,
			Side:     entity.Side(row.Side),
			StakedAt: row.StakedAt,
			Totals: entity.PoolTotals{
				TotalOver:  row.TotalOver,
				TotalUnder: row.TotalUnder,
				Stakers:    row.Stakers,
			},
		}
		if row.Status == string(entity.StatusResolved) && row.WinningSide != nil {
			record.Resolved = true
			record.WinningSide = entity.Side(*row.WinningSide)
		}
		records = append(records, record)
	}
	return records, nil
}
