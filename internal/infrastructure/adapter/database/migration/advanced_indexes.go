package migration

import (
	"context"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific constraints and indexes
// that gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type foreignKey struct {
	name       string
	table      string
	column     string
	references string
}

var foreignKeys = []foreignKey{
	{"fk_group_members_group", "group_members", "group_id", "groups(id) ON DELETE CASCADE"},
	{"fk_group_members_user", "group_members", "user_id", "users(id) ON DELETE CASCADE"},
	{"fk_propositions_group", "propositions", "group_id", "groups(id)"},
	{"fk_propositions_creator", "propositions", "creator_id", "users(id)"},
	{"fk_stakes_proposition", "stakes", "proposition_id", "propositions(id)"},
	{"fk_stakes_user", "stakes", "user_id", "users(id)"},
	{"fk_ledger_entries_user", "ledger_entries", "user_id", "users(id)"},
	{"fk_settlements_proposition", "settlements", "proposition_id", "propositions(id)"},
}

// CreateForeignKeys adds referential constraints. Existing constraints are skipped.
func (m *AdvancedIndexManager) CreateForeignKeys(ctx context.Context) error {
	m.logger.Info("Creating foreign key constraints", map[string]any{"count": len(foreignKeys)})

	for _, fk := range foreignKeys {
		stmt := `DO $$ BEGIN
			ALTER TABLE ` + fk.table + ` ADD CONSTRAINT ` + fk.name + `
				FOREIGN KEY (` + fk.column + `) REFERENCES ` + fk.references + `;
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$;`
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to create foreign key", map[string]any{
				"constraint": fk.name,
				"error":      err.Error(),
			})
			return err
		}
	}
	return nil
}

// CreateAdvancedIndexes creates PostgreSQL indexes for the hot read paths
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		sql  string
	}{
		{
			// Leaderboard rebuild scans only resolved propositions
			"idx_propositions_resolved",
			`CREATE INDEX IF NOT EXISTS idx_propositions_resolved
			ON propositions (resolved_at) WHERE status = 'resolved'`,
		},
		{
			"idx_stakes_proposition_side",
			`CREATE INDEX IF NOT EXISTS idx_stakes_proposition_side
			ON stakes (proposition_id, side) INCLUDE (amount)`,
		},
		{
			"idx_ledger_entries_created_at_brin",
			`CREATE INDEX IF NOT EXISTS idx_ledger_entries_created_at_brin
			ON ledger_entries USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
		},
		{
			"chk_stakes_side",
			`DO $$ BEGIN
				ALTER TABLE stakes ADD CONSTRAINT chk_stakes_side CHECK (side IN ('over', 'under'));
			EXCEPTION WHEN duplicate_object THEN NULL;
			END $$;`,
		},
		{
			"chk_propositions_status",
			`DO $$ BEGIN
				ALTER TABLE propositions ADD CONSTRAINT chk_propositions_status
					CHECK (status IN ('open', 'closed', 'resolved') AND (status <> 'resolved' OR winning_side IS NOT NULL));
			EXCEPTION WHEN duplicate_object THEN NULL;
			END $$;`,
		},
	}

	for _, s := range statements {
		if err := m.db.WithContext(ctx).Exec(s.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": s.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks.
// Failures are logged and skipped.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		// users rows are updated on every stake, payout and grant
		`ALTER TABLE users SET (fillfactor = 90)`,
		`ALTER TABLE stakes ALTER COLUMN proposition_id SET STATISTICS 1000`,
	}
	for _, sql := range tweaks {
		if err := m.db.WithContext(ctx).Exec(sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"sql":   sql,
				"error": err.Error(),
			})
		}
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
