package migration

import (
	"context"
	"errors"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion and seeds the Global group
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		// Seeding is idempotent and runs on every start
		return m.SeedGlobalGroup(ctx)
	}

	steps := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{"auto-migrate models", m.autoMigrateModels},
		{"versioned migrations", func(ctx context.Context) error { return m.runVersionedMigrations(ctx, currentVersion) }},
		{"foreign keys", m.advancedIndexMgr.CreateForeignKeys},
		{"advanced indexes", m.advancedIndexMgr.CreateAdvancedIndexes},
		{"performance tweaks", m.advancedIndexMgr.CreatePerformanceTweaks},
		{"seed global group", m.SeedGlobalGroup},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":            step.name,
				"error":           err.Error(),
				"current_version": currentVersion,
				"target_version":  CurrentSchemaVersion,
			})
			return err
		}
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// SeedGlobalGroup inserts the Global group unless it already exists
func (m *MigrationManager) SeedGlobalGroup(ctx context.Context) error {
	global := entity.GlobalGroup(m.now())
	row := model.Group{
		ID:          global.ID,
		Name:        global.Name,
		Description: global.Description,
		IsPrivate:   global.IsPrivate,
		LeaderID:    global.LeaderID,
		CreatedAt:   global.CreatedAt,
	}

	result := m.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		m.logger.Info("Seeded Global group", map[string]any{"group_id": global.ID})
	}
	return nil
}

func (m *MigrationManager) now() time.Time {
	if m.timeProvider != nil {
		return m.timeProvider.Now()
	}
	return time.Now().UTC()
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.now(),
		Details:   details,
	}
	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.GroupMember{},
		&model.Proposition{},
		&model.Stake{},
		&model.LedgerEntry{},
		&model.Settlement{},
		&model.LeaderboardEntry{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return nil
	case "1.0.0":
		return m.migrateFrom1_0_0To1_1_0(ctx)
	}
	return nil
}

// migrateFrom1_0_0To1_1_0 backfills the signup ledger entry for profiles
// created before the ledger existed
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	return m.db.WithContext(ctx).Exec(`
		INSERT INTO ledger_entries (id, user_id, kind, amount, reference, result_balance, created_at)
		SELECT gen_random_uuid(), u.id, ?, ?, 'signup:' || u.id, ?, u.created_at
		FROM users u
		ON CONFLICT (reference) DO NOTHING`,
		string(entity.LedgerSignupBonus), entity.InitialBalance, entity.InitialBalance,
	).Error
}
