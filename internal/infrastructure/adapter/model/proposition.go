package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposition represents the database model for propositions
type Proposition struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text;not null"`
	Target      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	GroupID     string          `gorm:"type:uuid;not null;index:idx_propositions_group_created,priority:1"`
	CreatorID   string          `gorm:"type:uuid;not null;index"`
	WindowEnd   time.Time       `gorm:"not null"`
	Status      string          `gorm:"type:varchar(16);not null;default:'open'"`
	WinningSide *string         `gorm:"type:varchar(8);null"`
	ResolvedAt  *time.Time      `gorm:"null"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_propositions_group_created,priority:2,sort:desc"`
}

// TableName specifies the table name for Proposition
func (Proposition) TableName() string {
	return "propositions"
}
