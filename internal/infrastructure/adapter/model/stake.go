package model

import (
	"time"
)

// Stake represents the database model for stakes.
// One stake per user per proposition is enforced by a unique index.
type Stake struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	PropositionID string    `gorm:"type:uuid;not null;uniqueIndex:idx_stakes_proposition_user,priority:1"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_stakes_proposition_user,priority:2;index:idx_stakes_user_created,priority:1"`
	Side          string    `gorm:"type:varchar(8);not null"`
	Amount        int64     `gorm:"not null;check:chk_stakes_amount_positive,amount > 0"`
	CreatedAt     time.Time `gorm:"not null;index:idx_stakes_user_created,priority:2"`
}

// TableName specifies the table name for Stake
func (Stake) TableName() string {
	return "stakes"
}
