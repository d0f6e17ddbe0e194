package model

import (
	"time"

	"gorm.io/datatypes"
)

// Settlement records how a resolved proposition's pool was distributed
type Settlement struct {
	PropositionID string         `gorm:"type:uuid;primaryKey"`
	WinningSide   string         `gorm:"type:varchar(8);not null"`
	TotalOver     int64          `gorm:"not null"`
	TotalUnder    int64          `gorm:"not null"`
	Stakers       int            `gorm:"not null"`
	WinningTotal  int64          `gorm:"not null"`
	PaidOut       int64          `gorm:"not null"`
	Forfeited     int64          `gorm:"not null"`
	Payouts       datatypes.JSON `gorm:"type:jsonb;not null"`
	SettledAt     time.Time      `gorm:"not null"`
}

// TableName specifies the table name for Settlement
func (Settlement) TableName() string {
	return "settlements"
}
