package model

import (
	"time"
)

// LedgerEntry represents one immutable balance change
type LedgerEntry struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	UserID        string    `gorm:"type:uuid;not null;index:idx_ledger_entries_user_created,priority:1"`
	Kind          string    `gorm:"type:varchar(20);not null"`
	Amount        int64     `gorm:"not null"`
	Reference     string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	ResultBalance int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index:idx_ledger_entries_user_created,priority:2"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
