package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	Username      string     `gorm:"type:varchar(50);not null"`
	Balance       int64      `gorm:"not null;check:chk_users_balance_non_negative,balance >= 0"`
	LastClaimDate *time.Time `gorm:"null"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
