package model

import (
	"time"
)

// Group represents the database model for groups. LeaderID is empty for Global.
type Group struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(80);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	IsPrivate   bool      `gorm:"not null;default:false;index"`
	LeaderID    string    `gorm:"type:varchar(36);not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "groups"
}

// GroupMember represents one user's membership of a group
type GroupMember struct {
	GroupID  string    `gorm:"type:uuid;primaryKey"`
	UserID   string    `gorm:"type:uuid;primaryKey;index"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}
