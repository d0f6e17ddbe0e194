package model

import (
	"time"
)

// LeaderboardEntry is the precomputed per-user leaderboard row
type LeaderboardEntry struct {
	UserID        string    `gorm:"type:uuid;primaryKey"`
	TotalBets     int       `gorm:"not null;default:0"`
	Wins          int       `gorm:"not null;default:0"`
	Losses        int       `gorm:"not null;default:0"`
	WinRate       float64   `gorm:"not null;default:0;index"`
	TotalWagered  int64     `gorm:"not null;default:0"`
	TotalWinnings int64     `gorm:"not null;default:0"`
	NetProfit     int64     `gorm:"not null;default:0;index"`
	CurrentStreak int       `gorm:"not null;default:0"`
	BestStreak    int       `gorm:"not null;default:0"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for LeaderboardEntry
func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}
