package models

import (
	"time"
)

// LogEntry is an append-only audit record of a state-changing action. Entries
// are never updated or deleted; they carry no organization id of their own
// and are scoped by joining through the acting user.
type LogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Action    string    `gorm:"type:varchar(255);not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (l *LogEntry) TableName() string {
	return "logs"
}

// LogView is the read model returned by the log listing: the entry plus the
// acting user's username.
type LogView struct {
	ID        uint      `gorm:"column:id" json:"id"`
	Action    string    `gorm:"column:action" json:"action"`
	Details   string    `gorm:"column:details" json:"details"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	User      string    `gorm:"column:user" json:"user"`
}
