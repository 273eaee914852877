package models

import "time"

// ActivityLogEntry is an append-only audit record; writes are best-effort.
type ActivityLogEntry struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      *int64    `gorm:"column:user_id"`
	Action      string    `gorm:"column:action;not null"`
	Description string    `gorm:"column:description;not null"`
	OccurredAt  time.Time `gorm:"column:occurred_at;not null"`
	OriginIP    string    `gorm:"column:origin_ip"`
}

func (ActivityLogEntry) TableName() string { return "activity_logs" }
