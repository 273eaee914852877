package models

import "time"

// User identifies a registered shopper; auth issuance lives outside this service.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string    `gorm:"column:email;not null;uniqueIndex"`
	Name      string    `gorm:"column:name;not null"`
	Role      string    `gorm:"column:role;not null;default:'customer'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
