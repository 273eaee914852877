package models

import (
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Coupon is a named discount with an optional activation window.
// A nil window boundary leaves that side unbounded.
type Coupon struct {
	ID       int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string           `gorm:"column:name;not null"`
	Type     enums.CouponType `gorm:"column:type;not null"`
	Value    decimal.Decimal  `gorm:"column:value;type:numeric(10,2);not null"`
	Active   bool             `gorm:"column:active;not null;default:true"`
	StartsAt *time.Time       `gorm:"column:starts_at"`
	EndsAt   *time.Time       `gorm:"column:ends_at"`
}
