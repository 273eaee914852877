package models

import (
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/enums"
)

// PaymentLogEntry is an append-only record of a payment attempt; rows are never updated.
type PaymentLogEntry struct {
	ID          int64               `gorm:"column:id;primaryKey;autoIncrement"`
	IntentRef   *string             `gorm:"column:intent_ref"`
	MethodID    int                 `gorm:"column:method_id;not null"`
	AmountCents int64               `gorm:"column:amount_cents;not null"`
	UserID      *int64              `gorm:"column:user_id"`
	CouponID    *int64              `gorm:"column:coupon_id"`
	Status      enums.PaymentStatus `gorm:"column:status;not null"`
	PaidAt      time.Time           `gorm:"column:paid_at;not null"`
}

func (PaymentLogEntry) TableName() string { return "payment_logs" }
