package models

import "time"

// CartItem is a cart line with the unit price snapshotted when it was added.
type CartItem struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CartID         int64     `gorm:"column:cart_id;not null;index"`
	ProductID      int64     `gorm:"column:product_id;not null"`
	Quantity       int       `gorm:"column:quantity;not null"`
	UnitPriceCents int64     `gorm:"column:unit_price_cents;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}
