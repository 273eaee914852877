package models

import "time"

// InventoryItem tracks the current quantity per product.
type InventoryItem struct {
	ProductID  int64     `gorm:"column:product_id;primaryKey"`
	CurrentQty int       `gorm:"column:current_qty;not null;default:0"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
