package models

import "time"

// ProductSalesTotal accumulates units sold per product, upserted at settlement.
type ProductSalesTotal struct {
	ProductID  int64     `gorm:"column:product_id;primaryKey"`
	TotalSold  int       `gorm:"column:total_sold;not null;default:0"`
	LastSaleAt time.Time `gorm:"column:last_sale_at;not null"`
}

func (ProductSalesTotal) TableName() string { return "product_sales_totals" }
