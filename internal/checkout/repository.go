package checkout

import (
	"context"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettlementRepository performs the stock and sales mutations that accompany
// a settled payment.
type SettlementRepository interface {
	WithTx(tx *gorm.DB) SettlementRepository
	DecrementInventory(ctx context.Context, productID int64, quantity int) error
	UpsertSalesTotal(ctx context.Context, productID int64, quantity int, soldAt time.Time) error
}

type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository binds the repository to the provided DB handle.
func NewSettlementRepository(db *gorm.DB) SettlementRepository {
	return &settlementRepository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *settlementRepository) WithTx(tx *gorm.DB) SettlementRepository {
	if tx == nil {
		return r
	}
	return &settlementRepository{db: tx}
}

// DecrementInventory subtracts the sold quantity from the product's stock.
func (r *settlementRepository) DecrementInventory(ctx context.Context, productID int64, quantity int) error {
	return r.db.WithContext(ctx).
		Exec("UPDATE inventory_items SET current_qty = current_qty - ?, updated_at = CURRENT_TIMESTAMP WHERE product_id = ?", quantity, productID).
		Error
}

// UpsertSalesTotal accumulates the per-product lifetime sales counter.
func (r *settlementRepository) UpsertSalesTotal(ctx context.Context, productID int64, quantity int, soldAt time.Time) error {
	record := models.ProductSalesTotal{
		ProductID:  productID,
		TotalSold:  quantity,
		LastSaleAt: soldAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"total_sold":   gorm.Expr("product_sales_totals.total_sold + ?", quantity),
				"last_sale_at": soldAt,
			}),
		}).
		Create(&record).Error
}
