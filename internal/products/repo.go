package products

import (
	"context"
	"errors"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes the catalog reads the cart flow depends on. Catalog
// management itself is owned by the admin service.
type Repository interface {
	FindActive(ctx context.Context, productID int64) (*models.Product, error)
	StockFor(ctx context.Context, productID int64) (int, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindActive returns the product when it exists and is active, nil otherwise.
func (r *repository) FindActive(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", productID, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// StockFor returns the current inventory quantity, zero when no row exists.
func (r *repository) StockFor(ctx context.Context, productID int64) (int, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return item.CurrentQty, nil
}
