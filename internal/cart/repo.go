package cart

import (
	"context"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ItemWithProduct joins a cart line to its product's display data.
type ItemWithProduct struct {
	ProductID      int64  `gorm:"column:product_id"`
	Name           string `gorm:"column:name"`
	UnitPriceCents int64  `gorm:"column:unit_price_cents"`
	Quantity       int    `gorm:"column:quantity"`
}

// Repository manages carts and their line items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByUser(ctx context.Context, userID int64) (*models.Cart, error)
	Create(ctx context.Context, record *models.Cart) error
	FindItem(ctx context.Context, cartID, productID int64) (*models.CartItem, error)
	CreateItem(ctx context.Context, item *models.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error
	ReplaceItems(ctx context.Context, cartID int64, items []models.CartItem) error
	ListItemsWithProducts(ctx context.Context, cartID int64) ([]ItemWithProduct, error)
	Delete(ctx context.Context, cartID int64) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// FindByUser loads the user's cart with its items. Missing carts surface
// gorm.ErrRecordNotFound so callers can treat them as empty.
func (r *repository) FindByUser(ctx context.Context, userID int64) (*models.Cart, error) {
	var record models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) Create(ctx context.Context, record *models.Cart) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindItem(ctx context.Context, cartID, productID int64) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// ReplaceItems deletes the existing lines and inserts the provided ones.
func (r *repository) ReplaceItems(ctx context.Context, cartID int64, items []models.CartItem) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].CartID = cartID
	}
	return tx.Create(&items).Error
}

func (r *repository) ListItemsWithProducts(ctx context.Context, cartID int64) ([]ItemWithProduct, error) {
	var rows []ItemWithProduct
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.product_id, products.name, cart_items.unit_price_cents, cart_items.quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes the cart and its items.
func (r *repository) Delete(ctx context.Context, cartID int64) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", cartID).Delete(&models.Cart{}).Error
}
