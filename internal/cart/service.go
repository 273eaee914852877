package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/Christian112b/costanzo-backend/internal/products"
	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	pkgerrors "github.com/Christian112b/costanzo-backend/pkg/errors"
	"gorm.io/gorm"
)

// Line is one cart line as served to the storefront.
type Line struct {
	ProductID      int64
	Name           string
	UnitPriceCents int64
	Quantity       int
}

// SaveLine is one line of a client-pushed cart replacement. The price is the
// snapshot the client has been holding, not a fresh catalog read.
type SaveLine struct {
	ProductID      int64
	Quantity       int
	UnitPriceCents int64
}

// Service owns cart reads and mutations outside of settlement.
type Service interface {
	AddItem(ctx context.Context, userID, productID int64) error
	ListItems(ctx context.Context, userID int64) ([]Line, error)
	ReplaceCart(ctx context.Context, userID int64, lines []SaveLine) error
}

type service struct {
	repo     Repository
	products products.Repository
}

// NewService builds the cart service.
func NewService(repo Repository, productRepo products.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, products: productRepo}, nil
}

// AddItem puts one unit of the product into the user's cart, creating the
// cart on first use and snapshotting the catalog price on the new line.
func (s *service) AddItem(ctx context.Context, userID, productID int64) error {
	product, err := s.products.FindActive(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found or inactive")
	}

	stock, err := s.products.StockFor(ctx, productID)
	if err != nil {
		return err
	}
	if stock <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product out of stock")
	}

	record, err := s.findOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	item, err := s.repo.FindItem(ctx, record.ID, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.repo.CreateItem(ctx, &models.CartItem{
			CartID:         record.ID,
			ProductID:      productID,
			Quantity:       1,
			UnitPriceCents: product.UnitPriceCents,
		})
	}
	return s.repo.UpdateItemQuantity(ctx, item.ID, item.Quantity+1)
}

// ListItems returns the cart contents; a missing cart is an empty list.
func (s *service) ListItems(ctx context.Context, userID int64) ([]Line, error) {
	record, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []Line{}, nil
		}
		return nil, err
	}

	rows, err := s.repo.ListItemsWithProducts(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, Line{
			ProductID:      row.ProductID,
			Name:           row.Name,
			UnitPriceCents: row.UnitPriceCents,
			Quantity:       row.Quantity,
		})
	}
	return lines, nil
}

// ReplaceCart swaps the cart contents wholesale with the client's copy.
func (s *service) ReplaceCart(ctx context.Context, userID int64, lines []SaveLine) error {
	for _, line := range lines {
		if line.Quantity < 1 {
			return pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be at least 1")
		}
		if line.UnitPriceCents < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "line price must not be negative")
		}
	}

	record, err := s.findOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	items := make([]models.CartItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.CartItem{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}
	return s.repo.ReplaceItems(ctx, record.ID, items)
}

func (s *service) findOrCreateCart(ctx context.Context, userID int64) (*models.Cart, error) {
	record, err := s.repo.FindByUser(ctx, userID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	record = &models.Cart{UserID: userID}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
