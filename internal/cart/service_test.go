package cart

import (
	"context"
	"testing"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	pkgerrors "github.com/Christian112b/costanzo-backend/pkg/errors"
	"gorm.io/gorm"
)

func TestAddItemProductNotFound(t *testing.T) {
	t.Parallel()

	svc := newStubService(t, &stubRepo{}, &stubProductRepo{})

	err := svc.AddItem(context.Background(), 1, 42)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestAddItemOutOfStock(t *testing.T) {
	t.Parallel()

	svc := newStubService(t, &stubRepo{}, &stubProductRepo{
		product: &models.Product{ID: 42, Name: "Tamal", UnitPriceCents: 5000, Active: true},
		stock:   0,
	})

	err := svc.AddItem(context.Background(), 1, 42)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddItemCreatesCartAndLine(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	svc := newStubService(t, repo, &stubProductRepo{
		product: &models.Product{ID: 42, Name: "Tamal", UnitPriceCents: 5000, Active: true},
		stock:   12,
	})

	if err := svc.AddItem(context.Background(), 1, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.cartCreated {
		t.Fatal("expected lazy cart creation")
	}
	if repo.createdItem == nil {
		t.Fatal("expected a line to be created")
	}
	if repo.createdItem.Quantity != 1 || repo.createdItem.UnitPriceCents != 5000 {
		t.Fatalf("unexpected line %+v", repo.createdItem)
	}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		record: &models.Cart{ID: 3, UserID: 1},
		item:   &models.CartItem{ID: 9, CartID: 3, ProductID: 42, Quantity: 2, UnitPriceCents: 5000},
	}
	svc := newStubService(t, repo, &stubProductRepo{
		product: &models.Product{ID: 42, Name: "Tamal", UnitPriceCents: 6000, Active: true},
		stock:   12,
	})

	if err := svc.AddItem(context.Background(), 1, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updatedQty != 3 {
		t.Fatalf("expected quantity bumped to 3, got %d", repo.updatedQty)
	}
	if repo.createdItem != nil {
		t.Fatal("existing line must not be duplicated")
	}
}

func TestListItemsMissingCartIsEmpty(t *testing.T) {
	t.Parallel()

	svc := newStubService(t, &stubRepo{}, &stubProductRepo{})

	lines, err := svc.ListItems(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty list, got %d lines", len(lines))
	}
}

func TestReplaceCartRejectsBadLines(t *testing.T) {
	t.Parallel()

	svc := newStubService(t, &stubRepo{}, &stubProductRepo{})

	err := svc.ReplaceCart(context.Background(), 1, []SaveLine{{ProductID: 42, Quantity: 0, UnitPriceCents: 100}})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func newStubService(t *testing.T, repo Repository, productRepo *stubProductRepo) Service {
	t.Helper()
	svc, err := NewService(repo, productRepo)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return svc
}

type stubRepo struct {
	record      *models.Cart
	item        *models.CartItem
	cartCreated bool
	createdItem *models.CartItem
	updatedQty  int
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }
func (s *stubRepo) FindByUser(ctx context.Context, userID int64) (*models.Cart, error) {
	if s.record == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.record, nil
}
func (s *stubRepo) Create(ctx context.Context, record *models.Cart) error {
	s.cartCreated = true
	record.ID = 1
	s.record = record
	return nil
}
func (s *stubRepo) FindItem(ctx context.Context, cartID, productID int64) (*models.CartItem, error) {
	if s.item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.item, nil
}
func (s *stubRepo) CreateItem(ctx context.Context, item *models.CartItem) error {
	s.createdItem = item
	return nil
}
func (s *stubRepo) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	s.updatedQty = quantity
	return nil
}
func (s *stubRepo) ReplaceItems(ctx context.Context, cartID int64, items []models.CartItem) error {
	return nil
}
func (s *stubRepo) ListItemsWithProducts(ctx context.Context, cartID int64) ([]ItemWithProduct, error) {
	return nil, nil
}
func (s *stubRepo) Delete(ctx context.Context, cartID int64) error { return nil }

type stubProductRepo struct {
	product *models.Product
	stock   int
}

func (s *stubProductRepo) FindActive(ctx context.Context, productID int64) (*models.Product, error) {
	return s.product, nil
}
func (s *stubProductRepo) StockFor(ctx context.Context, productID int64) (int, error) {
	return s.stock, nil
}
