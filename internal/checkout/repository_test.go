package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSettlementTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.InventoryItem{}, &models.ProductSalesTotal{}))
	return db
}

func TestDecrementInventoryTouchesUpdatedAt(t *testing.T) {
	t.Parallel()

	db := setupSettlementTestDB(t)
	repo := NewSettlementRepository(db)

	stale := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, db.Create(&models.InventoryItem{ProductID: 11, CurrentQty: 10, UpdatedAt: stale}).Error)

	require.NoError(t, repo.DecrementInventory(context.Background(), 11, 3))

	var item models.InventoryItem
	require.NoError(t, db.First(&item, "product_id = ?", 11).Error)
	assert.Equal(t, 7, item.CurrentQty)
	assert.True(t, item.UpdatedAt.After(stale), "updated_at must move on decrement, got %v", item.UpdatedAt)
}

func TestUpsertSalesTotalAccumulates(t *testing.T) {
	t.Parallel()

	db := setupSettlementTestDB(t)
	repo := NewSettlementRepository(db)

	first := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	require.NoError(t, repo.UpsertSalesTotal(context.Background(), 11, 2, first))
	require.NoError(t, repo.UpsertSalesTotal(context.Background(), 11, 3, second))

	var total models.ProductSalesTotal
	require.NoError(t, db.First(&total, "product_id = ?", 11).Error)
	assert.Equal(t, 5, total.TotalSold)
	assert.Equal(t, second.Unix(), total.LastSaleAt.Unix())
}
