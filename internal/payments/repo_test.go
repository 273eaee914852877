package payments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"github.com/Christian112b/costanzo-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPaymentsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PaymentLogEntry{}))
	return db
}

func TestInsertPaymentLogEntry(t *testing.T) {
	t.Parallel()

	db := setupPaymentsTestDB(t)
	repo := NewRepository(db)

	intentRef := "pi_123"
	userID := int64(7)
	couponID := int64(3)
	entry := &models.PaymentLogEntry{
		IntentRef:   &intentRef,
		MethodID:    1,
		AmountCents: 29000,
		UserID:      &userID,
		CouponID:    &couponID,
		Status:      enums.PaymentStatusSuccessful,
		PaidAt:      time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), entry))
	assert.NotZero(t, entry.ID)

	var stored models.PaymentLogEntry
	require.NoError(t, db.First(&stored, entry.ID).Error)
	assert.Equal(t, enums.PaymentStatusSuccessful, stored.Status)
	require.NotNil(t, stored.IntentRef)
	assert.Equal(t, "pi_123", *stored.IntentRef)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, userID, *stored.UserID)
	require.NotNil(t, stored.CouponID)
	assert.Equal(t, couponID, *stored.CouponID)
}

func TestInsertOfflineEntryKeepsNilIntent(t *testing.T) {
	t.Parallel()

	db := setupPaymentsTestDB(t)
	repo := NewRepository(db)

	entry := &models.PaymentLogEntry{
		MethodID:    int(enums.PaymentMethodSpei),
		AmountCents: 15000,
		Status:      enums.PaymentStatusPending,
		PaidAt:      time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), entry))

	var stored models.PaymentLogEntry
	require.NoError(t, db.First(&stored, entry.ID).Error)
	assert.Nil(t, stored.IntentRef)
	assert.Nil(t, stored.UserID)
	assert.Equal(t, enums.PaymentStatusPending, stored.Status)
}

func TestWithTxScopesRepository(t *testing.T) {
	t.Parallel()

	db := setupPaymentsTestDB(t)
	repo := NewRepository(db)

	tx := db.Begin()
	require.NoError(t, tx.Error)

	entry := &models.PaymentLogEntry{
		MethodID:    int(enums.PaymentMethodOxxo),
		AmountCents: 5000,
		Status:      enums.PaymentStatusPending,
		PaidAt:      time.Now(),
	}
	require.NoError(t, repo.WithTx(tx).Insert(context.Background(), entry))
	require.NoError(t, tx.Rollback().Error)

	var count int64
	require.NoError(t, db.Model(&models.PaymentLogEntry{}).Count(&count).Error)
	assert.Zero(t, count, "rolled back insert must not persist")
}
