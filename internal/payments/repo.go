package payments

import (
	"context"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository appends payment log rows; entries are never updated in place.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Insert(ctx context.Context, entry *models.PaymentLogEntry) error
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

func (r *repository) Insert(ctx context.Context, entry *models.PaymentLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
