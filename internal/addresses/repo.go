package addresses

import (
	"context"
	"errors"
	"fmt"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository resolves stored addresses; management lives in another service.
type Repository interface {
	FindByID(ctx context.Context, addressID int64) (*models.Address, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID returns nil without error when the address does not exist.
func (r *repository) FindByID(ctx context.Context, addressID int64) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).
		Where("id = ?", addressID).
		First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// FormatFull renders the single-line shipping text used on order summaries.
func FormatFull(a *models.Address) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s, %s CP:%s", a.Street, a.Neighborhood, a.City, a.State, a.PostalCode)
}
