package coupons

import (
	"context"
	"errors"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository looks coupons up by name at validation time and by id at
// settlement time. Both return nil without error on a miss.
type Repository interface {
	FindActiveByName(ctx context.Context, name string, now time.Time) (*models.Coupon, error)
	FindByID(ctx context.Context, couponID int64) (*models.Coupon, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindActiveByName matches case-insensitively and only inside the validity
// window; a null boundary leaves that side unbounded.
func (r *repository) FindActiveByName(ctx context.Context, name string, now time.Time) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Where("active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *repository) FindByID(ctx context.Context, couponID int64) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).
		Where("id = ?", couponID).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}
