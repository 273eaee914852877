package coupons

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"github.com/Christian112b/costanzo-backend/pkg/enums"
	pkgerrors "github.com/Christian112b/costanzo-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Service validates coupons for the storefront.
type Service interface {
	Validate(ctx context.Context, name string) (*models.Coupon, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds the coupon service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("coupon repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// Validate resolves an active in-window coupon by name.
func (s *service) Validate(ctx context.Context, name string) (*models.Coupon, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon name required")
	}

	coupon, err := s.repo.FindActiveByName(ctx, name, s.now())
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "coupon not found or not valid")
	}
	return coupon, nil
}

// DiscountCents applies the coupon to a subtotal expressed in minor units.
// Percentage coupons take their share of the subtotal; fixed coupons carry a
// flat amount in currency units.
func DiscountCents(coupon *models.Coupon, subtotalCents int64) int64 {
	if coupon == nil {
		return 0
	}
	switch coupon.Type {
	case enums.CouponTypePercentage:
		return decimal.NewFromInt(subtotalCents).
			Mul(coupon.Value).
			Div(oneHundred).
			Round(0).
			IntPart()
	default:
		return coupon.Value.Mul(oneHundred).Round(0).IntPart()
	}
}

// DiscountInfo renders the label shown next to the discount line.
func DiscountInfo(coupon *models.Coupon) string {
	if coupon == nil {
		return ""
	}
	if coupon.Type == enums.CouponTypePercentage {
		return fmt.Sprintf("%s (%s%%)", coupon.Name, coupon.Value.String())
	}
	return coupon.Name
}
