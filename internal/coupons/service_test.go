package coupons

import (
	"context"
	"testing"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"github.com/Christian112b/costanzo-backend/pkg/enums"
	pkgerrors "github.com/Christian112b/costanzo-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func TestValidateEmptyName(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepo{})
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	_, err = svc.Validate(context.Background(), "   ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateMiss(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepo{})
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	_, err = svc.Validate(context.Background(), "NADA")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestValidateHit(t *testing.T) {
	t.Parallel()

	coupon := &models.Coupon{ID: 1, Name: "VERANO10", Type: enums.CouponTypePercentage, Value: decimal.NewFromInt(10), Active: true}
	svc, err := NewService(&stubRepo{coupon: coupon})
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	got, err := svc.Validate(context.Background(), "verano10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != coupon {
		t.Fatal("expected stubbed coupon back")
	}
}

func TestDiscountCents(t *testing.T) {
	t.Parallel()

	percentage := &models.Coupon{Type: enums.CouponTypePercentage, Value: decimal.NewFromInt(10)}
	if got := DiscountCents(percentage, 25000); got != 2500 {
		t.Fatalf("expected 2500 for 10%% of 25000, got %d", got)
	}

	fixed := &models.Coupon{Type: enums.CouponTypeFixed, Value: decimal.NewFromInt(50)}
	if got := DiscountCents(fixed, 25000); got != 5000 {
		t.Fatalf("expected 5000 for fixed 50, got %d", got)
	}

	if got := DiscountCents(nil, 25000); got != 0 {
		t.Fatalf("expected 0 for nil coupon, got %d", got)
	}
}

type stubRepo struct {
	coupon *models.Coupon
}

func (s *stubRepo) FindActiveByName(ctx context.Context, name string, now time.Time) (*models.Coupon, error) {
	return s.coupon, nil
}

func (s *stubRepo) FindByID(ctx context.Context, couponID int64) (*models.Coupon, error) {
	return s.coupon, nil
}
