package controllers

import (
	"net/http"

	"github.com/Christian112b/costanzo-backend/api/responses"
	"github.com/Christian112b/costanzo-backend/api/validators"
	"github.com/Christian112b/costanzo-backend/internal/coupons"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
)

type validateCouponRequest struct {
	CouponName string `json:"coupon_name" validate:"required"`
}

type couponResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// CouponValidate resolves a coupon by name for the storefront's cart view.
func CouponValidate(svc coupons.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateCouponRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		coupon, err := svc.Validate(r.Context(), req.CouponName)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, couponResponse{
			ID:    coupon.ID,
			Name:  coupon.Name,
			Type:  string(coupon.Type),
			Value: coupon.Value.InexactFloat64(),
		})
	}
}
