package controllers

import (
	"net/http"

	"github.com/Christian112b/costanzo-backend/api/middleware"
	"github.com/Christian112b/costanzo-backend/api/responses"
	"github.com/Christian112b/costanzo-backend/api/validators"
	"github.com/Christian112b/costanzo-backend/internal/checkout"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
)

type paymentIntentRequest struct {
	AmountCents int64  `json:"amount" validate:"required,gt=0"`
	MethodID    int    `json:"method_id" validate:"required"`
	CouponID    *int64 `json:"coupon_id" validate:"omitempty,gt=0"`
	AddressID   *int64 `json:"address_id" validate:"omitempty,gt=0"`
}

type paymentIntentResponse struct {
	OK           bool   `json:"ok"`
	Status       string `json:"status"`
	ClientSecret string `json:"clientSecret,omitempty"`
	CloseModal   bool   `json:"closeModal"`
}

// CheckoutPaymentIntent settles a payment. Anonymous callers are allowed;
// their payments carry no user attribution and leave no cart to clear.
func CheckoutPaymentIntent(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paymentIntentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Settle(r.Context(), checkout.SettleInput{
			UserID:      middleware.UserIDFromContext(r.Context()),
			AmountCents: req.AmountCents,
			MethodID:    req.MethodID,
			CouponID:    req.CouponID,
			AddressID:   req.AddressID,
			OriginIP:    middleware.ClientIPFromContext(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, paymentIntentResponse{
			OK:           true,
			Status:       result.Status.String(),
			ClientSecret: result.ClientSecret,
			CloseModal:   result.CloseModal,
		})
	}
}
