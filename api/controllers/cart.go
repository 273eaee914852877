package controllers

import (
	"net/http"

	"github.com/Christian112b/costanzo-backend/api/middleware"
	"github.com/Christian112b/costanzo-backend/api/responses"
	"github.com/Christian112b/costanzo-backend/api/validators"
	"github.com/Christian112b/costanzo-backend/internal/cart"
	pkgerrors "github.com/Christian112b/costanzo-backend/pkg/errors"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
)

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type cartLineResponse struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type saveLineRequest struct {
	ProductID      int64 `json:"product_id" validate:"required,gt=0"`
	Quantity       int   `json:"quantity" validate:"required,min=1"`
	UnitPriceCents int64 `json:"unit_price_cents" validate:"min=0"`
}

type replaceCartRequest struct {
	Items []saveLineRequest `json:"items" validate:"dive"`
}

// CartAddItem adds one unit of a product to the caller's cart.
func CartAddItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var req addItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AddItem(r.Context(), *userID, req.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}

// CartListItems serves the caller's cart lines; no cart means an empty list.
func CartListItems(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		lines, err := svc.ListItems(r.Context(), *userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload := make([]cartLineResponse, 0, len(lines))
		for _, line := range lines {
			payload = append(payload, cartLineResponse{
				ProductID:      line.ProductID,
				Name:           line.Name,
				UnitPriceCents: line.UnitPriceCents,
				Quantity:       line.Quantity,
			})
		}
		responses.WriteSuccess(w, payload)
	}
}

// CartReplace overwrites the caller's cart with the client-held lines.
func CartReplace(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var req replaceCartRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := make([]cart.SaveLine, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, cart.SaveLine{
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
			})
		}

		if err := svc.ReplaceCart(r.Context(), *userID, lines); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}
