package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Christian112b/costanzo-backend/internal/activity"
	"github.com/Christian112b/costanzo-backend/internal/addresses"
	"github.com/Christian112b/costanzo-backend/internal/cart"
	"github.com/Christian112b/costanzo-backend/internal/coupons"
	"github.com/Christian112b/costanzo-backend/internal/payments"
	"github.com/Christian112b/costanzo-backend/pkg/db"
	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"github.com/Christian112b/costanzo-backend/pkg/enums"
	pkgerrors "github.com/Christian112b/costanzo-backend/pkg/errors"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
	"github.com/Christian112b/costanzo-backend/pkg/metrics"
	"github.com/Christian112b/costanzo-backend/pkg/stripe"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type couponFinder interface {
	FindByID(ctx context.Context, couponID int64) (*models.Coupon, error)
}

type addressFinder interface {
	FindByID(ctx context.Context, addressID int64) (*models.Address, error)
}

type activityRecorder interface {
	Record(ctx context.Context, userID *int64, action, description, originIP string)
}

type intentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*stripe.PaymentIntentRef, error)
}

// SettleInput carries one settlement request.
type SettleInput struct {
	UserID      *int64
	AmountCents int64
	MethodID    int
	CouponID    *int64
	AddressID   *int64
	OriginIP    string
}

// SettleResult is the storefront-facing outcome.
type SettleResult struct {
	Status       enums.PaymentStatus
	ClientSecret string
	CloseModal   bool
}

type settlementTotals struct {
	SubtotalCents int64
	TaxCents      int64
	DiscountCents int64
	TotalCents    int64
}

// ServiceParams wires the settlement service dependencies.
type ServiceParams struct {
	Tx         txRunner
	Carts      cart.Repository
	Payments   payments.Repository
	Settlement SettlementRepository
	Coupons    couponFinder
	Addresses  addressFinder
	Activity   activityRecorder
	Gateway    intentCreator
	Metrics    *metrics.CheckoutMetrics
	Logger     *logger.Logger
	TaxRate    float64
	Currency   string
}

// Service routes a payment to the gateway or an offline method and records
// the settlement.
type Service interface {
	Settle(ctx context.Context, input SettleInput) (*SettleResult, error)
}

type service struct {
	tx         txRunner
	carts      cart.Repository
	payments   payments.Repository
	settlement SettlementRepository
	coupons    couponFinder
	addresses  addressFinder
	activity   activityRecorder
	gateway    intentCreator
	metrics    *metrics.CheckoutMetrics
	logg       *logger.Logger
	taxRate    decimal.Decimal
	currency   string
	now        func() time.Time
}

// NewService builds the settlement service. The gateway may be nil when no
// API key is configured; online settlements then fail cleanly.
func NewService(params ServiceParams) (Service, error) {
	if params.Tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if params.Carts == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.Payments == nil {
		return nil, fmt.Errorf("payments repository required")
	}
	if params.Settlement == nil {
		return nil, fmt.Errorf("settlement repository required")
	}
	if params.Coupons == nil {
		return nil, fmt.Errorf("coupon finder required")
	}
	if params.Addresses == nil {
		return nil, fmt.Errorf("address finder required")
	}
	if params.Activity == nil {
		return nil, fmt.Errorf("activity recorder required")
	}
	currency := params.Currency
	if currency == "" {
		currency = "mxn"
	}
	return &service{
		tx:         params.Tx,
		carts:      params.Carts,
		payments:   params.Payments,
		settlement: params.Settlement,
		coupons:    params.Coupons,
		addresses:  params.Addresses,
		activity:   params.Activity,
		gateway:    params.Gateway,
		metrics:    params.Metrics,
		logg:       params.Logger,
		taxRate:    decimal.NewFromFloat(params.TaxRate),
		currency:   currency,
		now:        time.Now,
	}, nil
}

// Settle processes one payment. Offline methods are recorded as pending and
// settle out of band; everything else goes through the gateway first.
func (s *service) Settle(ctx context.Context, input SettleInput) (*SettleResult, error) {
	if input.AmountCents <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be greater than zero")
	}

	method := enums.PaymentMethodID(input.MethodID)
	started := s.now()

	var (
		result *SettleResult
		err    error
	)
	if method.IsOffline() {
		result, err = s.settleOffline(ctx, input, method)
	} else {
		result, err = s.settleOnline(ctx, input, method)
	}

	status := "error"
	if err == nil {
		status = result.Status.String()
	}
	s.metrics.ObserveSettlement(method.ShortLabel(), status, s.now().Sub(started))
	return result, err
}

// settleOffline records a pending payment and releases the cart; the payment
// itself completes outside the system (transfer, cash desk, OXXO, SPEI).
func (s *service) settleOffline(ctx context.Context, input SettleInput, method enums.PaymentMethodID) (*SettleResult, error) {
	paidAt := s.now()

	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		entry := &models.PaymentLogEntry{
			MethodID:    input.MethodID,
			AmountCents: input.AmountCents,
			UserID:      input.UserID,
			CouponID:    input.CouponID,
			Status:      enums.PaymentStatusPending,
			PaidAt:      paidAt,
		}
		if err := s.payments.WithTx(tx).Insert(ctx, entry); err != nil {
			return fmt.Errorf("inserting payment log: %w", err)
		}
		if input.UserID == nil {
			return nil
		}
		_, err := s.releaseCart(ctx, tx, *input.UserID, paidAt, false)
		return err
	})
	if txErr != nil {
		s.recordFailure(ctx, input, txErr)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, txErr, "settlement failed")
	}

	s.activity.Record(ctx, input.UserID, activity.ActionPaymentCreated,
		fmt.Sprintf("Pago pendiente por %s: %.2f %s", method.Label(), centsToUnits(input.AmountCents), s.currencyLabel()),
		input.OriginIP)

	return &SettleResult{Status: enums.PaymentStatusPending, CloseModal: true}, nil
}

// settleOnline charges through the gateway, then persists the settlement and
// assembles the order summary.
func (s *service) settleOnline(ctx context.Context, input SettleInput, method enums.PaymentMethodID) (*SettleResult, error) {
	if s.gateway == nil {
		return nil, pkgerrors.New(pkgerrors.CodePaymentGateway, "payment gateway unavailable")
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, input.AmountCents, s.currency)
	if err != nil {
		s.metrics.IncGatewayFailure()
		s.recordFailure(ctx, input, err)
		return nil, pkgerrors.Wrap(pkgerrors.CodePaymentGateway, err, err.Error())
	}

	paidAt := s.now()
	var summary *OrderSummary

	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		entry := &models.PaymentLogEntry{
			IntentRef:   &intent.ID,
			MethodID:    input.MethodID,
			AmountCents: input.AmountCents,
			UserID:      input.UserID,
			CouponID:    input.CouponID,
			Status:      enums.PaymentStatusSuccessful,
			PaidAt:      paidAt,
		}
		if err := s.payments.WithTx(tx).Insert(ctx, entry); err != nil {
			return fmt.Errorf("inserting payment log: %w", err)
		}
		if input.UserID == nil {
			return nil
		}
		items, err := s.releaseCart(ctx, tx, *input.UserID, paidAt, true)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		built := s.buildOrderSummary(ctx, input, method, paidAt, items)
		summary = &built
		return nil
	})
	if txErr != nil {
		s.recordFailure(ctx, input, txErr)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, txErr, "settlement failed")
	}

	s.activity.Record(ctx, input.UserID, activity.ActionPaymentCreated,
		fmt.Sprintf("Pago exitoso por %s: %.2f %s", method.Label(), centsToUnits(input.AmountCents), s.currencyLabel()),
		input.OriginIP)
	s.logSummary(ctx, summary)

	return &SettleResult{
		Status:       enums.PaymentStatusSuccessful,
		ClientSecret: intent.ClientSecret,
		CloseModal:   true,
	}, nil
}

// releaseCart decrements stock and deletes the user's cart; confirmed sales
// also bump the per-product totals. A user without a cart is not an error,
// the settlement stands alone.
func (s *service) releaseCart(ctx context.Context, tx *gorm.DB, userID int64, soldAt time.Time, recordSales bool) ([]cart.ItemWithProduct, error) {
	carts := s.carts.WithTx(tx)
	record, err := carts.FindByUser(ctx, userID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	items, err := carts.ListItemsWithProducts(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("loading cart items: %w", err)
	}

	settlement := s.settlement.WithTx(tx)
	for _, item := range items {
		if err := settlement.DecrementInventory(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("decrementing inventory for product %d: %w", item.ProductID, err)
		}
		if !recordSales {
			continue
		}
		if err := settlement.UpsertSalesTotal(ctx, item.ProductID, item.Quantity, soldAt); err != nil {
			return nil, fmt.Errorf("recording sale for product %d: %w", item.ProductID, err)
		}
	}

	if err := carts.Delete(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("deleting cart: %w", err)
	}
	return items, nil
}

// buildOrderSummary computes the totals from the settled lines and renders
// the confirmation payload. Coupon and address lookups are soft: a missing
// coupon means zero discount, a missing address falls back to the
// placeholder.
func (s *service) buildOrderSummary(ctx context.Context, input SettleInput, method enums.PaymentMethodID, paidAt time.Time, items []cart.ItemWithProduct) OrderSummary {
	var subtotal int64
	for _, item := range items {
		subtotal += item.UnitPriceCents * int64(item.Quantity)
	}

	totals := settlementTotals{SubtotalCents: subtotal}
	totals.TaxCents = decimal.NewFromInt(subtotal).Mul(s.taxRate).Round(0).IntPart()

	var discountInfo string
	if input.CouponID != nil {
		coupon, err := s.coupons.FindByID(ctx, *input.CouponID)
		if err == nil && coupon != nil {
			totals.DiscountCents = coupons.DiscountCents(coupon, subtotal)
			discountInfo = coupons.DiscountInfo(coupon)
		}
	}
	totals.TotalCents = totals.SubtotalCents + totals.TaxCents - totals.DiscountCents

	var addressText string
	if input.AddressID != nil {
		address, err := s.addresses.FindByID(ctx, *input.AddressID)
		if err == nil && address != nil {
			addressText = addresses.FormatFull(address)
		}
	}

	return buildSummary(paidAt, items, totals, discountInfo, addressText, method)
}

func (s *service) recordFailure(ctx context.Context, input SettleInput, cause error) {
	s.activity.Record(ctx, input.UserID, activity.ActionPaymentError,
		fmt.Sprintf("Error al crear pago: %v", cause), input.OriginIP)
}

func (s *service) logSummary(ctx context.Context, summary *OrderSummary) {
	if summary == nil || s.logg == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	s.logg.Info(s.logg.WithField(ctx, "order_summary", json.RawMessage(payload)), "order settled")
}

func (s *service) currencyLabel() string {
	return strings.ToUpper(s.currency)
}
