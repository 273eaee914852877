package reports

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SalesSummaryRow carries the headline sums for a window.
type SalesSummaryRow struct {
	TotalCents int64 `gorm:"column:total_cents"`
	Count      int64 `gorm:"column:count"`
}

// MethodRow is one method's aggregate before labeling.
type MethodRow struct {
	MethodID   int   `gorm:"column:method_id"`
	TotalCents int64 `gorm:"column:total_cents"`
	Count      int64 `gorm:"column:count"`
}

// DetailRow is one payment joined to the cart it most plausibly settled.
type DetailRow struct {
	ID          int64     `gorm:"column:id"`
	IntentRef   *string   `gorm:"column:intent_ref"`
	PaidAt      time.Time `gorm:"column:paid_at"`
	MethodID    int       `gorm:"column:method_id"`
	AmountCents int64     `gorm:"column:amount_cents"`
	Status      string    `gorm:"column:status"`
	ItemCount   int64     `gorm:"column:item_count"`
}

// Repository runs the reporting aggregates against the payment log.
type Repository interface {
	SalesSummary(ctx context.Context, since time.Time) (SalesSummaryRow, error)
	ProductsSold(ctx context.Context, since time.Time) (int64, error)
	CouponsUsed(ctx context.Context, since time.Time) (int64, error)
	MethodBreakdown(ctx context.Context, since time.Time) ([]MethodRow, error)
	LatestDetail(ctx context.Context, since time.Time) ([]DetailRow, error)
	WeekRevenue(ctx context.Context, start, end time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SalesSummary(ctx context.Context, since time.Time) (SalesSummaryRow, error) {
	var row SalesSummaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount_cents), 0) AS total_cents, COUNT(*) AS count
		FROM payment_logs
		WHERE status = ? AND paid_at >= ?`,
		"exitoso", since).Scan(&row).Error
	return row, err
}

// ProductsSold sums cart-line quantities for carts opened inside the window.
func (r *repository) ProductsSold(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(cart_items.quantity), 0)
		FROM cart_items
		JOIN carts ON carts.id = cart_items.cart_id
		WHERE carts.created_at >= ?`,
		since).Scan(&total).Error
	return total, err
}

func (r *repository) CouponsUsed(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM payment_logs
		WHERE status = ? AND coupon_id IS NOT NULL AND paid_at >= ?`,
		"exitoso", since).Scan(&total).Error
	return total, err
}

func (r *repository) MethodBreakdown(ctx context.Context, since time.Time) ([]MethodRow, error) {
	var rows []MethodRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT method_id, COALESCE(SUM(amount_cents), 0) AS total_cents, COUNT(*) AS count
		FROM payment_logs
		WHERE status = ? AND paid_at >= ?
		GROUP BY method_id
		ORDER BY method_id`,
		"exitoso", since).Scan(&rows).Error
	return rows, err
}

// LatestDetail joins each payment to a cart the same user opened up to one
// hour before the payment, which is the closest the schema gets to an order
// line count. Pending entries are included; the status column tells them
// apart from settled ones.
func (r *repository) LatestDetail(ctx context.Context, since time.Time) ([]DetailRow, error) {
	var rows []DetailRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT payment_logs.id,
		       payment_logs.intent_ref,
		       payment_logs.paid_at,
		       payment_logs.method_id,
		       payment_logs.amount_cents,
		       payment_logs.status,
		       COALESCE(SUM(cart_items.quantity), 0) AS item_count
		FROM payment_logs
		LEFT JOIN carts
		  ON carts.user_id = payment_logs.user_id
		 AND payment_logs.paid_at BETWEEN carts.created_at AND carts.created_at + INTERVAL '1 hour'
		LEFT JOIN cart_items ON cart_items.cart_id = carts.id
		WHERE payment_logs.paid_at >= ?
		GROUP BY payment_logs.id, payment_logs.intent_ref, payment_logs.paid_at, payment_logs.method_id, payment_logs.amount_cents, payment_logs.status
		ORDER BY payment_logs.paid_at DESC
		LIMIT 50`,
		since).Scan(&rows).Error
	return rows, err
}

func (r *repository) WeekRevenue(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM payment_logs
		WHERE status = ? AND paid_at >= ? AND paid_at < ?`,
		"exitoso", start, end).Scan(&total).Error
	return total, err
}
