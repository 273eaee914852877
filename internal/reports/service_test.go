package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/enums"
)

func TestGenerateAggregates(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		summary:  SalesSummaryRow{TotalCents: 1250000, Count: 42},
		products: 130,
		coupons:  7,
		methods: []MethodRow{
			{MethodID: 1, TotalCents: 1000000, Count: 30},
			{MethodID: 6, TotalCents: 250000, Count: 12},
		},
		details: []DetailRow{
			{ID: 77, IntentRef: strPtr("pi_77"), PaidAt: time.Date(2026, 8, 27, 13, 5, 0, 0, time.UTC), MethodID: 1, AmountCents: 29000, Status: "exitoso", ItemCount: 3},
		},
		weekTotal: 300000,
	}
	svc := newTestService(t, repo)

	report := svc.Generate(context.Background(), enums.ReportPeriodMonth)

	if report.TotalSales != 12500 {
		t.Fatalf("expected total sales 12500, got %v", report.TotalSales)
	}
	if report.CompletedOrders != 42 {
		t.Fatalf("expected 42 orders, got %d", report.CompletedOrders)
	}
	if report.ProductsSold != 130 || report.CouponsUsed != 7 {
		t.Fatalf("unexpected counters %+v", report)
	}
	if len(report.PaymentMethods) != 2 {
		t.Fatalf("expected 2 method rows, got %d", len(report.PaymentMethods))
	}
	if report.PaymentMethods[0].Method != "Tarjeta" {
		t.Fatalf("unexpected method label %q", report.PaymentMethods[0].Method)
	}
	if len(report.SaleDetails) != 1 {
		t.Fatalf("expected 1 detail row, got %d", len(report.SaleDetails))
	}
	if report.SaleDetails[0].Date != "27/08/2026 13:05" {
		t.Fatalf("unexpected detail date %q", report.SaleDetails[0].Date)
	}
	if report.SaleDetails[0].Status != "exitoso" {
		t.Fatalf("unexpected detail status %q", report.SaleDetails[0].Status)
	}
	if report.SaleDetails[0].IntentRef == nil || *report.SaleDetails[0].IntentRef != "pi_77" {
		t.Fatalf("unexpected detail intent ref %v", report.SaleDetails[0].IntentRef)
	}
	if len(report.WeeklyRevenue) != 4 {
		t.Fatalf("expected 4 weekly buckets, got %d", len(report.WeeklyRevenue))
	}
	if report.WeeklyRevenue[0].Week != "Sem 1" || report.WeeklyRevenue[3].Week != "Sem 4" {
		t.Fatalf("unexpected week labels %+v", report.WeeklyRevenue)
	}
	if report.WeeklyRevenue[0].Total != 3000 {
		t.Fatalf("expected weekly total 3000, got %v", report.WeeklyRevenue[0].Total)
	}
}

func TestGenerateListsPendingPaymentsInDetail(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		details: []DetailRow{
			{ID: 91, PaidAt: time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC), MethodID: 7, AmountCents: 15000, Status: "pendiente", ItemCount: 2},
		},
	}
	svc := newTestService(t, repo)

	report := svc.Generate(context.Background(), enums.ReportPeriodToday)

	if report.TotalSales != 0 || report.CompletedOrders != 0 {
		t.Fatalf("pending payment must not count as a sale, got %+v", report)
	}
	if len(report.SaleDetails) != 1 {
		t.Fatalf("expected pending payment in detail list, got %d rows", len(report.SaleDetails))
	}
	detail := report.SaleDetails[0]
	if detail.Status != "pendiente" {
		t.Fatalf("unexpected status %q", detail.Status)
	}
	if detail.IntentRef != nil {
		t.Fatalf("offline payment must carry no intent ref, got %v", *detail.IntentRef)
	}
	if detail.Method != "SPEI" {
		t.Fatalf("unexpected method label %q", detail.Method)
	}
}

func TestGenerateFailureYieldsZeroReport(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubRepo{err: errors.New("db gone")})

	report := svc.Generate(context.Background(), enums.ReportPeriodToday)

	if report.TotalSales != 0 || report.CompletedOrders != 0 || report.ProductsSold != 0 || report.CouponsUsed != 0 {
		t.Fatalf("expected zeroed counters, got %+v", report)
	}
	if report.PaymentMethods == nil || len(report.PaymentMethods) != 0 {
		t.Fatalf("expected empty method list, got %+v", report.PaymentMethods)
	}
	if report.SaleDetails == nil || len(report.SaleDetails) != 0 {
		t.Fatalf("expected empty detail list, got %+v", report.SaleDetails)
	}
	if report.WeeklyRevenue == nil || len(report.WeeklyRevenue) != 0 {
		t.Fatalf("expected empty weekly list, got %+v", report.WeeklyRevenue)
	}
}

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, nil)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return svc
}

type stubRepo struct {
	summary   SalesSummaryRow
	products  int64
	coupons   int64
	methods   []MethodRow
	details   []DetailRow
	weekTotal int64
	err       error
}

func (s *stubRepo) SalesSummary(ctx context.Context, since time.Time) (SalesSummaryRow, error) {
	return s.summary, s.err
}
func (s *stubRepo) ProductsSold(ctx context.Context, since time.Time) (int64, error) {
	return s.products, s.err
}
func (s *stubRepo) CouponsUsed(ctx context.Context, since time.Time) (int64, error) {
	return s.coupons, s.err
}
func (s *stubRepo) MethodBreakdown(ctx context.Context, since time.Time) ([]MethodRow, error) {
	return s.methods, s.err
}
func (s *stubRepo) LatestDetail(ctx context.Context, since time.Time) ([]DetailRow, error) {
	return s.details, s.err
}
func (s *stubRepo) WeekRevenue(ctx context.Context, start, end time.Time) (int64, error) {
	return s.weekTotal, s.err
}
