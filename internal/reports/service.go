package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/enums"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
)

const weeklyBuckets = 4

// Service generates dashboard reports. Generate never fails: the dashboard
// renders zeros rather than an error page.
type Service interface {
	Generate(ctx context.Context, period enums.ReportPeriod) Report
}

type service struct {
	repo Repository
	logg *logger.Logger
	now  func() time.Time
}

// NewService builds the reporting service.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	return &service{repo: repo, logg: logg, now: time.Now}, nil
}

func (s *service) Generate(ctx context.Context, period enums.ReportPeriod) Report {
	now := s.now()
	since := StartFor(period, now)

	summary, err := s.repo.SalesSummary(ctx, since)
	if err != nil {
		return s.fallback(ctx, "sales summary", err)
	}
	productsSold, err := s.repo.ProductsSold(ctx, since)
	if err != nil {
		return s.fallback(ctx, "products sold", err)
	}
	couponsUsed, err := s.repo.CouponsUsed(ctx, since)
	if err != nil {
		return s.fallback(ctx, "coupons used", err)
	}
	methodRows, err := s.repo.MethodBreakdown(ctx, since)
	if err != nil {
		return s.fallback(ctx, "method breakdown", err)
	}
	detailRows, err := s.repo.LatestDetail(ctx, since)
	if err != nil {
		return s.fallback(ctx, "sale details", err)
	}
	weekly, err := s.weeklyRevenue(ctx, now)
	if err != nil {
		return s.fallback(ctx, "weekly revenue", err)
	}

	report := Report{
		TotalSales:      centsToUnits(summary.TotalCents),
		CompletedOrders: summary.Count,
		ProductsSold:    productsSold,
		CouponsUsed:     couponsUsed,
		PaymentMethods:  make([]MethodBreakdown, 0, len(methodRows)),
		SaleDetails:     make([]SaleDetail, 0, len(detailRows)),
		WeeklyRevenue:   weekly,
	}
	for _, row := range methodRows {
		report.PaymentMethods = append(report.PaymentMethods, MethodBreakdown{
			Method: enums.PaymentMethodID(row.MethodID).ShortLabel(),
			Total:  centsToUnits(row.TotalCents),
			Count:  row.Count,
		})
	}
	for _, row := range detailRows {
		report.SaleDetails = append(report.SaleDetails, SaleDetail{
			ID:        row.ID,
			IntentRef: row.IntentRef,
			Date:      row.PaidAt.Format("02/01/2006 15:04"),
			Method:    enums.PaymentMethodID(row.MethodID).ShortLabel(),
			Amount:    centsToUnits(row.AmountCents),
			Status:    row.Status,
			ItemCount: row.ItemCount,
		})
	}
	return report
}

func (s *service) weeklyRevenue(ctx context.Context, now time.Time) ([]WeekRevenue, error) {
	starts := weekStarts(now, weeklyBuckets)
	buckets := make([]WeekRevenue, 0, len(starts))
	for i, start := range starts {
		total, err := s.repo.WeekRevenue(ctx, start, start.AddDate(0, 0, 7))
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, WeekRevenue{
			Week:  fmt.Sprintf("Sem %d", i+1),
			Total: centsToUnits(total),
		})
	}
	return buckets, nil
}

func (s *service) fallback(ctx context.Context, stage string, err error) Report {
	if s.logg != nil {
		s.logg.Error(ctx, fmt.Sprintf("report %s query failed", stage), err)
	}
	return zeroReport()
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
