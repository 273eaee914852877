package enums

// ReportPeriod is the aggregation window keyword the reporting endpoint accepts.
type ReportPeriod string

const (
	ReportPeriodToday ReportPeriod = "hoy"
	ReportPeriodWeek  ReportPeriod = "semana"
	ReportPeriodMonth ReportPeriod = "mes"
	ReportPeriodYear  ReportPeriod = "anio"
	// ReportPeriodDefault covers the trailing 30 days and is the fallback for
	// unrecognized keywords.
	ReportPeriodDefault ReportPeriod = "30d"
)

// ParseReportPeriod maps raw input to a known period. An absent param means
// the current month; unknown keywords fall back to the trailing 30 days.
func ParseReportPeriod(value string) ReportPeriod {
	if value == "" {
		return ReportPeriodMonth
	}
	switch ReportPeriod(value) {
	case ReportPeriodToday, ReportPeriodWeek, ReportPeriodMonth, ReportPeriodYear:
		return ReportPeriod(value)
	default:
		return ReportPeriodDefault
	}
}
