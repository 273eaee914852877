package controllers

import (
	"net/http"

	"github.com/Christian112b/costanzo-backend/api/responses"
	"github.com/Christian112b/costanzo-backend/api/validators"
	"github.com/Christian112b/costanzo-backend/internal/reports"
	"github.com/Christian112b/costanzo-backend/pkg/enums"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
)

// ReportsGet serves the sales dashboard for the requested period. Unknown
// periods fall back to the trailing-30-day window.
func ReportsGet(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := enums.ParseReportPeriod(validators.QueryString(r, "period", ""))
		responses.WriteSuccess(w, svc.Generate(r.Context(), period))
	}
}
