package handler

import (
	"net/http"

	"github.com/linter/edu-analytics-api/internal/api/handler/router"
	"github.com/linter/edu-analytics-api/internal/scheduler"
	"github.com/linter/edu-analytics-api/internal/usecases/audiencing"
	"github.com/linter/edu-analytics-api/internal/usecases/ranking"
	"github.com/linter/edu-analytics-api/internal/usecases/reporting"
	"github.com/linter/edu-analytics-api/internal/usecases/retaining"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(
	reportService reporting.Reporter,
	audienceService audiencing.AudienceMeter,
	retentionService retaining.RetentionMeter,
	rankingService ranking.ProductRanker,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/report",
			Method:  http.MethodGet,
			Handler: GetCompleteReport(reportService),
		},
		{
			Path:    "/v1/metrics/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(reportService),
		},
		{
			Path:    "/v1/metrics/audience",
			Method:  http.MethodGet,
			Handler: GetAudienceMetrics(audienceService),
		},
		{
			Path:    "/v1/metrics/retention/trend",
			Method:  http.MethodGet,
			Handler: GetRetentionTrend(retentionService),
		},
		{
			Path:    "/v1/metrics/products",
			Method:  http.MethodGet,
			Handler: GetProductPerformance(rankingService),
		},
	}
}

func CronJobs(dailyReportService *scheduler.DailyReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/daily-report/run",
			Method:  http.MethodPost,
			Handler: RunDailyReportJob(dailyReportService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(dailyReportService),
		},
	}
}
