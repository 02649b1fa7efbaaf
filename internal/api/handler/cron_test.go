package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linter/edu-analytics-api/internal/config"
	"github.com/linter/edu-analytics-api/internal/domain"
	"github.com/linter/edu-analytics-api/internal/scheduler"
)

type stubReporter struct {
	calls int
}

func (s *stubReporter) GetDashboardStats(start, end time.Time) (*domain.DashboardStats, error) {
	return nil, nil
}

func (s *stubReporter) GetCompleteMetrics(start, end time.Time) (*domain.CompleteMetricsReport, error) {
	s.calls++
	return &domain.CompleteMetricsReport{
		DashboardStats: &domain.DashboardStats{
			UserCount:    10,
			TotalRevenue: decimal.NewFromInt(2500),
		},
	}, nil
}

func newCronTestService(reporter *stubReporter) *scheduler.DailyReportService {
	return scheduler.NewDailyReportService(reporter, &config.Config{
		DailyReport: config.DailyReport{CronSchedule: "0 6 * * *", Enabled: false},
	})
}

func TestGetCronStatus(t *testing.T) {
	service := newCronTestService(&stubReporter{})

	r := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	w := httptest.NewRecorder()

	GetCronStatus(service).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))

	require.Contains(t, status, "daily-report")
	assert.Equal(t, false, status["daily-report"]["enabled"])
	assert.Equal(t, "0 6 * * *", status["daily-report"]["cron"])
}

func TestRunDailyReportJob(t *testing.T) {
	reporter := &stubReporter{}
	service := newCronTestService(reporter)

	r := httptest.NewRequest(http.MethodPost, "/v1/cron/daily-report/run", nil)
	w := httptest.NewRecorder()

	RunDailyReportJob(service).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, reporter.calls)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Relatório diário gerado com sucesso", response["message"])
}
