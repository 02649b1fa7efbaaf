package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linter/edu-analytics-api/infrastructure/repository/mocks"
	"github.com/linter/edu-analytics-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dublês simples dos motores, registrando a granularidade recebida.

type stubAudienceMeter struct {
	granularity domain.Granularity
	metrics     domain.AudienceMetrics
	err         error
}

func (s *stubAudienceMeter) GetAudienceMetrics(start, end time.Time, granularity domain.Granularity) (domain.AudienceMetrics, error) {
	s.granularity = granularity
	return s.metrics, s.err
}

type stubRetentionMeter struct {
	trendGranularity domain.Granularity
	rate             float64
	trend            domain.RetentionTrend
}

func (s *stubRetentionMeter) GetRetentionRate(end time.Time) (float64, error) {
	return s.rate, nil
}

func (s *stubRetentionMeter) GetRetentionTrend(start, end time.Time, granularity domain.Granularity) (domain.RetentionTrend, error) {
	s.trendGranularity = granularity
	return s.trend, nil
}

type stubFinancialMeter struct {
	ltv, cac, arppu decimal.Decimal
}

func (s *stubFinancialMeter) GetLTV() (decimal.Decimal, error) { return s.ltv, nil }

func (s *stubFinancialMeter) GetCAC(start, end time.Time) (decimal.Decimal, error) {
	return s.cac, nil
}

func (s *stubFinancialMeter) GetARPPU(start, end time.Time) (decimal.Decimal, error) {
	return s.arppu, nil
}

type stubProductRanker struct {
	performances []*domain.ProductPerformance
}

func (s *stubProductRanker) GetProductPerformance(start, end time.Time) ([]*domain.ProductPerformance, error) {
	return s.performances, nil
}

func TestSelectGranularity(t *testing.T) {
	start := day(2024, 1, 1)

	tests := []struct {
		name     string
		end      time.Time
		expected domain.Granularity
	}{
		{"10 dias usam granularidade diária", start.AddDate(0, 0, 10), domain.GranularityDay},
		{"29 dias ainda são diários", start.AddDate(0, 0, 29), domain.GranularityDay},
		{"30 dias passam a semanal", start.AddDate(0, 0, 30), domain.GranularityWeek},
		{"180 dias continuam semanais", start.AddDate(0, 0, 180), domain.GranularityWeek},
		{"181 dias passam a mensal", start.AddDate(0, 0, 181), domain.GranularityMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, selectGranularity(start, tt.end))
		})
	}
}

func TestGetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := day(2024, 1, 1)
	end := day(2024, 2, 1)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCourseRepo := mocks.NewMockCourseRepository(ctrl)

	mockUserRepo.EXPECT().CountByLastActivityBetween(start, end).Return(int64(320), nil)
	mockCourseRepo.EXPECT().Count().Return(int64(16), nil)
	mockOrderRepo.EXPECT().CountByOrderDateBetween(start, end).Return(int64(85), nil)
	mockOrderRepo.EXPECT().GetTotalRevenueBetween(start, end).Return(decimal.NewFromFloat(21341.50), nil)

	service := NewService(nil, nil, nil, nil, mockUserRepo, mockOrderRepo, mockCourseRepo)

	stats, err := service.GetDashboardStats(start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(320), stats.UserCount)
	assert.Equal(t, int64(16), stats.CourseCount)
	assert.Equal(t, int64(85), stats.OrderCount)
	assert.Equal(t, "21341.50", stats.TotalRevenue.StringFixed(2))
}

func TestGetCompleteMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := day(2024, 1, 1)
	end := start.AddDate(0, 0, 45) // semanal

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCourseRepo := mocks.NewMockCourseRepository(ctrl)

	mockUserRepo.EXPECT().CountByLastActivityBetween(start, end).Return(int64(100), nil)
	mockCourseRepo.EXPECT().Count().Return(int64(16), nil)
	mockOrderRepo.EXPECT().CountByOrderDateBetween(start, end).Return(int64(40), nil)
	mockOrderRepo.EXPECT().GetTotalRevenueBetween(start, end).Return(decimal.NewFromInt(12000), nil)

	audience := &stubAudienceMeter{metrics: domain.AudienceMetrics{
		domain.MetricDAU: {"2024-01-01": 10},
		domain.MetricWAU: {"2024-01-01": 10},
		domain.MetricMAU: {"2024-01-01": 10},
	}}
	retention := &stubRetentionMeter{rate: 34.5, trend: domain.RetentionTrend{"2024-01-01": 40}}
	financial := &stubFinancialMeter{
		ltv:   decimal.NewFromInt(300),
		cac:   decimal.NewFromInt(150),
		arppu: decimal.NewFromInt(280),
	}
	ranker := &stubProductRanker{performances: []*domain.ProductPerformance{
		{CourseID: 1, CourseName: "Violão Popular", OrderCount: 25},
	}}

	service := NewService(audience, retention, financial, ranker, mockUserRepo, mockOrderRepo, mockCourseRepo)

	report, err := service.GetCompleteMetrics(start, end)
	require.NoError(t, err)

	// Mesma granularidade repassada aos dois motores
	assert.Equal(t, domain.GranularityWeek, audience.granularity)
	assert.Equal(t, domain.GranularityWeek, retention.trendGranularity)

	assert.Equal(t, int64(100), report.DashboardStats.UserCount)
	assert.Equal(t, audience.metrics, report.AudienceMetrics)
	assert.Equal(t, 34.5, report.RetentionRate)
	assert.Equal(t, "300.00", report.LTV.StringFixed(2))
	assert.Equal(t, "150.00", report.CAC.StringFixed(2))
	assert.Equal(t, "280.00", report.ARPPU.StringFixed(2))
	assert.Equal(t, ranker.performances, report.ProductPerformance)
	assert.Equal(t, retention.trend, report.RetentionTrend)
}

func TestGetCompleteMetrics_EmptyFuturePeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := day(2030, 1, 1)
	end := day(2030, 1, 11)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCourseRepo := mocks.NewMockCourseRepository(ctrl)

	mockUserRepo.EXPECT().CountByLastActivityBetween(start, end).Return(int64(0), nil)
	mockCourseRepo.EXPECT().Count().Return(int64(16), nil)
	mockOrderRepo.EXPECT().CountByOrderDateBetween(start, end).Return(int64(0), nil)
	mockOrderRepo.EXPECT().GetTotalRevenueBetween(start, end).Return(decimal.Zero, nil)

	audience := &stubAudienceMeter{metrics: domain.AudienceMetrics{
		domain.MetricDAU: {},
		domain.MetricWAU: {},
		domain.MetricMAU: {},
	}}
	// A taxa de recompra é vitalícia: continua calculada mesmo sem
	// atividade no período
	retention := &stubRetentionMeter{rate: 25, trend: domain.RetentionTrend{}}
	financial := &stubFinancialMeter{ltv: decimal.NewFromInt(200)}
	ranker := &stubProductRanker{performances: []*domain.ProductPerformance{}}

	service := NewService(audience, retention, financial, ranker, mockUserRepo, mockOrderRepo, mockCourseRepo)

	report, err := service.GetCompleteMetrics(start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.DashboardStats.OrderCount)
	assert.True(t, report.DashboardStats.TotalRevenue.IsZero())
	assert.Equal(t, float64(25), report.RetentionRate)
	assert.Empty(t, report.ProductPerformance)
}

func TestGetCompleteMetrics_PortErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedErr := errors.New("conexão perdida")

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCourseRepo := mocks.NewMockCourseRepository(ctrl)

	mockUserRepo.EXPECT().CountByLastActivityBetween(gomock.Any(), gomock.Any()).Return(int64(0), expectedErr)

	service := NewService(nil, nil, nil, nil, mockUserRepo, mockOrderRepo, mockCourseRepo)

	report, err := service.GetCompleteMetrics(day(2024, 1, 1), day(2024, 1, 11))
	assert.Nil(t, report)
	assert.Equal(t, expectedErr, err)
}
