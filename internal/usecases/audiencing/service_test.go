package audiencing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linter/edu-analytics-api/infrastructure/repository/mocks"
	"github.com/linter/edu-analytics-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetAudienceMetrics(t *testing.T) {
	start := day(2024, 1, 1)
	end := day(2024, 2, 1)

	tests := []struct {
		name        string
		activity    []domain.DailyActivity
		granularity domain.Granularity
		expected    domain.AudienceMetrics
	}{
		{
			name:        "Sem atividade retorna mapas vazios",
			activity:    []domain.DailyActivity{},
			granularity: domain.GranularityDay,
			expected: domain.AudienceMetrics{
				domain.MetricDAU: {},
				domain.MetricWAU: {},
				domain.MetricMAU: {},
			},
		},
		{
			name: "Uma única data tem WAU e MAU iguais ao DAU",
			activity: []domain.DailyActivity{
				{Date: day(2024, 1, 10), UserID: 1},
				{Date: day(2024, 1, 10), UserID: 2},
				{Date: day(2024, 1, 10), UserID: 2},
			},
			granularity: domain.GranularityDay,
			expected: domain.AudienceMetrics{
				domain.MetricDAU: {"2024-01-10": 2},
				domain.MetricWAU: {"2024-01-10": 2},
				domain.MetricMAU: {"2024-01-10": 2},
			},
		},
		{
			name: "Janela móvel conta alunos distintos, não soma diários",
			activity: []domain.DailyActivity{
				{Date: day(2024, 1, 1), UserID: 1},
				{Date: day(2024, 1, 1), UserID: 2},
				{Date: day(2024, 1, 2), UserID: 2},
				{Date: day(2024, 1, 2), UserID: 3},
				{Date: day(2024, 1, 3), UserID: 4},
			},
			granularity: domain.GranularityDay,
			expected: domain.AudienceMetrics{
				domain.MetricDAU: {"2024-01-01": 2, "2024-01-02": 2, "2024-01-03": 1},
				domain.MetricWAU: {"2024-01-01": 2, "2024-01-02": 3, "2024-01-03": 4},
				domain.MetricMAU: {"2024-01-01": 2, "2024-01-02": 3, "2024-01-03": 4},
			},
		},
		{
			name: "Datas fora da janela de 7 dias são expulsas do WAU",
			activity: []domain.DailyActivity{
				{Date: day(2024, 1, 1), UserID: 1},
				{Date: day(2024, 1, 8), UserID: 2},
			},
			granularity: domain.GranularityDay,
			expected: domain.AudienceMetrics{
				domain.MetricDAU: {"2024-01-01": 1, "2024-01-08": 1},
				domain.MetricWAU: {"2024-01-01": 1, "2024-01-08": 1},
				domain.MetricMAU: {"2024-01-01": 1, "2024-01-08": 2},
			},
		},
		{
			name: "Granularidade semanal agrupa pela segunda-feira da semana",
			activity: []domain.DailyActivity{
				{Date: day(2024, 1, 1), UserID: 1}, // segunda
				{Date: day(2024, 1, 3), UserID: 2}, // quarta, mesma semana
				{Date: day(2024, 1, 7), UserID: 3}, // domingo, mesma semana
			},
			granularity: domain.GranularityWeek,
			expected: domain.AudienceMetrics{
				domain.MetricDAU: {"2024-01-01": 3},
				domain.MetricWAU: {"2024-01-01": 3},
				domain.MetricMAU: {"2024-01-01": 3},
			},
		},
		{
			name: "Granularidade mensal agrupa pelo dia 1 do mês",
			activity: []domain.DailyActivity{
				{Date: day(2024, 1, 5), UserID: 1},
				{Date: day(2024, 1, 25), UserID: 1},
				{Date: day(2024, 1, 28), UserID: 2},
			},
			granularity: domain.GranularityMonth,
			expected: domain.AudienceMetrics{
				domain.MetricDAU: {"2024-01-01": 2},
				domain.MetricWAU: {"2024-01-01": 2},
				domain.MetricMAU: {"2024-01-01": 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			mockUserRepo.EXPECT().
				GetDailyActiveUsers(start, end).
				Return(tt.activity, nil)

			service := NewService(mockUserRepo)

			metrics, err := service.GetAudienceMetrics(start, end, tt.granularity)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, metrics)
		})
	}
}

func TestGetAudienceMetrics_SingleDateAggregationKeepsCounts(t *testing.T) {
	activity := []domain.DailyActivity{
		{Date: day(2024, 1, 10), UserID: 1},
		{Date: day(2024, 1, 10), UserID: 2},
	}

	// Reagrupar uma única data muda a chave do bucket, nunca as contagens
	expectedKeys := map[domain.Granularity]string{
		domain.GranularityDay:   "2024-01-10",
		domain.GranularityWeek:  "2024-01-08", // segunda-feira da semana
		domain.GranularityMonth: "2024-01-01",
	}

	for granularity, key := range expectedKeys {
		t.Run(string(granularity), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			mockUserRepo.EXPECT().
				GetDailyActiveUsers(gomock.Any(), gomock.Any()).
				Return(activity, nil)

			service := NewService(mockUserRepo)

			metrics, err := service.GetAudienceMetrics(day(2024, 1, 1), day(2024, 2, 1), granularity)
			require.NoError(t, err)

			expected := map[string]int{key: 2}
			assert.Equal(t, expected, metrics[domain.MetricDAU])
			assert.Equal(t, expected, metrics[domain.MetricWAU])
			assert.Equal(t, expected, metrics[domain.MetricMAU])
		})
	}
}

func TestGetAudienceMetrics_WindowContainment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activity := []domain.DailyActivity{
		{Date: day(2024, 1, 1), UserID: 1},
		{Date: day(2024, 1, 4), UserID: 2},
		{Date: day(2024, 1, 9), UserID: 1},
		{Date: day(2024, 1, 9), UserID: 3},
		{Date: day(2024, 1, 20), UserID: 4},
		{Date: day(2024, 1, 25), UserID: 1},
	}

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetDailyActiveUsers(gomock.Any(), gomock.Any()).
		Return(activity, nil)

	service := NewService(mockUserRepo)

	metrics, err := service.GetAudienceMetrics(day(2024, 1, 1), day(2024, 2, 1), domain.GranularityDay)
	require.NoError(t, err)

	// Em toda data, DAU ≤ WAU ≤ MAU
	for date, dau := range metrics[domain.MetricDAU] {
		assert.GreaterOrEqual(t, metrics[domain.MetricWAU][date], dau, "WAU menor que DAU em %s", date)
		assert.GreaterOrEqual(t, metrics[domain.MetricMAU][date], metrics[domain.MetricWAU][date], "MAU menor que WAU em %s", date)
	}
}

func TestGetAudienceMetrics_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedErr := errors.New("conexão recusada")

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetDailyActiveUsers(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	service := NewService(mockUserRepo)

	metrics, err := service.GetAudienceMetrics(day(2024, 1, 1), day(2024, 2, 1), domain.GranularityDay)
	assert.Nil(t, metrics)
	assert.Equal(t, expectedErr, err)
}

func TestMondayOfWeek(t *testing.T) {
	// Domingo pertence à semana que começou na segunda anterior
	assert.Equal(t, day(2024, 1, 1), mondayOfWeek(day(2024, 1, 7)))
	assert.Equal(t, day(2024, 1, 1), mondayOfWeek(day(2024, 1, 1)))
	assert.Equal(t, day(2024, 1, 8), mondayOfWeek(day(2024, 1, 9)))
}
