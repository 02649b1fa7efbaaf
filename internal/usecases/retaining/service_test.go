package retaining

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

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func TestGetRetentionRate(t *testing.T) {
	end := day(2024, 6, 1)

	tests := []struct {
		name     string
		setup    func(userRepo *mocks.MockUserRepository, orderRepo *mocks.MockOrderRepository)
		expected float64
	}{
		{
			name: "Sem compradores retorna zero",
			setup: func(userRepo *mocks.MockUserRepository, orderRepo *mocks.MockOrderRepository) {
				userRepo.EXPECT().
					FindUsersWithAnyOrdersBefore(end).
					Return([]*domain.User{}, nil)
			},
			expected: 0,
		},
		{
			name: "Todos recompraram retorna 100",
			setup: func(userRepo *mocks.MockUserRepository, orderRepo *mocks.MockOrderRepository) {
				userRepo.EXPECT().
					FindUsersWithAnyOrdersBefore(end).
					Return([]*domain.User{{ID: 1}, {ID: 2}}, nil)
				orderRepo.EXPECT().
					FindByUser(int64(1)).
					Return([]*domain.Order{{ID: 10}, {ID: 11}}, nil)
				orderRepo.EXPECT().
					FindByUser(int64(2)).
					Return([]*domain.Order{{ID: 20}, {ID: 21}, {ID: 22}}, nil)
			},
			expected: 100,
		},
		{
			name: "Metade recomprou retorna 50",
			setup: func(userRepo *mocks.MockUserRepository, orderRepo *mocks.MockOrderRepository) {
				userRepo.EXPECT().
					FindUsersWithAnyOrdersBefore(end).
					Return([]*domain.User{{ID: 1}, {ID: 2}}, nil)
				orderRepo.EXPECT().
					FindByUser(int64(1)).
					Return([]*domain.Order{{ID: 10}, {ID: 11}}, nil)
				orderRepo.EXPECT().
					FindByUser(int64(2)).
					Return([]*domain.Order{{ID: 20}}, nil)
			},
			expected: 50,
		},
		{
			name: "Percentual arredondado em 2 casas",
			setup: func(userRepo *mocks.MockUserRepository, orderRepo *mocks.MockOrderRepository) {
				userRepo.EXPECT().
					FindUsersWithAnyOrdersBefore(end).
					Return([]*domain.User{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
				orderRepo.EXPECT().
					FindByUser(int64(1)).
					Return([]*domain.Order{{ID: 10}, {ID: 11}}, nil)
				orderRepo.EXPECT().
					FindByUser(int64(2)).
					Return([]*domain.Order{{ID: 20}}, nil)
				orderRepo.EXPECT().
					FindByUser(int64(3)).
					Return([]*domain.Order{{ID: 30}}, nil)
			},
			expected: 33.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
			tt.setup(mockUserRepo, mockOrderRepo)

			service := NewService(mockUserRepo, mockOrderRepo)

			rate, err := service.GetRetentionRate(end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rate)
		})
	}
}

func TestGetRetentionRate_OrderLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedErr := errors.New("timeout")

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

	mockUserRepo.EXPECT().
		FindUsersWithAnyOrdersBefore(gomock.Any()).
		Return([]*domain.User{{ID: 1}}, nil)
	mockOrderRepo.EXPECT().
		FindByUser(int64(1)).
		Return(nil, expectedErr)

	service := NewService(mockUserRepo, mockOrderRepo)

	_, err := service.GetRetentionRate(day(2024, 6, 1))
	assert.Equal(t, expectedErr, err)
}

func TestGetRetentionTrend_GranularityRouting(t *testing.T) {
	start := day(2024, 1, 1)
	end := day(2024, 6, 1)

	t.Run("Granularidade diária e semanal usam coortes semanais", func(t *testing.T) {
		for _, granularity := range []domain.Granularity{domain.GranularityDay, domain.GranularityWeek} {
			ctrl := gomock.NewController(t)

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

			mockUserRepo.EXPECT().
				GetWeeklyRetentionTrend(start, end).
				Return([]domain.CohortRow{
					{PeriodStart: timePtr(day(2024, 1, 1)), RetentionRate: floatPtr(42.5)},
				}, nil)

			service := NewService(mockUserRepo, mockOrderRepo)

			trend, err := service.GetRetentionTrend(start, end, granularity)
			require.NoError(t, err)
			assert.Equal(t, domain.RetentionTrend{"2024-01-01": 42.5}, trend)

			ctrl.Finish()
		}
	})

	t.Run("Granularidade mensal usa coortes mensais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

		mockUserRepo.EXPECT().
			GetMonthlyRetentionTrend(start, end).
			Return([]domain.CohortRow{
				{PeriodStart: timePtr(day(2024, 1, 1)), RetentionRate: floatPtr(30)},
				{PeriodStart: timePtr(day(2024, 2, 1)), RetentionRate: floatPtr(35.71)},
			}, nil)

		service := NewService(mockUserRepo, mockOrderRepo)

		trend, err := service.GetRetentionTrend(start, end, domain.GranularityMonth)
		require.NoError(t, err)
		assert.Equal(t, domain.RetentionTrend{"2024-01-01": 30, "2024-02-01": 35.71}, trend)
	})
}

func TestGetRetentionTrend_SkipsNullRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

	mockUserRepo.EXPECT().
		GetWeeklyRetentionTrend(gomock.Any(), gomock.Any()).
		Return([]domain.CohortRow{
			{PeriodStart: nil, RetentionRate: floatPtr(10)},
			{PeriodStart: timePtr(day(2024, 1, 8)), RetentionRate: nil},
			{PeriodStart: timePtr(day(2024, 1, 15)), RetentionRate: floatPtr(55.55)},
		}, nil)

	service := NewService(mockUserRepo, mockOrderRepo)

	trend, err := service.GetRetentionTrend(day(2024, 1, 1), day(2024, 2, 1), domain.GranularityWeek)
	require.NoError(t, err)
	assert.Equal(t, domain.RetentionTrend{"2024-01-15": 55.55}, trend)
}

func TestGetRetentionTrend_EmptyCohorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

	mockUserRepo.EXPECT().
		GetWeeklyRetentionTrend(gomock.Any(), gomock.Any()).
		Return([]domain.CohortRow{}, nil)

	service := NewService(mockUserRepo, mockOrderRepo)

	trend, err := service.GetRetentionTrend(day(2024, 1, 1), day(2024, 2, 1), domain.GranularityWeek)
	require.NoError(t, err)
	assert.Empty(t, trend)
	assert.NotNil(t, trend)
}
