package reporting

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/domain"
	"github.com/linter/edu-analytics-api/internal/usecases/audiencing"
	"github.com/linter/edu-analytics-api/internal/usecases/financing"
	"github.com/linter/edu-analytics-api/internal/usecases/ranking"
	"github.com/linter/edu-analytics-api/internal/usecases/retaining"
	"github.com/linter/edu-analytics-api/pkg/utils"
)

// Limiares de escolha de granularidade, em dias de calendário do período.
const (
	monthGranularityThreshold = 180
	weekGranularityThreshold  = 30
)

// Reporter monta o relatório composto de métricas para um período. É pura
// composição: os motores calculam, e a única decisão própria do orquestrador
// é a granularidade compartilhada entre audiência e tendência de retenção.
type Reporter interface {
	GetDashboardStats(start, end time.Time) (*domain.DashboardStats, error)
	GetCompleteMetrics(start, end time.Time) (*domain.CompleteMetricsReport, error)
}

type Service struct {
	audienceService  audiencing.AudienceMeter
	retentionService retaining.RetentionMeter
	financialService financing.FinancialMeter
	rankingService   ranking.ProductRanker
	userRepository   repository.UserRepository
	orderRepository  repository.OrderRepository
	courseRepository repository.CourseRepository
}

func NewService(
	audienceService audiencing.AudienceMeter,
	retentionService retaining.RetentionMeter,
	financialService financing.FinancialMeter,
	rankingService ranking.ProductRanker,
	userRepository repository.UserRepository,
	orderRepository repository.OrderRepository,
	courseRepository repository.CourseRepository,
) Reporter {
	return &Service{
		audienceService:  audienceService,
		retentionService: retentionService,
		financialService: financialService,
		rankingService:   rankingService,
		userRepository:   userRepository,
		orderRepository:  orderRepository,
		courseRepository: courseRepository,
	}
}

// GetDashboardStats retorna os totais do topo do dashboard: usuários ativos e
// pedidos do período, contagem total de cursos e receita do período (zero,
// nunca nula, quando não há pedidos).
func (s *Service) GetDashboardStats(start, end time.Time) (*domain.DashboardStats, error) {
	userCount, err := s.userRepository.CountByLastActivityBetween(start, end)
	if err != nil {
		return nil, err
	}

	courseCount, err := s.courseRepository.Count()
	if err != nil {
		return nil, err
	}

	orderCount, err := s.orderRepository.CountByOrderDateBetween(start, end)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.orderRepository.GetTotalRevenueBetween(start, end)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		UserCount:    userCount,
		CourseCount:  courseCount,
		OrderCount:   orderCount,
		TotalRevenue: totalRevenue,
	}, nil
}

// GetCompleteMetrics invoca os quatro motores e monta o relatório composto.
// A granularidade escolhida pelo tamanho do período é repassada tanto para a
// audiência quanto para a tendência de retenção, garantindo que as duas visões
// usem a mesma resolução temporal. Falhas da fonte de dados propagam intactas.
func (s *Service) GetCompleteMetrics(start, end time.Time) (*domain.CompleteMetricsReport, error) {
	granularity := selectGranularity(start, end)

	logrus.WithFields(logrus.Fields{
		"start":       start.Format(time.DateOnly),
		"end":         end.Format(time.DateOnly),
		"granularity": granularity,
	}).Info("Montando relatório completo de métricas")

	dashboardStats, err := s.GetDashboardStats(start, end)
	if err != nil {
		return nil, err
	}

	audienceMetrics, err := s.audienceService.GetAudienceMetrics(start, end, granularity)
	if err != nil {
		return nil, err
	}

	retentionRate, err := s.retentionService.GetRetentionRate(end)
	if err != nil {
		return nil, err
	}

	ltv, err := s.financialService.GetLTV()
	if err != nil {
		return nil, err
	}

	cac, err := s.financialService.GetCAC(start, end)
	if err != nil {
		return nil, err
	}

	arppu, err := s.financialService.GetARPPU(start, end)
	if err != nil {
		return nil, err
	}

	productPerformance, err := s.rankingService.GetProductPerformance(start, end)
	if err != nil {
		return nil, err
	}

	retentionTrend, err := s.retentionService.GetRetentionTrend(start, end, granularity)
	if err != nil {
		return nil, err
	}

	return &domain.CompleteMetricsReport{
		DashboardStats:     dashboardStats,
		AudienceMetrics:    audienceMetrics,
		RetentionRate:      retentionRate,
		LTV:                ltv,
		CAC:                cac,
		ARPPU:              arppu,
		ProductPerformance: productPerformance,
		RetentionTrend:     retentionTrend,
	}, nil
}

// selectGranularity escolhe a resolução temporal pelo número de dias de
// calendário do período: mês acima de 180 dias, semana a partir de 30, senão
// dia.
func selectGranularity(start, end time.Time) domain.Granularity {
	days := utils.CalendarDaysBetween(start, end)

	switch {
	case days > monthGranularityThreshold:
		return domain.GranularityMonth
	case days >= weekGranularityThreshold:
		return domain.GranularityWeek
	default:
		return domain.GranularityDay
	}
}
