package financing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/config"
	"github.com/linter/edu-analytics-api/pkg/utils"
)

// O orçamento mensal é rateado por dia sobre uma base de 30 dias, não por mês
// de calendário.
var proratingBase = decimal.NewFromInt(30)

// FinancialMeter calcula os indicadores financeiros do dashboard. Divisão por
// zero nunca é erro: o indicador afetado vale zero.
type FinancialMeter interface {
	GetLTV() (decimal.Decimal, error)
	GetCAC(start, end time.Time) (decimal.Decimal, error)
	GetARPPU(start, end time.Time) (decimal.Decimal, error)
}

type Service struct {
	userRepository  repository.UserRepository
	orderRepository repository.OrderRepository
	marketingBudget decimal.Decimal
}

func NewService(
	userRepository repository.UserRepository,
	orderRepository repository.OrderRepository,
	cfg *config.Config,
) FinancialMeter {
	return &Service{
		userRepository:  userRepository,
		orderRepository: orderRepository,
		marketingBudget: decimal.NewFromFloat(cfg.Metrics.MonthlyMarketingBudget),
	}
}

// GetLTV divide a receita de todos os tempos pelo total de usuários já
// cadastrados, com 2 casas e arredondamento half-up. Ignora o período do
// relatório por definição.
func (s *Service) GetLTV() (decimal.Decimal, error) {
	totalRevenue, err := s.orderRepository.GetTotalRevenue()
	if err != nil {
		return decimal.Zero, err
	}

	totalUsers, err := s.userRepository.Count()
	if err != nil {
		return decimal.Zero, err
	}

	if totalUsers == 0 {
		return decimal.Zero, nil
	}

	return totalRevenue.DivRound(decimal.NewFromInt(totalUsers), 2), nil
}

// GetCAC divide o custo de marketing rateado do período pelos usuários novos
// cadastrados nele. Zero cadastros novos resulta em CAC zero.
func (s *Service) GetCAC(start, end time.Time) (decimal.Decimal, error) {
	newUsers, err := s.userRepository.CountByRegistrationBetween(start, end)
	if err != nil {
		return decimal.Zero, err
	}

	if newUsers == 0 {
		return decimal.Zero, nil
	}

	periodCosts := s.calculatePeriodCosts(start, end)

	return periodCosts.DivRound(decimal.NewFromInt(newUsers), 2), nil
}

// GetARPPU divide a receita do período pelos usuários pagantes distintos do
// período. Zero pagantes resulta em ARPPU zero.
func (s *Service) GetARPPU(start, end time.Time) (decimal.Decimal, error) {
	payingUsers, err := s.orderRepository.CountDistinctPayingUsersBetween(start, end)
	if err != nil {
		return decimal.Zero, err
	}

	if payingUsers == 0 {
		return decimal.Zero, nil
	}

	periodRevenue, err := s.orderRepository.GetTotalRevenueBetween(start, end)
	if err != nil {
		return decimal.Zero, err
	}

	return periodRevenue.DivRound(decimal.NewFromInt(payingUsers), 2), nil
}

// calculatePeriodCosts rateia o orçamento fixo mensal pelos dias completos do
// período: orçamento * dias / 30, com 2 casas e arredondamento half-up.
func (s *Service) calculatePeriodCosts(start, end time.Time) decimal.Decimal {
	days := utils.DaysBetween(start, end)

	costs := s.marketingBudget.
		Mul(decimal.NewFromInt(days)).
		DivRound(proratingBase, 2)

	logrus.WithFields(logrus.Fields{
		"days":         days,
		"period_costs": costs.String(),
	}).Debug("Custo de marketing do período rateado")

	return costs
}
