package retaining

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/domain"
	"github.com/linter/edu-analytics-api/pkg/utils"
)

// RetentionMeter expõe as duas métricas de retenção do sistema. São métricas
// distintas que dividem o prefixo do nome: a taxa é o percentual vitalício de
// recompra, a tendência é a atividade das coortes 7 dias após o cadastro.
// Não devem ser unificadas.
type RetentionMeter interface {
	GetRetentionRate(end time.Time) (float64, error)
	GetRetentionTrend(start, end time.Time, granularity domain.Granularity) (domain.RetentionTrend, error)
}

type Service struct {
	userRepository  repository.UserRepository
	orderRepository repository.OrderRepository
}

func NewService(
	userRepository repository.UserRepository,
	orderRepository repository.OrderRepository,
) RetentionMeter {
	return &Service{
		userRepository:  userRepository,
		orderRepository: orderRepository,
	}
}

// GetRetentionRate calcula o percentual de recompra vitalício: entre todos os
// usuários que já fizeram algum pedido antes de end (sem limitar ao período do
// relatório), quantos fizeram mais de um pedido no total. Retorna 0 quando
// ninguém nunca comprou.
func (s *Service) GetRetentionRate(end time.Time) (float64, error) {
	usersEver, err := s.userRepository.FindUsersWithAnyOrdersBefore(end)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários com pedidos")
		return 0, err
	}

	totalUsers := len(usersEver)
	if totalUsers == 0 {
		return 0, nil
	}

	retained := 0
	for _, user := range usersEver {
		orders, err := s.orderRepository.FindByUser(user.ID)
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Error("Erro ao buscar pedidos do usuário")
			return 0, err
		}
		if len(orders) > 1 {
			retained++
		}
	}

	rate := utils.RoundWithTwoDecimalPlace(float64(retained) / float64(totalUsers) * 100)

	logrus.WithFields(logrus.Fields{
		"total_users": totalUsers,
		"retained":    retained,
		"rate":        rate,
	}).Info("Taxa de retenção (recompra vitalícia) calculada")

	return rate, nil
}

// GetRetentionTrend monta a tendência de retenção por coorte de cadastro.
// Granularidade day e week usam coortes semanais; month usa coortes mensais.
// Linhas com chave ou taxa nula vindas da fonte são descartadas com um
// diagnóstico, sem abortar o cálculo.
func (s *Service) GetRetentionTrend(start, end time.Time, granularity domain.Granularity) (domain.RetentionTrend, error) {
	var cohorts []domain.CohortRow
	var err error

	if granularity == domain.GranularityMonth {
		cohorts, err = s.userRepository.GetMonthlyRetentionTrend(start, end)
	} else {
		cohorts, err = s.userRepository.GetWeeklyRetentionTrend(start, end)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar coortes de retenção")
		return nil, err
	}

	trend := make(domain.RetentionTrend)

	if len(cohorts) == 0 {
		logrus.WithFields(logrus.Fields{
			"start": start.Format(time.DateOnly),
			"end":   end.Format(time.DateOnly),
		}).Warn("Nenhuma coorte de retenção encontrada para o período")
		return trend, nil
	}

	for _, cohort := range cohorts {
		if cohort.PeriodStart == nil || cohort.RetentionRate == nil {
			logrus.WithFields(logrus.Fields{
				"period_start":   cohort.PeriodStart,
				"retention_rate": cohort.RetentionRate,
			}).Warn("Linha inválida na tendência de retenção, ignorando")
			continue
		}

		trend[cohort.PeriodStart.Format(time.DateOnly)] = *cohort.RetentionRate
	}

	return trend, nil
}
