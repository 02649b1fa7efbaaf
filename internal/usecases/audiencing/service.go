package audiencing

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/domain"
)

// Tamanhos das janelas deslizantes, em chaves de bucket.
const (
	wauWindowDays = 7
	mauWindowDays = 30
)

// AudienceMeter calcula DAU, WAU e MAU a partir dos conjuntos diários de
// alunos ativos.
type AudienceMeter interface {
	GetAudienceMetrics(start, end time.Time, granularity domain.Granularity) (domain.AudienceMetrics, error)
}

type Service struct {
	userRepository repository.UserRepository
}

func NewService(userRepository repository.UserRepository) AudienceMeter {
	return &Service{
		userRepository: userRepository,
	}
}

// GetAudienceMetrics busca a atividade diária do período, reagrupa os buckets
// conforme a granularidade pedida e calcula as três métricas sobre as chaves
// resultantes. Entrada vazia produz os três mapas vazios.
func (s *Service) GetAudienceMetrics(start, end time.Time, granularity domain.Granularity) (domain.AudienceMetrics, error) {
	activity, err := s.userRepository.GetDailyActiveUsers(start, end)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar atividade diária de usuários")
		return nil, err
	}

	dailySets := groupByDate(activity)
	buckets := aggregateDailySets(dailySets, granularity)

	logrus.WithFields(logrus.Fields{
		"granularity": granularity,
		"buckets":     len(buckets),
	}).Debug("Métricas de audiência calculadas")

	return domain.AudienceMetrics{
		domain.MetricDAU: calculateDAU(buckets),
		domain.MetricWAU: calculateRollingMetric(buckets, wauWindowDays),
		domain.MetricMAU: calculateRollingMetric(buckets, mauWindowDays),
	}, nil
}

// groupByDate monta os conjuntos de alunos ativos por data. Os conjuntos são
// efêmeros: criados por requisição e descartados com a resposta.
func groupByDate(activity []domain.DailyActivity) map[time.Time]map[int64]struct{} {
	dailySets := make(map[time.Time]map[int64]struct{})
	for _, entry := range activity {
		set, ok := dailySets[entry.Date]
		if !ok {
			set = make(map[int64]struct{})
			dailySets[entry.Date] = set
		}
		set[entry.UserID] = struct{}{}
	}
	return dailySets
}

// aggregateDailySets reagrupa os conjuntos diários em buckets semanais
// (segunda-feira da semana ISO) ou mensais (dia 1 do mês), unindo os conjuntos
// que compartilham a mesma chave. Para granularidade diária nada muda.
func aggregateDailySets(dailySets map[time.Time]map[int64]struct{}, granularity domain.Granularity) map[time.Time]map[int64]struct{} {
	if granularity == domain.GranularityDay || granularity == "" {
		return dailySets
	}

	aggregated := make(map[time.Time]map[int64]struct{})
	for date, users := range dailySets {
		var key time.Time
		switch granularity {
		case domain.GranularityWeek:
			key = mondayOfWeek(date)
		case domain.GranularityMonth:
			key = firstOfMonth(date)
		default:
			key = date
		}

		set, ok := aggregated[key]
		if !ok {
			set = make(map[int64]struct{})
			aggregated[key] = set
		}
		for id := range users {
			set[id] = struct{}{}
		}
	}
	return aggregated
}

func calculateDAU(buckets map[time.Time]map[int64]struct{}) map[string]int {
	dau := make(map[string]int, len(buckets))
	for date, users := range buckets {
		dau[date.Format(time.DateOnly)] = len(users)
	}
	return dau
}

// calculateRollingMetric calcula a contagem de alunos distintos na janela
// móvel que termina em cada chave (inclusive). O estado da janela é um deque
// de datas mais um mapa de contagem de referências por aluno: ao expulsar uma
// data, o aluno só sai do conjunto quando não aparece em nenhuma outra data
// ainda na janela — união de verdade, não um contador simples.
func calculateRollingMetric(buckets map[time.Time]map[int64]struct{}, days int) map[string]int {
	dates := make([]time.Time, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	result := make(map[string]int, len(dates))
	window := make(map[int64]int)
	dateWindow := make([]time.Time, 0, len(dates))

	for _, date := range dates {
		cutoff := date.AddDate(0, 0, -(days - 1))

		// Expulsa as datas que saíram da janela
		for len(dateWindow) > 0 && dateWindow[0].Before(cutoff) {
			oldDate := dateWindow[0]
			dateWindow = dateWindow[1:]
			for id := range buckets[oldDate] {
				window[id]--
				if window[id] == 0 {
					delete(window, id)
				}
			}
		}

		dateWindow = append(dateWindow, date)
		for id := range buckets[date] {
			window[id]++
		}

		result[date.Format(time.DateOnly)] = len(window)
	}

	return result
}

// mondayOfWeek retorna a segunda-feira da semana ISO da data.
func mondayOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return date.AddDate(0, 0, -(weekday - 1))
}

func firstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
