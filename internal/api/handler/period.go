package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/linter/edu-analytics-api/internal/domain"
	"github.com/linter/edu-analytics-api/pkg/utils"
)

// periodFromRequest resolve o período do relatório a partir da query string.
// Datas explícitas (start_date/end_date, formato AAAA-MM-DD) têm precedência;
// na ausência delas vale o rótulo em period, com padrão de 30 dias.
func periodFromRequest(r *http.Request) (domain.Period, error) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam == "" && endParam == "" {
		return domain.PeriodFromLabel(r.URL.Query().Get("period"), time.Now()), nil
	}

	if startParam == "" || endParam == "" {
		return domain.Period{}, errors.New("start_date e end_date devem ser informados juntos")
	}

	start, err := utils.ParseDate(startParam)
	if err != nil {
		return domain.Period{}, errors.Wrap(err, "start_date inválido")
	}

	end, err := utils.ParseDate(endParam)
	if err != nil {
		return domain.Period{}, errors.Wrap(err, "end_date inválido")
	}

	if !start.Before(*end) {
		return domain.Period{}, errors.New("start_date deve ser anterior a end_date")
	}

	return domain.Period{Start: *start, End: *end}, nil
}

// granularityFromRequest lê o parâmetro opcional aggregation. Vazio delega a
// escolha a quem chama; valores desconhecidos são erro de validação.
func granularityFromRequest(r *http.Request) (domain.Granularity, error) {
	aggregation := r.URL.Query().Get("aggregation")

	switch domain.Granularity(aggregation) {
	case domain.GranularityDay, domain.GranularityWeek, domain.GranularityMonth:
		return domain.Granularity(aggregation), nil
	case "":
		return domain.GranularityDay, nil
	default:
		return "", errors.Errorf("aggregation inválida: %s (use day, week ou month)", aggregation)
	}
}
