package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/usecases/audiencing"
	"github.com/linter/edu-analytics-api/internal/usecases/ranking"
	"github.com/linter/edu-analytics-api/internal/usecases/reporting"
	"github.com/linter/edu-analytics-api/internal/usecases/retaining"
	"github.com/linter/edu-analytics-api/pkg/apiErrors"
	"github.com/linter/edu-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storageErrorCode distingue dado em formato inesperado na fonte de uma falha
// comum de acesso ao banco.
func storageErrorCode(err error) string {
	var shapeErr *repository.DataShapeError
	if errors.As(err, &shapeErr) {
		return apiErrors.ErrDataShape
	}
	return apiErrors.ErrDatabaseOperation
}

// GetCompleteReport retorna o relatório completo de métricas para o período
// solicitado.
func GetCompleteReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"start": period.Start.Format(time.DateOnly),
			"end":   period.End.Format(time.DateOnly),
		}).Info("metrics-report: montando relatório completo")

		report, err := service.GetCompleteMetrics(period.Start, period.End)
		if err != nil {
			logger.WithError(err).Error("metrics-report: erro ao montar relatório completo")
			apiErrors.WriteError(w, storageErrorCode(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("metrics-report: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetDashboardStats retorna apenas os totais do topo do dashboard.
func GetDashboardStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stats, err := service.GetDashboardStats(period.Start, period.End)
		if err != nil {
			logger.WithError(err).Error("metrics-dashboard: erro ao buscar totais do dashboard")
			apiErrors.WriteError(w, storageErrorCode(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("metrics-dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetAudienceMetrics retorna DAU, WAU e MAU do período, com a agregação
// opcionalmente forçada pelo parâmetro aggregation.
func GetAudienceMetrics(service audiencing.AudienceMeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		granularity, err := granularityFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metrics, err := service.GetAudienceMetrics(period.Start, period.End, granularity)
		if err != nil {
			logger.WithError(err).Error("metrics-audience: erro ao calcular métricas de audiência")
			apiErrors.WriteError(w, storageErrorCode(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("metrics-audience: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetRetentionTrend retorna a tendência de retenção por coorte de cadastro.
func GetRetentionTrend(service retaining.RetentionMeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		granularity, err := granularityFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		trend, err := service.GetRetentionTrend(period.Start, period.End, granularity)
		if err != nil {
			logger.WithError(err).Error("metrics-retention: erro ao montar tendência de retenção")
			apiErrors.WriteError(w, storageErrorCode(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trend); err != nil {
			logger.WithError(err).Error("metrics-retention: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetProductPerformance retorna o ranking de cursos do período.
func GetProductPerformance(service ranking.ProductRanker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		performances, err := service.GetProductPerformance(period.Start, period.End)
		if err != nil {
			logger.WithError(err).Error("metrics-products: erro ao buscar ranking de cursos")
			apiErrors.WriteError(w, storageErrorCode(err), err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"products_returned": len(performances),
		}).Info("metrics-products: ranking de cursos gerado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(performances); err != nil {
			logger.WithError(err).Error("metrics-products: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
