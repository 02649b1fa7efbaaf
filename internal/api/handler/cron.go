package handler

import (
	"net/http"

	"github.com/linter/edu-analytics-api/internal/scheduler"
	"github.com/linter/edu-analytics-api/pkg/apiErrors"
	"github.com/linter/edu-analytics-api/pkg/log"
)

// RunDailyReportJob dispara manualmente a geração do relatório diário, sem
// esperar pelo horário agendado. Execuções sobrepostas são ignoradas pelo
// próprio serviço.
func RunDailyReportJob(service *scheduler.DailyReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do relatório diário não disponível", nil)
			return
		}

		if err := service.RunDailyReport(); err != nil {
			logger.WithError(err).Error("cron-run: erro na geração manual do relatório diário")
			apiErrors.WriteError(w, storageErrorCode(err), err.Error(), nil)
			return
		}

		response := map[string]any{
			"message": "Relatório diário gerado com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("cron-run: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetCronStatus retorna o estado dos jobs agendados da aplicação.
func GetCronStatus(service *scheduler.DailyReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"daily-report": service.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("cron-status: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
