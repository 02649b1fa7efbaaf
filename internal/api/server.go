package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/internal/api/handler"
	"github.com/linter/edu-analytics-api/internal/api/handler/router"
	"github.com/linter/edu-analytics-api/internal/config"
	"github.com/linter/edu-analytics-api/internal/scheduler"
	"github.com/linter/edu-analytics-api/internal/usecases/audiencing"
	"github.com/linter/edu-analytics-api/internal/usecases/ranking"
	"github.com/linter/edu-analytics-api/internal/usecases/reporting"
	"github.com/linter/edu-analytics-api/internal/usecases/retaining"
	"github.com/linter/edu-analytics-api/pkg/middleware"
)

func init() {
	// Valores monetários saem como números JSON, não strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportService reporting.Reporter,
	audienceService audiencing.AudienceMeter,
	retentionService retaining.RetentionMeter,
	rankingService ranking.ProductRanker,
	dailyReportService *scheduler.DailyReportService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(
			reportService,
			audienceService,
			retentionService,
			rankingService,
		)...),
		router.WithRoutes(handler.CronJobs(dailyReportService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
