// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/internal/config"
	"github.com/linter/edu-analytics-api/internal/domain"
	"github.com/linter/edu-analytics-api/internal/usecases/reporting"
)

type DailyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyReportService gera diariamente o relatório dos últimos 30 dias e
// registra o resumo no log. Serve de verificação de saúde do pipeline de
// métricas sem depender de tráfego na API.
type DailyReportService struct {
	scheduler         *gocron.Scheduler
	reportService     reporting.Reporter
	config            DailyReportConfig
	runRunning        bool
	runMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

func NewDailyReportService(
	reportService reporting.Reporter,
	cfg *config.Config,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: cfg.DailyReport.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.DailyReport.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
	}).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportService{
		scheduler:     scheduler,
		reportService: reportService,
		config:        reportConfig,
	}
}

func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do relatório diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDailyReport(); err != nil {
			logrus.WithError(err).Error("Erro na geração do relatório diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDailyReport monta o relatório dos últimos 30 dias e loga o resumo.
// Execuções sobrepostas são ignoradas.
func (s *DailyReportService) RunDailyReport() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.runRunning {
		logrus.Warn("Geração do relatório diário já está em execução")
		return nil
	}

	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.runRunning = false
		s.lastRunFinishedAt = time.Now()
	}()

	logrus.Info("Iniciando geração do relatório diário")

	period := domain.PeriodFromLabel(domain.PeriodLast30Days, time.Now())

	report, err := s.reportService.GetCompleteMetrics(period.Start, period.End)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"start":          period.Start.Format(time.DateOnly),
		"end":            period.End.Format(time.DateOnly),
		"active_users":   report.DashboardStats.UserCount,
		"orders":         report.DashboardStats.OrderCount,
		"revenue":        report.DashboardStats.TotalRevenue.String(),
		"retention_rate": report.RetentionRate,
		"ltv":            report.LTV.String(),
		"cac":            report.CAC.String(),
		"arppu":          report.ARPPU.String(),
	}).Info("Relatório diário de métricas gerado")

	return nil
}

// GetStatus retorna o estado atual do agendador
func (s *DailyReportService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":              s.config.Enabled,
		"cron":                 s.config.CronSchedule,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
