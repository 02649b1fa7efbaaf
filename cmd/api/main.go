package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/infrastructure/database/postgres"
	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/api"
	"github.com/linter/edu-analytics-api/internal/config"
	"github.com/linter/edu-analytics-api/internal/scheduler"
	"github.com/linter/edu-analytics-api/internal/usecases/audiencing"
	"github.com/linter/edu-analytics-api/internal/usecases/financing"
	"github.com/linter/edu-analytics-api/internal/usecases/ranking"
	"github.com/linter/edu-analytics-api/internal/usecases/reporting"
	"github.com/linter/edu-analytics-api/internal/usecases/retaining"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	courseRepo := repository.NewCourseRepository(pgConn)

	audienceService := audiencing.NewService(userRepo)
	retentionService := retaining.NewService(userRepo, orderRepo)
	financialService := financing.NewService(userRepo, orderRepo, cfg)
	rankingService := ranking.NewProductRankingService(orderRepo)

	reportService := reporting.NewService(
		audienceService,
		retentionService,
		financialService,
		rankingService,
		userRepo,
		orderRepo,
		courseRepo,
	)

	dailyReportService := scheduler.NewDailyReportService(reportService, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	} else {
		logrus.Info("Agendador do relatório diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		audienceService,
		retentionService,
		rankingService,
		dailyReportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
