package main

import (
	"context"
	"time"

	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/database/postgres"
	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/repository"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/api"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/config"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/importing"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
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

	saleRecordRepo := repository.NewSaleRecordRepository(pgConn)
	uploadLedgerRepo := repository.NewUploadLedgerRepository(pgConn)

	importService := importing.NewService(saleRecordRepo)
	reportService := reporting.NewService(saleRecordRepo, uploadLedgerRepo)

	server, err := api.New(cfg, importService, reportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
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
