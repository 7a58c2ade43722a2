package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/infrastructure/database/postgres"
	"github.com/agencyflow/agency-manager-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/api"
	"github.com/agencyflow/agency-manager-api/internal/config"
	"github.com/agencyflow/agency-manager-api/internal/scheduler"
	"github.com/agencyflow/agency-manager-api/internal/usecases/analyzing"
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

	var repos api.Repositories

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		repos = api.Repositories{
			Clients:      repository.NewClientPostgresRepository(pgConn),
			Strategies:   repository.NewStrategyPostgresRepository(pgConn),
			Campaigns:    repository.NewCampaignPostgresRepository(pgConn),
			Activities:   repository.NewActivityPostgresRepository(pgConn),
			ClientAssets: repository.NewClientAssetPostgresRepository(pgConn),
			Users:        repository.NewUserPostgresRepository(pgConn),
		}
	default:
		db, err := jsonfile.Open(cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o arquivo de dados")
		}

		repos = api.Repositories{
			Clients:      repository.NewClientRepository(db),
			Strategies:   repository.NewStrategyRepository(db),
			Campaigns:    repository.NewCampaignRepository(db),
			Activities:   repository.NewActivityRepository(db),
			ClientAssets: repository.NewClientAssetRepository(db),
			Users:        repository.NewUserRepository(db),
		}

		// Snapshots periódicos só fazem sentido para o backend de arquivo
		snapshotService := scheduler.NewSnapshotService(db, cfg)
		if err := snapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots")
		}
	}

	geminiClient := geminiclient.NewClient(cfg)
	analyzer := analyzing.NewService(geminiClient, repos.Activities)

	server, err := api.New(cfg, repos, analyzer)
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
