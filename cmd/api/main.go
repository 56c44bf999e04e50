package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/infrastructure/storage"
	"github.com/vfg2006/ads-sync-api/internal/api"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/scheduler"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

func main() {
	log.Setup(os.Getenv("APP_ENV"))

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	integrationRepo := repository.NewIntegrationRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	creativeAssetRepo := repository.NewCreativeAssetRepository(pgConn)
	audienceRepo := repository.NewAudienceRepository(pgConn)
	performanceRepo := repository.NewPerformanceMetricRepository(pgConn)

	uploader := s3uploader(cfg)

	// Cada execução de sincronização recebe um integrador ligado à
	// credencial daquela execução
	integratorFactory := func(accessToken string) syncing.PlatformIntegrator {
		return meta.New(cfg, metaclient.NewClient(cfg, accessToken), uploader)
	}

	syncer := syncing.NewService(
		cfg,
		integratorFactory,
		integrationRepo,
		accountRepo,
		campaignRepo,
		adSetRepo,
		adRepo,
		creativeAssetRepo,
		audienceRepo,
		performanceRepo,
	)

	syncService := scheduler.NewPlatformSyncService(syncer, cfg)

	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização")
	} else {
		logrus.Info("Agendador de sincronização iniciado com sucesso")
	}

	server, err := api.New(cfg, syncService, accountRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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

// s3uploader cria o storage de criativos. Sem credenciais configuradas
// o espelhamento fica desligado e os criativos mantêm a URL remota
func s3uploader(cfg *config.Config) storage.Uploader {
	if cfg.Storage.Bucket == "" || cfg.Storage.AccessKey == "" {
		logrus.Info("Storage de criativos não configurado, espelhamento desligado")
		return nil
	}

	uploader, err := storage.NewS3Storage(cfg.Storage)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao inicializar o storage de criativos, espelhamento desligado")
		return nil
	}

	return uploader
}
