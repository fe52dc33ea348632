package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/smartstoreclient"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/repository"
	"github.com/vfg2006/smartstore-sales-api/internal/api"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
	"github.com/vfg2006/smartstore-sales-api/internal/scheduler"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/estimating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/registry"
	"github.com/vfg2006/smartstore-sales-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	storeRegistry := registry.NewService(storeRepo, cfg.SmartStore.BaseURL)

	smartStoreClient := smartstoreclient.NewClient(cfg)
	smartStoreIntegrator := smartstore.New(cfg, smartStoreClient)

	productLister := smartstore.NewProductLister(cfg, smartStoreClient)
	if browser, ok := productLister.(*smartstore.BrowserProductLister); ok {
		defer browser.Close()
	}

	salesEstimator := estimating.NewService(cfg, smartStoreIntegrator, productLister, storeRepo)

	sessionCheckService := scheduler.NewSessionCheckService(smartStoreIntegrator, cfg)
	if err := sessionCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de sessão")
	}

	server, err := api.New(
		cfg,
		salesEstimator,
		storeRegistry,
		authenticator,
		sessionCheckService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource garante que o .env ao lado do binário seja encontrado em `go run`
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do código")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
