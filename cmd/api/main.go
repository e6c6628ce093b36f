package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/infrastructure/migration"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/api"
	"github.com/vfg2006/store-manager-api/internal/api/handler"
	"github.com/vfg2006/store-manager-api/internal/config"
	"github.com/vfg2006/store-manager-api/internal/scheduler"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/store-manager-api/internal/usecases/channeling"
	"github.com/vfg2006/store-manager-api/internal/usecases/configuring"
	"github.com/vfg2006/store-manager-api/internal/usecases/expensing"
	"github.com/vfg2006/store-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/store-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/store-manager-api/internal/usecases/selling"
	"github.com/vfg2006/store-manager-api/internal/usecases/taxing"
	"github.com/vfg2006/store-manager-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	// valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	loc, err := cfg.App.Location()
	if err != nil {
		logrus.WithError(err).Fatalf("Fuso horário inválido: %s", cfg.App.Timezone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Migration.RunOnStart {
		if err := migration.RunMigrations(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	ownerRepo := repository.NewOwnerRepository(pgConn)
	channelRepo := repository.NewChannelRepository(pgConn)

	authenticator := authenticating.NewService(ownerRepo, cfg)

	owner, err := authenticator.EnsureOwner(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o dono da loja")
	}

	if cfg.Migration.SeedChannels {
		if _, err := migration.SeedDefaultChannels(ctx, channelRepo, owner.ID); err != nil {
			logrus.WithError(err).Error("Erro ao criar canais padrão")
		}
	}

	store := state.NewStore(state.Repositories{
		Products:         repository.NewProductRepository(pgConn),
		Channels:         channelRepo,
		Sales:            repository.NewSaleRepository(pgConn),
		MonthlyRevenue:   repository.NewMonthlyRevenueRepository(pgConn),
		Settings:         repository.NewSettingsRepository(pgConn),
		BusinessExpenses: repository.NewBusinessExpenseRepository(pgConn),
	}, owner.ID, cfg.App.PersistenceTimeout)

	loadStart := time.Now()
	if err := store.Load(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o estado da loja")
	}
	logrus.WithFields(logrus.Fields{
		"owner_id": owner.ID,
		"duration": time.Since(loadStart).String(),
	}).Info("Estado da loja carregado")

	taxer := taxing.NewService(store, loc)

	stateReloadService := scheduler.NewStateReloadService(store, cfg, loc)
	thresholdWatchService := scheduler.NewThresholdWatchService(taxer, cfg, loc)

	if err := stateReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do estado")
	} else {
		logrus.Info("Agendador de recarga do estado iniciado com sucesso")
	}

	if err := thresholdWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de acompanhamento do limite do MEI")
	} else {
		logrus.Info("Agendador de acompanhamento do limite do MEI iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Store:         store,
		Authenticator: authenticator,
		Insighter:     insighting.NewService(store, loc),
		Seller:        selling.NewService(store),
		Channeler:     channeling.NewService(store),
		Expenser:      expensing.NewService(store, loc),
		Cataloger:     cataloging.NewService(store),
		Taxer:         taxer,
		Configurator:  configuring.NewService(store),
		Exporter:      exporting.NewService(store, loc),
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeStateReload:    stateReloadService,
			handler.CronJobTypeThresholdWatch: thresholdWatchService,
		},
	}, store.OwnerID, loc)
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
