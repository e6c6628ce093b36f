package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/infrastructure/migration"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/config"
	"github.com/vfg2006/store-manager-api/pkg/log"
)

const usage = "uso: script [up|down|seed]"

// script aplica ou reverte o schema e cria os canais padrão do dono configurado
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	switch command {
	case "up":
		err = migration.RunMigrations(cfg.Database.DSN)
	case "down":
		err = migration.RollbackMigrations(cfg.Database.DSN)
	case "seed":
		err = seed(ctx, conn, cfg.Owner.Email)
	default:
		logrus.Fatal(usage)
	}

	if err != nil {
		logrus.WithError(err).WithField("command", command).Fatal("Script falhou")
	}

	logrus.WithFields(logrus.Fields{
		"command":  command,
		"duration": time.Since(startTime).String(),
	}).Info("Script concluído")
}

func seed(ctx context.Context, conn *postgres.Connection, ownerEmail string) error {
	owner, err := repository.NewOwnerRepository(conn).GetOwnerByEmail(ctx, ownerEmail)
	if err != nil {
		return err
	}
	if owner == nil {
		return fmt.Errorf("dono %s não encontrado, inicie a API uma vez antes do seed", ownerEmail)
	}

	_, err = migration.SeedDefaultChannels(ctx, repository.NewChannelRepository(conn), owner.ID)
	return err
}
