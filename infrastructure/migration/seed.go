package migration

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/pkg/utils"
	"gopkg.in/yaml.v3"
)

//go:embed default_channels.yaml
var defaultChannelsYAML []byte

type channelSeed struct {
	Name       string `yaml:"name"`
	FeePercent string `yaml:"fee_percent"`
	Icon       string `yaml:"icon"`
}

type channelSeedFile struct {
	Channels []channelSeed `yaml:"channels"`
}

// DefaultChannels devolve os canais padrão na ordem em que devem aparecer
func DefaultChannels() ([]domain.SalesChannel, error) {
	var file channelSeedFile
	if err := yaml.Unmarshal(defaultChannelsYAML, &file); err != nil {
		return nil, fmt.Errorf("erro ao ler canais padrão: %w", err)
	}

	channels := make([]domain.SalesChannel, 0, len(file.Channels))
	for _, seed := range file.Channels {
		fee, err := decimal.NewFromString(seed.FeePercent)
		if err != nil {
			return nil, fmt.Errorf("taxa inválida para o canal %s: %w", seed.Name, err)
		}

		channels = append(channels, domain.SalesChannel{
			Name:       seed.Name,
			FeePercent: fee,
			Icon:       domain.ParseChannelIcon(seed.Icon),
		})
	}

	return channels, nil
}

// SeedDefaultChannels cria os canais padrão apenas quando o dono ainda não tem nenhum.
// Retorna quantos canais foram criados.
func SeedDefaultChannels(ctx context.Context, repo repository.ChannelRepository, ownerID int) (int, error) {
	existing, err := repo.ListChannels(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("erro ao verificar canais existentes: %w", err)
	}

	if len(existing) > 0 {
		logrus.WithField("owner_id", ownerID).Debug("Canais já cadastrados, seed ignorado")
		return 0, nil
	}

	channels, err := DefaultChannels()
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for i := range channels {
		id, err := utils.GenerateID()
		if err != nil {
			return i, fmt.Errorf("erro ao gerar id do canal: %w", err)
		}
		channels[i].ID = id
		// mantém a ordem de criação igual à do arquivo
		channels[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)

		if err := repo.CreateChannel(ctx, ownerID, channels[i]); err != nil {
			return i, fmt.Errorf("erro ao criar canal %s: %w", channels[i].Name, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"channels": len(channels),
	}).Info("Canais padrão criados")

	return len(channels), nil
}
