package channeling

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
	"github.com/vfg2006/store-manager-api/pkg/utils"
)

var maxFeePercent = decimal.NewFromInt(100)

type Channeler interface {
	ListChannels(ctx context.Context) ([]domain.SalesChannel, error)
	CreateChannel(ctx context.Context, req domain.SaveChannelRequest) (*domain.SalesChannel, error)
	UpdateChannel(ctx context.Context, req domain.SaveChannelRequest) (*domain.SalesChannel, error)
	DeleteChannel(ctx context.Context, channelID string) error
}

type Service struct {
	store state.Dispatcher
	now   func() time.Time
}

func NewService(store state.Dispatcher) Channeler {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) ListChannels(_ context.Context) ([]domain.SalesChannel, error) {
	return s.store.Snapshot().Channels, nil
}

func (s *Service) CreateChannel(ctx context.Context, req domain.SaveChannelRequest) (*domain.SalesChannel, error) {
	name, fee, err := validate(req)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewChannelError(err, apiErrors.ErrInternalServer, "", "erro ao gerar identificador")
	}

	channel := domain.SalesChannel{
		ID:         id,
		Name:       name,
		FeePercent: fee,
		Icon:       domain.ParseChannelIcon(req.Icon),
		CreatedAt:  s.now(),
	}

	if err := s.store.Dispatch(ctx, state.ChannelCreated{Channel: channel}); err != nil {
		logrus.WithError(err).WithField("name", name).Error("Erro ao criar canal")
		return nil, NewChannelError(ErrPersistChannel, apiErrors.ErrDatabaseOperation, id, "")
	}

	return &channel, nil
}

// UpdateChannel altera o canal sem tocar nas vendas já registradas, que mantêm
// o snapshot do canal do momento da venda
func (s *Service) UpdateChannel(ctx context.Context, req domain.SaveChannelRequest) (*domain.SalesChannel, error) {
	current, ok := s.store.Snapshot().ChannelByID(req.ID)
	if !ok {
		return nil, NewChannelError(ErrChannelNotFound, apiErrors.ErrChannelNotFound, req.ID, "")
	}

	name, fee, err := validate(req)
	if err != nil {
		return nil, err
	}

	channel := current
	channel.Name = name
	channel.FeePercent = fee
	channel.Icon = domain.ParseChannelIcon(req.Icon)

	if err := s.store.Dispatch(ctx, state.ChannelUpdated{Channel: channel}); err != nil {
		return nil, s.persistError(err, req.ID)
	}

	return &channel, nil
}

func (s *Service) DeleteChannel(ctx context.Context, channelID string) error {
	if _, ok := s.store.Snapshot().ChannelByID(channelID); !ok {
		return NewChannelError(ErrChannelNotFound, apiErrors.ErrChannelNotFound, channelID, "")
	}

	if err := s.store.Dispatch(ctx, state.ChannelDeleted{ChannelID: channelID}); err != nil {
		return s.persistError(err, channelID)
	}

	logrus.WithField("channel_id", channelID).Info("Canal removido")
	return nil
}

func (s *Service) persistError(err error, channelID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewChannelError(ErrChannelNotFound, apiErrors.ErrChannelNotFound, channelID, "")
	}

	logrus.WithError(err).WithField("channel_id", channelID).Error("Erro ao salvar canal")
	return NewChannelError(ErrPersistChannel, apiErrors.ErrDatabaseOperation, channelID, "")
}

func validate(req domain.SaveChannelRequest) (string, decimal.Decimal, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", decimal.Zero, NewChannelError(ErrMissingName, apiErrors.ErrMissingRequiredData, req.ID, "")
	}

	fee := decimal.Zero
	if req.FeePercent != nil {
		fee = *req.FeePercent
	}

	if fee.IsNegative() || fee.GreaterThan(maxFeePercent) {
		return "", decimal.Zero, NewChannelError(ErrInvalidFeePercent, apiErrors.ErrInvalidRequest, req.ID, "a taxa deve estar entre 0 e 100")
	}

	return name, fee, nil
}
