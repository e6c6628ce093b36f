package configuring

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

type Configurator interface {
	GetStoreConfig(ctx context.Context) (*domain.StoreConfig, error)
	UpdateStoreConfig(ctx context.Context, req domain.UpdateStoreConfigRequest) (*domain.StoreConfig, error)
	GetTaxConfig(ctx context.Context) (*domain.TaxThresholdConfig, error)
	UpdateTaxConfig(ctx context.Context, req domain.UpdateTaxConfigRequest) (*domain.TaxThresholdConfig, error)
}

type Service struct {
	store state.Dispatcher
	now   func() time.Time
}

func NewService(store state.Dispatcher) Configurator {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) GetStoreConfig(_ context.Context) (*domain.StoreConfig, error) {
	cfg := s.store.Snapshot().StoreConfig
	return &cfg, nil
}

// UpdateStoreConfig aplica apenas os campos enviados
func (s *Service) UpdateStoreConfig(ctx context.Context, req domain.UpdateStoreConfigRequest) (*domain.StoreConfig, error) {
	cfg := s.store.Snapshot().StoreConfig

	if req.StoreName != nil {
		name := strings.TrimSpace(*req.StoreName)
		if name == "" {
			return nil, NewSettingsError(ErrMissingStoreName, apiErrors.ErrMissingRequiredData, "store_name", "")
		}
		cfg.StoreName = name
	}

	if req.LogoURL != nil {
		cfg.LogoURL = strings.TrimSpace(*req.LogoURL)
	}

	if req.Theme != nil {
		theme := domain.Theme(strings.ToLower(strings.TrimSpace(*req.Theme)))
		if !theme.Valid() {
			return nil, NewSettingsError(ErrInvalidTheme, apiErrors.ErrInvalidRequest, "theme", "use claro, escuro ou cinza")
		}
		cfg.Theme = theme
	}

	cfg.UpdatedAt = s.now()

	if err := s.store.Dispatch(ctx, state.StoreConfigUpdated{Config: cfg}); err != nil {
		logrus.WithError(err).Error("Erro ao salvar configuração da loja")
		return nil, NewSettingsError(ErrPersistSettings, apiErrors.ErrDatabaseOperation, "", "")
	}

	return &cfg, nil
}

func (s *Service) GetTaxConfig(_ context.Context) (*domain.TaxThresholdConfig, error) {
	cfg := s.store.Snapshot().TaxConfig
	return &cfg, nil
}

func (s *Service) UpdateTaxConfig(ctx context.Context, req domain.UpdateTaxConfigRequest) (*domain.TaxThresholdConfig, error) {
	cfg := s.store.Snapshot().TaxConfig

	if req.AnnualLimit != nil {
		if req.AnnualLimit.IsNegative() {
			return nil, NewSettingsError(ErrInvalidLimit, apiErrors.ErrInvalidRequest, "annual_limit", "o limite não pode ser negativo")
		}
		cfg.AnnualLimit = *req.AnnualLimit
	}

	if req.ReferenceYear != nil {
		if *req.ReferenceYear <= 0 {
			return nil, NewSettingsError(ErrInvalidYear, apiErrors.ErrInvalidRequest, "reference_year", "")
		}
		cfg.ReferenceYear = *req.ReferenceYear
	}

	cfg.UpdatedAt = s.now()

	if err := s.store.Dispatch(ctx, state.TaxConfigUpdated{Config: cfg}); err != nil {
		logrus.WithError(err).Error("Erro ao salvar configuração do MEI")
		return nil, NewSettingsError(ErrPersistSettings, apiErrors.ErrDatabaseOperation, "", "")
	}

	return &cfg, nil
}
