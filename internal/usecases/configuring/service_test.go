package configuring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func newTestService(t *testing.T) (*Service, *mocks.MockSettingsRepository) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsRepository(ctrl)

	store := state.NewStore(state.Repositories{
		Products:         mocks.NewMockProductRepository(ctrl),
		Channels:         mocks.NewMockChannelRepository(ctrl),
		Sales:            mocks.NewMockSaleRepository(ctrl),
		MonthlyRevenue:   mocks.NewMockMonthlyRevenueRepository(ctrl),
		Settings:         settings,
		BusinessExpenses: mocks.NewMockBusinessExpenseRepository(ctrl),
	}, 1, time.Second)

	return &Service{store: store, now: time.Now}, settings
}

func TestService_UpdateStoreConfig(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.UpdateStoreConfigRequest
		persist  bool
		wantErr  error
		validate func(t *testing.T, cfg *domain.StoreConfig)
	}{
		{
			name:    "Atualiza nome e tema",
			req:     domain.UpdateStoreConfigRequest{StoreName: strPtr(" Açaí da Praia "), Theme: strPtr("Escuro")},
			persist: true,
			validate: func(t *testing.T, cfg *domain.StoreConfig) {
				assert.Equal(t, "Açaí da Praia", cfg.StoreName)
				assert.Equal(t, domain.ThemeDark, cfg.Theme)
			},
		},
		{
			name:    "Campos ausentes mantêm o valor atual",
			req:     domain.UpdateStoreConfigRequest{LogoURL: strPtr("https://cdn.exemplo.com/logo.png")},
			persist: true,
			validate: func(t *testing.T, cfg *domain.StoreConfig) {
				assert.Equal(t, domain.DefaultStoreName, cfg.StoreName)
				assert.Equal(t, domain.ThemeLight, cfg.Theme)
				assert.Equal(t, "https://cdn.exemplo.com/logo.png", cfg.LogoURL)
			},
		},
		{
			name:    "Nome vazio",
			req:     domain.UpdateStoreConfigRequest{StoreName: strPtr("  ")},
			wantErr: ErrMissingStoreName,
		},
		{
			name:    "Tema fora da lista",
			req:     domain.UpdateStoreConfigRequest{Theme: strPtr("neon")},
			wantErr: ErrInvalidTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			if tt.persist {
				repo.EXPECT().SaveStoreConfig(gomock.Any(), 1, gomock.Any()).Return(nil)
			}

			cfg, err := svc.UpdateStoreConfig(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.DefaultStoreConfig(), svc.store.Snapshot().StoreConfig)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)

			current, err := svc.GetStoreConfig(context.Background())
			require.NoError(t, err)
			assert.Equal(t, *cfg, *current)
		})
	}
}

func TestService_UpdateTaxConfig(t *testing.T) {
	limit := decimal.NewFromInt(97000)
	negative := decimal.NewFromInt(-1)
	year := 2025
	zeroYear := 0

	tests := []struct {
		name    string
		req     domain.UpdateTaxConfigRequest
		repoErr error
		persist bool
		wantErr error
	}{
		{
			name:    "Novo limite e ano",
			req:     domain.UpdateTaxConfigRequest{AnnualLimit: &limit, ReferenceYear: &year},
			persist: true,
		},
		{
			name:    "Limite negativo",
			req:     domain.UpdateTaxConfigRequest{AnnualLimit: &negative},
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "Ano zero",
			req:     domain.UpdateTaxConfigRequest{ReferenceYear: &zeroYear},
			wantErr: ErrInvalidYear,
		},
		{
			name:    "Falha ao salvar",
			req:     domain.UpdateTaxConfigRequest{ReferenceYear: &year},
			persist: true,
			repoErr: errors.New("falha"),
			wantErr: ErrPersistSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			before := svc.store.Snapshot().TaxConfig
			if tt.persist {
				repo.EXPECT().SaveTaxConfig(gomock.Any(), 1, gomock.Any()).Return(tt.repoErr)
			}

			cfg, err := svc.UpdateTaxConfig(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, svc.store.Snapshot().TaxConfig)
				return
			}

			require.NoError(t, err)
			assert.True(t, cfg.AnnualLimit.Equal(limit))
			assert.Equal(t, 2025, cfg.ReferenceYear)
		})
	}
}
