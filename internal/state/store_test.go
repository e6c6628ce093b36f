package state

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type storeMocks struct {
	products *mocks.MockProductRepository
	channels *mocks.MockChannelRepository
	sales    *mocks.MockSaleRepository
	monthly  *mocks.MockMonthlyRevenueRepository
	settings *mocks.MockSettingsRepository
	business *mocks.MockBusinessExpenseRepository
}

func newTestStore(t *testing.T) (*Store, storeMocks) {
	ctrl := gomock.NewController(t)
	m := storeMocks{
		products: mocks.NewMockProductRepository(ctrl),
		channels: mocks.NewMockChannelRepository(ctrl),
		sales:    mocks.NewMockSaleRepository(ctrl),
		monthly:  mocks.NewMockMonthlyRevenueRepository(ctrl),
		settings: mocks.NewMockSettingsRepository(ctrl),
		business: mocks.NewMockBusinessExpenseRepository(ctrl),
	}

	store := NewStore(Repositories{
		Products:         m.products,
		Channels:         m.channels,
		Sales:            m.sales,
		MonthlyRevenue:   m.monthly,
		Settings:         m.settings,
		BusinessExpenses: m.business,
	}, 1, time.Second)

	return store, m
}

func TestStore_Dispatch(t *testing.T) {
	ctx := context.Background()
	channel := domain.SalesChannel{ID: "ch1", Name: "iFood", FeePercent: decimal.NewFromInt(12), Icon: domain.ChannelIconTruck}

	tests := []struct {
		name     string
		action   Action
		setup    func(m storeMocks)
		wantErr  bool
		validate func(t *testing.T, snap Snapshot)
	}{
		{
			name:   "Canal criado após persistência",
			action: ChannelCreated{Channel: channel},
			setup: func(m storeMocks) {
				m.channels.EXPECT().CreateChannel(gomock.Any(), 1, channel).Return(nil)
			},
			validate: func(t *testing.T, snap Snapshot) {
				require.Len(t, snap.Channels, 1)
				assert.Equal(t, "iFood", snap.Channels[0].Name)
			},
		},
		{
			name:   "Falha na persistência mantém o estado",
			action: ChannelCreated{Channel: channel},
			setup: func(m storeMocks) {
				m.channels.EXPECT().CreateChannel(gomock.Any(), 1, channel).Return(assert.AnError)
			},
			wantErr: true,
			validate: func(t *testing.T, snap Snapshot) {
				assert.Empty(t, snap.Channels)
			},
		},
		{
			name: "Faturamento mensal usa o registro somado pelo banco",
			action: MonthlyRevenueMerged{Record: domain.MonthlyRevenueRecord{
				Month: 3, Year: 2024, ProfitDistributed: decimal.NewFromInt(500),
			}},
			setup: func(m storeMocks) {
				m.monthly.EXPECT().MergeMonthlyRevenue(gomock.Any(), 1, gomock.Any()).Return(&domain.MonthlyRevenueRecord{
					ID: "rec1", Month: 3, Year: 2024, ProfitDistributed: decimal.NewFromInt(1000),
				}, nil)
			},
			validate: func(t *testing.T, snap Snapshot) {
				rec, ok := snap.MonthlyRevenueFor(3, 2024)
				require.True(t, ok)
				assert.True(t, decimal.NewFromInt(1000).Equal(rec.ProfitDistributed))
			},
		},
		{
			name: "Despesa geral criada após persistência",
			action: BusinessExpenseCreated{Expense: domain.BusinessExpense{
				ID: "d1", Description: "Aluguel", Category: domain.BusinessExpenseCategoryRent, Amount: decimal.NewFromInt(2800),
			}},
			setup: func(m storeMocks) {
				m.business.EXPECT().CreateBusinessExpense(gomock.Any(), 1, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, snap Snapshot) {
				e, ok := snap.BusinessExpenseByID("d1")
				require.True(t, ok)
				assert.Equal(t, "Aluguel", e.Description)
			},
		},
		{
			name:   "Despesa geral inexistente não é removida do estado",
			action: BusinessExpenseDeleted{ExpenseID: "d9"},
			setup: func(m storeMocks) {
				m.business.EXPECT().DeleteBusinessExpense(gomock.Any(), 1, "d9").Return(repository.ErrNotFound)
			},
			wantErr: true,
			validate: func(t *testing.T, snap Snapshot) {
				assert.Empty(t, snap.BusinessExpenses)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, m := newTestStore(t)
			tt.setup(m)

			err := store.Dispatch(ctx, tt.action)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			tt.validate(t, store.Snapshot())
		})
	}
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Carrega coleções e aplica configurações padrão", func(t *testing.T) {
		store, m := newTestStore(t)
		m.products.EXPECT().ListProducts(gomock.Any(), 1).Return([]domain.Product{{ID: "p1", Name: "Açaí 500ml"}}, nil)
		m.channels.EXPECT().ListChannels(gomock.Any(), 1).Return(nil, nil)
		m.sales.EXPECT().ListSales(gomock.Any(), 1).Return([]domain.Sale{{ID: "s1", Status: domain.SaleStatusActive}}, nil)
		m.sales.EXPECT().ListExpenses(gomock.Any(), 1).Return(nil, nil)
		m.monthly.EXPECT().ListMonthlyRevenue(gomock.Any(), 1).Return(nil, nil)
		m.settings.EXPECT().GetStoreConfig(gomock.Any(), 1).Return(nil, nil)
		m.settings.EXPECT().GetTaxConfig(gomock.Any(), 1).Return(nil, nil)
		m.business.EXPECT().ListBusinessExpenses(gomock.Any(), 1).Return([]domain.BusinessExpense{{ID: "d1"}}, nil)

		require.NoError(t, store.Load(ctx))

		snap := store.Snapshot()
		assert.Len(t, snap.Products, 1)
		assert.Len(t, snap.Sales, 1)
		assert.NotNil(t, snap.Channels)
		assert.Len(t, snap.BusinessExpenses, 1)
		assert.Equal(t, domain.DefaultStoreName, snap.StoreConfig.StoreName)
		assert.True(t, decimal.NewFromInt(domain.DefaultAnnualLimit).Equal(snap.TaxConfig.AnnualLimit))
	})

	t.Run("Erro em uma coleção não troca o snapshot", func(t *testing.T) {
		store, m := newTestStore(t)
		m.products.EXPECT().ListProducts(gomock.Any(), 1).Return([]domain.Product{{ID: "p1"}}, nil).AnyTimes()
		m.channels.EXPECT().ListChannels(gomock.Any(), 1).Return(nil, assert.AnError).AnyTimes()
		m.sales.EXPECT().ListSales(gomock.Any(), 1).Return(nil, nil).AnyTimes()
		m.sales.EXPECT().ListExpenses(gomock.Any(), 1).Return(nil, nil).AnyTimes()
		m.monthly.EXPECT().ListMonthlyRevenue(gomock.Any(), 1).Return(nil, nil).AnyTimes()
		m.settings.EXPECT().GetStoreConfig(gomock.Any(), 1).Return(nil, nil).AnyTimes()
		m.settings.EXPECT().GetTaxConfig(gomock.Any(), 1).Return(nil, nil).AnyTimes()
		m.business.EXPECT().ListBusinessExpenses(gomock.Any(), 1).Return(nil, nil).AnyTimes()

		err := store.Load(ctx)
		assert.Error(t, err)
		assert.Empty(t, store.Snapshot().Products)
	})
}
