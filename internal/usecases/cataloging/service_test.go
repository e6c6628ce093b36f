package cataloging

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
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

type decimalMatcher struct {
	want decimal.Decimal
}

func decEq(v string) gomock.Matcher {
	return decimalMatcher{want: dec(v)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "é igual a " + m.want.String()
}

func newTestService(t *testing.T) (*Service, *mocks.MockProductRepository) {
	ctrl := gomock.NewController(t)
	products := mocks.NewMockProductRepository(ctrl)

	store := state.NewStore(state.Repositories{
		Products:         products,
		Channels:         mocks.NewMockChannelRepository(ctrl),
		Sales:            mocks.NewMockSaleRepository(ctrl),
		MonthlyRevenue:   mocks.NewMockMonthlyRevenueRepository(ctrl),
		Settings:         mocks.NewMockSettingsRepository(ctrl),
		BusinessExpenses: mocks.NewMockBusinessExpenseRepository(ctrl),
	}, 1, time.Second)

	return &Service{store: store, now: time.Now}, products
}

func TestService_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.SaveProductRequest
		persist  bool
		wantErr  error
		validate func(t *testing.T, p *domain.ProductResponse)
	}{
		{
			name:    "Produto com custo e preço",
			req:     domain.SaveProductRequest{Name: "Açaí 300ml", UnitCost: decPtr("5"), SalePrice: dec("20")},
			persist: true,
			validate: func(t *testing.T, p *domain.ProductResponse) {
				assert.True(t, p.UnitProfit.Equal(dec("15")))
				assert.True(t, p.ProfitMargin.Equal(dec("75")))
				assert.Empty(t, p.CostItems)
			},
		},
		{
			name:    "Preço zero - margem zero",
			req:     domain.SaveProductRequest{Name: "Brinde", SalePrice: dec("0")},
			persist: true,
			validate: func(t *testing.T, p *domain.ProductResponse) {
				assert.True(t, p.ProfitMargin.IsZero())
				assert.True(t, p.UnitCost.IsZero())
			},
		},
		{
			name:    "Nome vazio",
			req:     domain.SaveProductRequest{Name: " ", SalePrice: dec("1")},
			wantErr: ErrMissingName,
		},
		{
			name:    "Custo negativo",
			req:     domain.SaveProductRequest{Name: "X", UnitCost: decPtr("-1"), SalePrice: dec("1")},
			wantErr: ErrInvalidCost,
		},
		{
			name:    "Preço negativo",
			req:     domain.SaveProductRequest{Name: "X", SalePrice: dec("-1")},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			if tt.persist {
				repo.EXPECT().SaveProduct(gomock.Any(), 1, gomock.Any()).Return(nil)
			}

			p, err := svc.CreateProduct(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, svc.store.Snapshot().Products)
				return
			}

			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestService_CostItems(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().SaveProduct(gomock.Any(), 1, gomock.Any()).Return(nil)
	product, err := svc.CreateProduct(ctx, domain.SaveProductRequest{Name: "Açaí 500ml", SalePrice: dec("25")})
	require.NoError(t, err)

	// 10 copos por 5,00 e 2kg de açaí por 20,00 para 4 porções
	repo.EXPECT().AddCostItem(gomock.Any(), 1, gomock.Any(), decEq("0.5")).Return(nil)
	_, err = svc.AddCostItem(ctx, product.ID, domain.AddProductCostRequest{Name: "Copo", TotalValue: dec("5"), Quantity: 10})
	require.NoError(t, err)

	repo.EXPECT().AddCostItem(gomock.Any(), 1, gomock.Any(), decEq("5.5")).Return(nil)
	withPulp, err := svc.AddCostItem(ctx, product.ID, domain.AddProductCostRequest{Name: "Polpa", TotalValue: dec("20"), Quantity: 4})
	require.NoError(t, err)

	require.Len(t, withPulp.CostItems, 2)
	assert.True(t, withPulp.UnitCost.Equal(dec("5.5")))
	assert.True(t, withPulp.UnitProfit.Equal(dec("19.5")))

	cupID := withPulp.CostItems[0].ID
	repo.EXPECT().RemoveCostItem(gomock.Any(), 1, product.ID, cupID, decEq("5")).Return(nil)
	withoutCup, err := svc.RemoveCostItem(ctx, product.ID, cupID)
	require.NoError(t, err)

	require.Len(t, withoutCup.CostItems, 1)
	assert.True(t, withoutCup.UnitCost.Equal(dec("5")))

	_, err = svc.RemoveCostItem(ctx, product.ID, "nao-existe")
	var prodErr *ProductError
	require.True(t, errors.As(err, &prodErr))
	assert.Equal(t, apiErrors.ErrCostItemNotFound, prodErr.ErrorCode())

	_, err = svc.AddCostItem(ctx, product.ID, domain.AddProductCostRequest{Name: "Colher", TotalValue: dec("3"), Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddCostItem(ctx, "nao-existe", domain.AddProductCostRequest{Name: "Colher", TotalValue: dec("3"), Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_UpdateProduct(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().SaveProduct(gomock.Any(), 1, gomock.Any()).Return(nil)
	product, err := svc.CreateProduct(ctx, domain.SaveProductRequest{Name: "Açaí 1L", UnitCost: decPtr("10"), SalePrice: dec("35")})
	require.NoError(t, err)

	repo.EXPECT().SaveProduct(gomock.Any(), 1, gomock.Any()).Return(nil)
	updated, err := svc.UpdateProduct(ctx, domain.SaveProductRequest{ID: product.ID, Name: "Açaí 1 litro", SalePrice: dec("38")})
	require.NoError(t, err)

	assert.Equal(t, "Açaí 1 litro", updated.Name)
	assert.True(t, updated.UnitCost.Equal(dec("10")))
	assert.True(t, updated.SalePrice.Equal(dec("38")))
	assert.Equal(t, product.CreatedAt, updated.CreatedAt)

	_, err = svc.UpdateProduct(ctx, domain.SaveProductRequest{ID: "nao-existe", Name: "X"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_CreateProduct_FalhaNaPersistencia(t *testing.T) {
	svc, repo := newTestService(t)
	repo.EXPECT().SaveProduct(gomock.Any(), 1, gomock.Any()).Return(errors.New("falha"))

	_, err := svc.CreateProduct(context.Background(), domain.SaveProductRequest{Name: "X", SalePrice: dec("1")})

	assert.ErrorIs(t, err, ErrPersistProduct)
	assert.Empty(t, svc.store.Snapshot().Products)
}
