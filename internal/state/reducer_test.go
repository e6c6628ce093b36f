package state

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

func TestReduce_CopyOnWrite(t *testing.T) {
	before := Snapshot{
		Sales: []domain.Sale{
			{ID: "s1", Status: domain.SaleStatusActive, Total: decimal.NewFromInt(100)},
		},
		Channels: []domain.SalesChannel{
			{ID: "ch1", Name: "iFood"},
			{ID: "ch2", Name: "Rappi"},
		},
	}

	after := Reduce(before, SaleCancelled{SaleID: "s1", CancelledAt: time.Now()})
	after = Reduce(after, ChannelDeleted{ChannelID: "ch1"})

	assert.Equal(t, domain.SaleStatusActive, before.Sales[0].Status)
	assert.Len(t, before.Channels, 2)

	assert.Equal(t, domain.SaleStatusCancelled, after.Sales[0].Status)
	assert.NotNil(t, after.Sales[0].CancelledAt)
	require.Len(t, after.Channels, 1)
	assert.Equal(t, "ch2", after.Channels[0].ID)
}

func TestReduce(t *testing.T) {
	product := domain.Product{
		ID:        "p1",
		Name:      "Açaí 300ml",
		UnitCost:  decimal.NewFromInt(5),
		SalePrice: decimal.NewFromInt(15),
		CostItems: []domain.ProductCostItem{{ID: "c1", ProductID: "p1", UnitCost: decimal.NewFromInt(5)}},
	}

	tests := []struct {
		name     string
		initial  Snapshot
		action   Action
		validate func(t *testing.T, s Snapshot)
	}{
		{
			name:    "Venda registrada com despesas automáticas",
			initial: Snapshot{},
			action: SaleRegistered{
				Sale:     domain.Sale{ID: "s1", Status: domain.SaleStatusActive},
				Expenses: []domain.SaleExpense{{ID: "e1", SaleID: "s1", Kind: domain.ExpenseKindProductCost}},
			},
			validate: func(t *testing.T, s Snapshot) {
				assert.Len(t, s.Sales, 1)
				assert.Len(t, s.Expenses, 1)
			},
		},
		{
			name:    "Cancelar venda já cancelada não altera a data",
			initial: Snapshot{Sales: []domain.Sale{{ID: "s1", Status: domain.SaleStatusCancelled}}},
			action:  SaleCancelled{SaleID: "s1", CancelledAt: time.Now()},
			validate: func(t *testing.T, s Snapshot) {
				assert.Nil(t, s.Sales[0].CancelledAt)
			},
		},
		{
			name:    "Produto salvo preserva insumos existentes",
			initial: Snapshot{Products: []domain.Product{product}},
			action: ProductSaved{Product: domain.Product{
				ID: "p1", Name: "Açaí 300ml Especial", UnitCost: decimal.NewFromInt(5), SalePrice: decimal.NewFromInt(18),
			}},
			validate: func(t *testing.T, s Snapshot) {
				require.Len(t, s.Products, 1)
				assert.Equal(t, "Açaí 300ml Especial", s.Products[0].Name)
				assert.Len(t, s.Products[0].CostItems, 1)
			},
		},
		{
			name:    "Insumo removido atualiza o custo",
			initial: Snapshot{Products: []domain.Product{product}},
			action:  ProductCostRemoved{ProductID: "p1", ItemID: "c1", UnitCost: decimal.Zero},
			validate: func(t *testing.T, s Snapshot) {
				assert.Empty(t, s.Products[0].CostItems)
				assert.True(t, s.Products[0].UnitCost.IsZero())
			},
		},
		{
			name: "Faturamento mensal substitui o registro do mesmo mês",
			initial: Snapshot{MonthlyRevenue: []domain.MonthlyRevenueRecord{
				{Month: 3, Year: 2024, Revenue: decimal.NewFromInt(100)},
			}},
			action: MonthlyRevenueMerged{Record: domain.MonthlyRevenueRecord{Month: 3, Year: 2024, Revenue: decimal.NewFromInt(300)}},
			validate: func(t *testing.T, s Snapshot) {
				require.Len(t, s.MonthlyRevenue, 1)
				assert.True(t, decimal.NewFromInt(300).Equal(s.MonthlyRevenue[0].Revenue))
			},
		},
		{
			name:    "Configuração da loja atualizada",
			initial: Snapshot{StoreConfig: domain.DefaultStoreConfig()},
			action:  StoreConfigUpdated{Config: domain.StoreConfig{StoreName: "Açaí da Praia", Theme: domain.ThemeDark}},
			validate: func(t *testing.T, s Snapshot) {
				assert.Equal(t, "Açaí da Praia", s.StoreConfig.StoreName)
				assert.Equal(t, domain.ThemeDark, s.StoreConfig.Theme)
			},
		},
		{
			name: "Despesa geral atualizada sem tocar nas demais",
			initial: Snapshot{BusinessExpenses: []domain.BusinessExpense{
				{ID: "d1", Status: domain.BusinessExpenseStatusPending},
				{ID: "d2", Status: domain.BusinessExpenseStatusPending},
			}},
			action: BusinessExpenseUpdated{Expense: domain.BusinessExpense{ID: "d2", Status: domain.BusinessExpenseStatusPaid}},
			validate: func(t *testing.T, s Snapshot) {
				require.Len(t, s.BusinessExpenses, 2)
				assert.Equal(t, domain.BusinessExpenseStatusPending, s.BusinessExpenses[0].Status)
				assert.Equal(t, domain.BusinessExpenseStatusPaid, s.BusinessExpenses[1].Status)
			},
		},
		{
			name:    "Despesa geral removida",
			initial: Snapshot{BusinessExpenses: []domain.BusinessExpense{{ID: "d1"}, {ID: "d2"}}},
			action:  BusinessExpenseDeleted{ExpenseID: "d1"},
			validate: func(t *testing.T, s Snapshot) {
				require.Len(t, s.BusinessExpenses, 1)
				assert.Equal(t, "d2", s.BusinessExpenses[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Reduce(tt.initial, tt.action))
		})
	}
}
