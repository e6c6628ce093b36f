package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
)

var brt = time.FixedZone("BRT", -3*60*60)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func sale(id, channelID string, total, subtotal, shipping, fee string, status domain.SaleStatus, createdAt time.Time) domain.Sale {
	return domain.Sale{
		ID:          id,
		ChannelID:   channelID,
		Channel:     domain.ChannelSnapshot{ID: channelID, Name: "snap-" + channelID, Icon: domain.ChannelIconStore},
		Subtotal:    dec(subtotal),
		ShippingFee: dec(shipping),
		ChannelFee:  dec(fee),
		Total:       dec(total),
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func TestWindowsAt(t *testing.T) {
	// quarta-feira
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, brt)

	w := WindowsAt(now)

	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, brt), w.Today)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, brt), w.Week)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, brt), w.Month)
}

func TestComputeDashboard(t *testing.T) {
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, brt)
	channels := []domain.SalesChannel{
		{ID: "ifood", Name: "iFood", FeePercent: dec("12"), Icon: domain.ChannelIconTruck},
		{ID: "balcao", Name: "Ponto Físico", Icon: domain.ChannelIconStore},
	}

	tests := []struct {
		name     string
		sales    []domain.Sale
		expenses []domain.SaleExpense
		validate func(t *testing.T, m domain.DashboardMetrics)
	}{
		{
			name: "Sem vendas - todas as métricas zeradas",
			validate: func(t *testing.T, m domain.DashboardMetrics) {
				for _, w := range []domain.WindowMetrics{m.Today, m.Week, m.Month} {
					assert.Equal(t, 0, w.SalesCount)
					assert.True(t, w.Revenue.IsZero())
					assert.True(t, w.Margin.IsZero())
					assert.True(t, w.AverageTicket.IsZero())
				}
				assert.Empty(t, m.Channels)
			},
		},
		{
			name: "Vendas distribuídas entre as janelas",
			sales: []domain.Sale{
				sale("s1", "ifood", "100", "100", "0", "0", domain.SaleStatusActive, now.Add(-time.Hour)),
				sale("s2", "balcao", "50", "50", "0", "0", domain.SaleStatusActive, time.Date(2024, 3, 11, 10, 0, 0, 0, brt)),
				sale("s3", "balcao", "30", "30", "0", "0", domain.SaleStatusActive, time.Date(2024, 3, 2, 10, 0, 0, 0, brt)),
				sale("s4", "ifood", "999", "999", "0", "0", domain.SaleStatusActive, time.Date(2024, 2, 28, 10, 0, 0, 0, brt)),
			},
			validate: func(t *testing.T, m domain.DashboardMetrics) {
				assert.Equal(t, 1, m.Today.SalesCount)
				assert.True(t, m.Today.Revenue.Equal(dec("100")))
				assert.Equal(t, 2, m.Week.SalesCount)
				assert.True(t, m.Week.Revenue.Equal(dec("150")))
				assert.True(t, m.Week.AverageTicket.Equal(dec("75")))
				assert.Equal(t, 3, m.Month.SalesCount)
				assert.True(t, m.Month.Revenue.Equal(dec("180")))
			},
		},
		{
			name: "Lucro é receita menos despesas das vendas da janela",
			sales: []domain.Sale{
				sale("s1", "ifood", "100", "100", "0", "0", domain.SaleStatusActive, now.Add(-time.Hour)),
				sale("s2", "ifood", "80", "80", "0", "0", domain.SaleStatusActive, time.Date(2024, 2, 20, 10, 0, 0, 0, brt)),
			},
			expenses: []domain.SaleExpense{
				{ID: "e1", SaleID: "s1", Kind: domain.ExpenseKindProductCost, Amount: dec("40")},
				{ID: "e2", SaleID: "s1", Kind: domain.ExpenseKindExtra, Amount: dec("10")},
				{ID: "e3", SaleID: "s2", Kind: domain.ExpenseKindProductCost, Amount: dec("30")},
			},
			validate: func(t *testing.T, m domain.DashboardMetrics) {
				assert.True(t, m.Today.Expense.Equal(dec("50")))
				assert.True(t, m.Today.Profit.Equal(m.Today.Revenue.Sub(m.Today.Expense)))
				assert.True(t, m.Today.Margin.Equal(dec("50")))
				assert.True(t, m.Month.Expense.Equal(dec("50")))
			},
		},
		{
			name: "Venda cancelada não entra em nenhuma métrica",
			sales: []domain.Sale{
				sale("s1", "ifood", "100", "100", "0", "0", domain.SaleStatusActive, now.Add(-time.Hour)),
				sale("s2", "ifood", "500", "500", "0", "0", domain.SaleStatusCancelled, now.Add(-time.Minute)),
			},
			expenses: []domain.SaleExpense{
				{ID: "e1", SaleID: "s2", Amount: dec("200")},
			},
			validate: func(t *testing.T, m domain.DashboardMetrics) {
				assert.Equal(t, 1, m.Today.SalesCount)
				assert.True(t, m.Today.Revenue.Equal(dec("100")))
				assert.True(t, m.Today.Expense.IsZero())
				assert.Equal(t, 1, m.ActiveSales)
				assert.Equal(t, 1, m.CancelledSales)
				require.Len(t, m.Channels, 1)
				assert.Equal(t, 1, m.Channels[0].SalesCount)
			},
		},
		{
			name: "Margem e ticket médio sem arredondamento",
			sales: []domain.Sale{
				sale("s1", "balcao", "10", "10", "0", "0", domain.SaleStatusActive, now.Add(-time.Hour)),
				sale("s2", "balcao", "10", "10", "0", "0", domain.SaleStatusActive, now.Add(-2*time.Hour)),
				sale("s3", "balcao", "11", "11", "0", "0", domain.SaleStatusActive, now.Add(-3*time.Hour)),
			},
			expenses: []domain.SaleExpense{
				{ID: "e1", SaleID: "s1", Amount: dec("10")},
			},
			validate: func(t *testing.T, m domain.DashboardMetrics) {
				assert.True(t, m.Today.Margin.Equal(dec("2100").Div(dec("31"))), "margem %s", m.Today.Margin)
				assert.True(t, m.Today.AverageTicket.Equal(dec("31").Div(dec("3"))), "ticket %s", m.Today.AverageTicket)
				assert.False(t, m.Today.AverageTicket.Equal(dec("10.33")))
			},
		},
		{
			name: "Despesa entra na janela da venda e não na data do lançamento",
			sales: []domain.Sale{
				sale("s1", "ifood", "80", "80", "0", "0", domain.SaleStatusActive, time.Date(2024, 2, 20, 10, 0, 0, 0, brt)),
			},
			expenses: []domain.SaleExpense{
				{ID: "e1", SaleID: "s1", Kind: domain.ExpenseKindExtra, Amount: dec("15"), CreatedAt: now.Add(-time.Hour)},
			},
			validate: func(t *testing.T, m domain.DashboardMetrics) {
				assert.True(t, m.Today.Expense.IsZero())
				assert.True(t, m.Month.Expense.IsZero())
			},
		},
		{
			name: "Receita zero com despesa - margem zero",
			sales: []domain.Sale{
				sale("s1", "balcao", "0", "0", "0", "0", domain.SaleStatusActive, now.Add(-time.Hour)),
			},
			expenses: []domain.SaleExpense{
				{ID: "e1", SaleID: "s1", Amount: dec("5")},
			},
			validate: func(t *testing.T, m domain.DashboardMetrics) {
				assert.True(t, m.Today.Margin.IsZero())
				assert.True(t, m.Today.Profit.Equal(dec("-5")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeDashboard(tt.sales, channels, tt.expenses, now)
			tt.validate(t, m)
		})
	}
}

func TestComputeDashboard_NaoAlteraEntradas(t *testing.T) {
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, brt)
	sales := []domain.Sale{
		sale("s1", "ifood", "100", "100", "0", "0", domain.SaleStatusActive, now.Add(-time.Hour)),
	}
	channels := []domain.SalesChannel{{ID: "ifood", Name: "iFood"}}

	first := ComputeDashboard(sales, channels, nil, now)
	second := ComputeDashboard(sales, channels, nil, now)

	assert.Equal(t, first, second)
	assert.Equal(t, "snap-ifood", sales[0].Channel.Name)
}

func TestChannelBreakdown(t *testing.T) {
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, brt)
	channels := []domain.SalesChannel{
		{ID: "balcao", Name: "Ponto Físico", Icon: domain.ChannelIconStore},
		{ID: "ifood", Name: "iFood", Icon: domain.ChannelIconTruck},
		{ID: "whats", Name: "WhatsApp", Icon: domain.ChannelIconPhone},
	}
	sales := []domain.Sale{
		sale("s1", "ifood", "99", "100", "10", "11", domain.SaleStatusActive, now),
		sale("s2", "ifood", "45", "50", "0", "5", domain.SaleStatusActive, now),
		sale("s3", "balcao", "20", "20", "0", "0", domain.SaleStatusActive, now),
		sale("s4", "rappi", "30", "33", "0", "3", domain.SaleStatusActive, now),
		sale("s5", "whats", "10", "10", "0", "0", domain.SaleStatusCancelled, now),
	}

	out := ChannelBreakdown(sales, channels)

	require.Len(t, out, 3)

	assert.Equal(t, "balcao", out[0].ChannelID)
	assert.Equal(t, 1, out[0].SalesCount)

	assert.Equal(t, "ifood", out[1].ChannelID)
	assert.Equal(t, "iFood", out[1].ChannelName)
	assert.Equal(t, 2, out[1].SalesCount)
	assert.True(t, out[1].Gross.Equal(dec("160")))
	assert.True(t, out[1].Fees.Equal(dec("16")))
	assert.True(t, out[1].Net.Equal(dec("144")))
	assert.False(t, out[1].Deleted)

	// canal removido aparece pelo snapshot, depois dos atuais
	assert.Equal(t, "rappi", out[2].ChannelID)
	assert.Equal(t, "snap-rappi", out[2].ChannelName)
	assert.True(t, out[2].Deleted)
}

type stubReader struct {
	snapshot state.Snapshot
}

func (r stubReader) Snapshot() state.Snapshot {
	return r.snapshot
}

func TestService_GetDashboard(t *testing.T) {
	now := time.Date(2024, 3, 13, 18, 30, 0, 0, time.UTC)
	reader := stubReader{snapshot: state.Snapshot{
		Channels: []domain.SalesChannel{{ID: "ifood", Name: "iFood"}},
		Sales: []domain.Sale{
			// 13/03 00:30 UTC ainda é 12/03 no horário de Brasília
			sale("s1", "ifood", "100", "100", "0", "0", domain.SaleStatusActive, time.Date(2024, 3, 13, 0, 30, 0, 0, time.UTC)),
			sale("s2", "ifood", "40", "40", "0", "0", domain.SaleStatusActive, time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)),
		},
	}}

	svc := &Service{store: reader, loc: brt, now: func() time.Time { return now }}

	m, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, m.Today.SalesCount)
	assert.True(t, m.Today.Revenue.Equal(dec("40")))
	assert.Equal(t, 2, m.Week.SalesCount)
}
