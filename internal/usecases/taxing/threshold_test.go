package taxing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

var brt = time.FixedZone("BRT", -3*60*60)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func activeSale(total string, createdAt time.Time) domain.Sale {
	return domain.Sale{Total: dec(total), Status: domain.SaleStatusActive, CreatedAt: createdAt}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		ytd  string
		want domain.ThresholdStatus
	}{
		{name: "Abaixo da faixa de atenção", ytd: "59999.99", want: domain.ThresholdStatusNormal},
		{name: "Exatamente 60 mil", ytd: "60000", want: domain.ThresholdStatusAttention},
		{name: "Logo abaixo de 71 mil", ytd: "70999.99", want: domain.ThresholdStatusAttention},
		{name: "Exatamente 71 mil", ytd: "71000", want: domain.ThresholdStatusCritical},
		{name: "Acima do limite", ytd: "90000", want: domain.ThresholdStatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(dec(tt.ytd)))
		})
	}
}

func TestComputeThreshold(t *testing.T) {
	cfg := domain.TaxThresholdConfig{AnnualLimit: dec("81000"), ReferenceYear: 2024}

	tests := []struct {
		name     string
		sales    []domain.Sale
		records  []domain.MonthlyRevenueRecord
		cfg      domain.TaxThresholdConfig
		validate func(t *testing.T, m domain.ThresholdMetrics)
	}{
		{
			name: "Sem movimento - tudo zerado com doze meses",
			cfg:  cfg,
			validate: func(t *testing.T, m domain.ThresholdMetrics) {
				require.Len(t, m.Months, 12)
				assert.Equal(t, 1, m.Months[0].Month)
				assert.Equal(t, 12, m.Months[11].Month)
				assert.True(t, m.YearToDate.IsZero())
				assert.True(t, m.PercentOfLimit.IsZero())
				assert.True(t, m.RemainingToLimit.Equal(dec("81000")))
				assert.Equal(t, domain.ThresholdStatusNormal, m.Status)
			},
		},
		{
			name: "Vendas e lançamentos manuais são somados",
			cfg:  cfg,
			sales: []domain.Sale{
				activeSale("30000", time.Date(2024, 3, 10, 12, 0, 0, 0, brt)),
				activeSale("500", time.Date(2023, 12, 31, 12, 0, 0, 0, brt)),
				{Total: dec("9999"), Status: domain.SaleStatusCancelled, CreatedAt: time.Date(2024, 3, 11, 12, 0, 0, 0, brt)},
			},
			records: []domain.MonthlyRevenueRecord{
				{Month: 3, Year: 2024, Revenue: dec("30000"), ProfitDistributed: dec("1000"), PersonalTransfer: dec("200")},
				{Month: 3, Year: 2023, Revenue: dec("70000")},
			},
			validate: func(t *testing.T, m domain.ThresholdMetrics) {
				assert.True(t, m.YearToDate.Equal(dec("60000")))
				assert.Equal(t, domain.ThresholdStatusAttention, m.Status)
				assert.True(t, m.Months[2].SalesRevenue.Equal(dec("30000")))
				assert.True(t, m.Months[2].RecordedRevenue.Equal(dec("30000")))
				assert.True(t, m.Months[2].Revenue.Equal(dec("60000")))
				assert.True(t, m.Months[2].ProfitDistributed.Equal(dec("1000")))
				assert.True(t, m.Months[2].PersonalTransfer.Equal(dec("200")))
				// 60000 / 81000 sem arredondamento
				assert.True(t, m.PercentOfLimit.Equal(dec("6000000").Div(dec("81000"))), "percentual %s", m.PercentOfLimit)
				assert.False(t, m.PercentOfLimit.Equal(dec("74.07")))
			},
		},
		{
			name: "71 mil no ano - crítico",
			cfg:  cfg,
			records: []domain.MonthlyRevenueRecord{
				{Month: 1, Year: 2024, Revenue: dec("71000")},
			},
			validate: func(t *testing.T, m domain.ThresholdMetrics) {
				assert.Equal(t, domain.ThresholdStatusCritical, m.Status)
				assert.True(t, m.RemainingToLimit.Equal(dec("10000")))
			},
		},
		{
			name: "Limite zero - percentual zero e sem folga",
			cfg:  domain.TaxThresholdConfig{AnnualLimit: decimal.Zero, ReferenceYear: 2024},
			records: []domain.MonthlyRevenueRecord{
				{Month: 5, Year: 2024, Revenue: dec("100")},
			},
			validate: func(t *testing.T, m domain.ThresholdMetrics) {
				assert.True(t, m.PercentOfLimit.IsZero())
				assert.True(t, m.RemainingToLimit.IsZero())
			},
		},
		{
			name: "Mês da venda segue o fuso configurado",
			cfg:  cfg,
			sales: []domain.Sale{
				// 01/04 01:00 UTC ainda é 31/03 em Brasília
				activeSale("100", time.Date(2024, 4, 1, 1, 0, 0, 0, time.UTC)),
			},
			validate: func(t *testing.T, m domain.ThresholdMetrics) {
				assert.True(t, m.Months[2].SalesRevenue.Equal(dec("100")))
				assert.True(t, m.Months[3].SalesRevenue.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeThreshold(tt.sales, tt.records, tt.cfg, brt)
			tt.validate(t, m)
		})
	}
}
