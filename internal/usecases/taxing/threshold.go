package taxing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/pkg/utils"
)

// Faixas fixas do acompanhamento do limite anual, não acompanham o limite configurado
var (
	AttentionThreshold = decimal.NewFromInt(60000)
	CriticalThreshold  = decimal.NewFromInt(71000)
)

// StatusFor classifica o faturamento acumulado no ano
func StatusFor(yearToDate decimal.Decimal) domain.ThresholdStatus {
	switch {
	case yearToDate.GreaterThanOrEqual(CriticalThreshold):
		return domain.ThresholdStatusCritical
	case yearToDate.GreaterThanOrEqual(AttentionThreshold):
		return domain.ThresholdStatusAttention
	default:
		return domain.ThresholdStatusNormal
	}
}

// ComputeThreshold soma as vendas ativas do ano de referência com o faturamento
// lançado manualmente e compara com o limite anual. As duas fontes são somadas
// sem deduplicação.
func ComputeThreshold(sales []domain.Sale, records []domain.MonthlyRevenueRecord, cfg domain.TaxThresholdConfig, loc *time.Location) domain.ThresholdMetrics {
	months := make([]domain.MonthlyBreakdown, 12)
	for i := range months {
		months[i] = domain.MonthlyBreakdown{
			Month:             i + 1,
			Revenue:           decimal.Zero,
			SalesRevenue:      decimal.Zero,
			RecordedRevenue:   decimal.Zero,
			ProfitDistributed: decimal.Zero,
			PersonalTransfer:  decimal.Zero,
		}
	}

	for _, s := range sales {
		if !s.IsActive() {
			continue
		}
		created := s.CreatedAt.In(loc)
		if created.Year() != cfg.ReferenceYear {
			continue
		}
		m := &months[created.Month()-1]
		m.SalesRevenue = m.SalesRevenue.Add(s.Total)
	}

	for _, r := range records {
		if r.Year != cfg.ReferenceYear || r.Month < 1 || r.Month > 12 {
			continue
		}
		m := &months[r.Month-1]
		m.RecordedRevenue = m.RecordedRevenue.Add(r.Revenue)
		m.ProfitDistributed = m.ProfitDistributed.Add(r.ProfitDistributed)
		m.PersonalTransfer = m.PersonalTransfer.Add(r.PersonalTransfer)
	}

	ytd := decimal.Zero
	for i := range months {
		months[i].Revenue = months[i].SalesRevenue.Add(months[i].RecordedRevenue)
		ytd = ytd.Add(months[i].Revenue)
	}

	remaining := cfg.AnnualLimit.Sub(ytd)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return domain.ThresholdMetrics{
		ReferenceYear:    cfg.ReferenceYear,
		AnnualLimit:      cfg.AnnualLimit,
		YearToDate:       ytd,
		PercentOfLimit:   utils.Percent(ytd, cfg.AnnualLimit),
		RemainingToLimit: remaining,
		Status:           StatusFor(ytd),
		Months:           months,
	}
}
