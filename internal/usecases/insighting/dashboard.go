package insighting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/pkg/utils"
)

// Windows são os inícios das janelas de hoje, semana e mês no fuso de now
type Windows struct {
	Today time.Time
	Week  time.Time
	Month time.Time
}

// WindowsAt calcula as janelas a partir de now. A semana começa no domingo.
func WindowsAt(now time.Time) Windows {
	y, m, d := now.Date()
	loc := now.Location()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	return Windows{
		Today: today,
		Week:  today.AddDate(0, 0, -int(now.Weekday())),
		Month: time.Date(y, m, 1, 0, 0, 0, 0, loc),
	}
}

// ComputeDashboard recalcula todas as métricas a partir das coleções recebidas.
// Não altera as entradas e não guarda nada entre chamadas.
func ComputeDashboard(sales []domain.Sale, channels []domain.SalesChannel, expenses []domain.SaleExpense, now time.Time) domain.DashboardMetrics {
	windows := WindowsAt(now)

	expensesBySale := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		expensesBySale[e.SaleID] = expensesBySale[e.SaleID].Add(e.Amount)
	}

	metrics := domain.DashboardMetrics{
		Today:       computeWindow(sales, expensesBySale, windows.Today),
		Week:        computeWindow(sales, expensesBySale, windows.Week),
		Month:       computeWindow(sales, expensesBySale, windows.Month),
		Channels:    ChannelBreakdown(sales, channels),
		GeneratedAt: now,
	}

	for _, s := range sales {
		if s.IsActive() {
			metrics.ActiveSales++
		} else {
			metrics.CancelledSales++
		}
	}

	return metrics
}

func computeWindow(sales []domain.Sale, expensesBySale map[string]decimal.Decimal, start time.Time) domain.WindowMetrics {
	w := domain.WindowMetrics{
		Start:         start,
		Revenue:       decimal.Zero,
		Expense:       decimal.Zero,
		Profit:        decimal.Zero,
		Margin:        decimal.Zero,
		AverageTicket: decimal.Zero,
	}

	for _, s := range sales {
		if !s.IsActive() || s.CreatedAt.Before(start) {
			continue
		}
		w.SalesCount++
		w.Revenue = w.Revenue.Add(s.Total)
		w.Expense = w.Expense.Add(expensesBySale[s.ID])
	}

	w.Profit = w.Revenue.Sub(w.Expense)

	w.Margin = utils.Percent(w.Profit, w.Revenue)

	if w.SalesCount > 0 {
		w.AverageTicket = w.Revenue.Div(decimal.NewFromInt(int64(w.SalesCount)))
	}

	return w
}

// ChannelBreakdown agrupa as vendas ativas por canal, na ordem da coleção de canais.
// Vendas de canais removidos aparecem depois, agrupadas pelo snapshot do canal.
func ChannelBreakdown(sales []domain.Sale, channels []domain.SalesChannel) []domain.ChannelBreakdown {
	groups := make(map[string]*domain.ChannelBreakdown)
	var orphanOrder []string

	current := make(map[string]bool, len(channels))
	for _, ch := range channels {
		current[ch.ID] = true
	}

	for _, s := range sales {
		if !s.IsActive() {
			continue
		}

		g, ok := groups[s.ChannelID]
		if !ok {
			g = &domain.ChannelBreakdown{
				ChannelID:   s.ChannelID,
				ChannelName: s.Channel.Name,
				Icon:        s.Channel.Icon,
				Deleted:     !current[s.ChannelID],
				Gross:       decimal.Zero,
				Fees:        decimal.Zero,
				Net:         decimal.Zero,
			}
			groups[s.ChannelID] = g
			if g.Deleted {
				orphanOrder = append(orphanOrder, s.ChannelID)
			}
		}

		g.SalesCount++
		g.Gross = g.Gross.Add(s.GrossAmount())
		g.Fees = g.Fees.Add(s.ChannelFee)
		g.Net = g.Gross.Sub(g.Fees)
	}

	out := make([]domain.ChannelBreakdown, 0, len(groups))
	for _, ch := range channels {
		g, ok := groups[ch.ID]
		if !ok {
			continue
		}
		g.ChannelName = ch.Name
		g.Icon = ch.Icon
		out = append(out, *g)
	}

	for _, id := range orphanOrder {
		out = append(out, *groups[id])
	}

	return out
}
