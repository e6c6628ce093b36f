package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WindowMetrics agrega as vendas ativas criadas a partir do início da janela
type WindowMetrics struct {
	Start         time.Time       `json:"start"`
	SalesCount    int             `json:"sales_count"`
	Revenue       decimal.Decimal `json:"revenue"`
	Expense       decimal.Decimal `json:"expense"`
	Profit        decimal.Decimal `json:"profit"`
	Margin        decimal.Decimal `json:"margin"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

type ChannelBreakdown struct {
	ChannelID   string          `json:"channel_id"`
	ChannelName string          `json:"channel_name"`
	Icon        ChannelIcon     `json:"icon"`
	Deleted     bool            `json:"deleted"`
	SalesCount  int             `json:"sales_count"`
	Gross       decimal.Decimal `json:"gross"`
	Fees        decimal.Decimal `json:"fees"`
	Net         decimal.Decimal `json:"net"`
}

type DashboardMetrics struct {
	Today          WindowMetrics      `json:"today"`
	Week           WindowMetrics      `json:"week"`
	Month          WindowMetrics      `json:"month"`
	Channels       []ChannelBreakdown `json:"channels"`
	ActiveSales    int                `json:"active_sales"`
	CancelledSales int                `json:"cancelled_sales"`
	GeneratedAt    time.Time          `json:"generated_at"`
}
