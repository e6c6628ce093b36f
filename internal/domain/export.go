package domain

import "time"

type ExportSnapshot struct {
	StoreConfig      StoreConfig            `json:"store_config"`
	TaxConfig        TaxThresholdConfig     `json:"tax_config"`
	Products         []ProductResponse      `json:"products"`
	Channels         []SalesChannel         `json:"channels"`
	Sales            []Sale                 `json:"sales"`
	Expenses         []SaleExpense          `json:"expenses"`
	MonthlyRevenue   []MonthlyRevenueRecord `json:"monthly_revenue"`
	BusinessExpenses []BusinessExpense      `json:"business_expenses"`
	ExpenseSummary   BusinessExpenseSummary `json:"expense_summary"`
	Dashboard        DashboardMetrics       `json:"dashboard"`
	ThresholdMetrics ThresholdMetrics       `json:"threshold_metrics"`
	ExportedAt       time.Time              `json:"exported_at"`
}
