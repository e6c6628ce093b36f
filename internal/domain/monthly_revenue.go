package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenueRecord é o fechamento manual de um mês (faturamento fora do sistema,
// lucro distribuído e transferências para a pessoa física)
type MonthlyRevenueRecord struct {
	ID                string          `json:"id"`
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	Revenue           decimal.Decimal `json:"revenue"`
	ProfitDistributed decimal.Decimal `json:"profit_distributed"`
	PersonalTransfer  decimal.Decimal `json:"personal_transfer"`
	ClosedAt          time.Time       `json:"closed_at"`
}

func (r MonthlyRevenueRecord) SameKey(month, year int) bool {
	return r.Month == month && r.Year == year
}

type MonthlyRevenueRequest struct {
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	Revenue           decimal.Decimal `json:"revenue"`
	ProfitDistributed decimal.Decimal `json:"profit_distributed"`
	PersonalTransfer  decimal.Decimal `json:"personal_transfer"`
}
