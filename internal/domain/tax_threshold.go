package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultAnnualLimit = 81000

type TaxThresholdConfig struct {
	AnnualLimit   decimal.Decimal `json:"annual_limit"`
	ReferenceYear int             `json:"reference_year"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func DefaultTaxThresholdConfig(now time.Time) TaxThresholdConfig {
	return TaxThresholdConfig{
		AnnualLimit:   decimal.NewFromInt(DefaultAnnualLimit),
		ReferenceYear: now.Year(),
	}
}

type ThresholdStatus string

const (
	ThresholdStatusNormal    ThresholdStatus = "normal"
	ThresholdStatusAttention ThresholdStatus = "atencao"
	ThresholdStatusCritical  ThresholdStatus = "critico"
)

type MonthlyBreakdown struct {
	Month             int             `json:"month"`
	Revenue           decimal.Decimal `json:"revenue"`
	SalesRevenue      decimal.Decimal `json:"sales_revenue"`
	RecordedRevenue   decimal.Decimal `json:"recorded_revenue"`
	ProfitDistributed decimal.Decimal `json:"profit_distributed"`
	PersonalTransfer  decimal.Decimal `json:"personal_transfer"`
}

type ThresholdMetrics struct {
	ReferenceYear    int                `json:"reference_year"`
	AnnualLimit      decimal.Decimal    `json:"annual_limit"`
	YearToDate       decimal.Decimal    `json:"year_to_date"`
	PercentOfLimit   decimal.Decimal    `json:"percent_of_limit"`
	RemainingToLimit decimal.Decimal    `json:"remaining_to_limit"`
	Status           ThresholdStatus    `json:"status"`
	Months           []MonthlyBreakdown `json:"months"`
}

type UpdateTaxConfigRequest struct {
	AnnualLimit   *decimal.Decimal `json:"annual_limit"`
	ReferenceYear *int             `json:"reference_year"`
}
