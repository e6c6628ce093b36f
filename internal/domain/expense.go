package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseKind string

const (
	// ExpenseKindProductCost é lançada automaticamente ao registrar a venda
	ExpenseKindProductCost ExpenseKind = "custo_produto"
	ExpenseKindExtra       ExpenseKind = "custo_extra"
)

// SaleExpense é um lançamento de despesa vinculado a uma venda
type SaleExpense struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"sale_id"`
	Kind        ExpenseKind     `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RecordExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
