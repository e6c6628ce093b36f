package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessExpenseCategory agrupa as despesas gerais da loja
type BusinessExpenseCategory string

const (
	BusinessExpenseCategoryStaff       BusinessExpenseCategory = "funcionarios"
	BusinessExpenseCategoryEquipment   BusinessExpenseCategory = "equipamentos"
	BusinessExpenseCategorySupplies    BusinessExpenseCategory = "materiais"
	BusinessExpenseCategoryRent        BusinessExpenseCategory = "aluguel"
	BusinessExpenseCategoryMarketing   BusinessExpenseCategory = "marketing"
	BusinessExpenseCategoryTaxes       BusinessExpenseCategory = "impostos"
	BusinessExpenseCategoryMaintenance BusinessExpenseCategory = "manutencao"
	BusinessExpenseCategoryOther       BusinessExpenseCategory = "outros"
)

// ParseBusinessExpenseCategory aceita apenas as categorias conhecidas
func ParseBusinessExpenseCategory(tag string) (BusinessExpenseCategory, bool) {
	switch c := BusinessExpenseCategory(tag); c {
	case BusinessExpenseCategoryStaff, BusinessExpenseCategoryEquipment, BusinessExpenseCategorySupplies,
		BusinessExpenseCategoryRent, BusinessExpenseCategoryMarketing, BusinessExpenseCategoryTaxes,
		BusinessExpenseCategoryMaintenance, BusinessExpenseCategoryOther:
		return c, true
	}
	return "", false
}

type BusinessExpenseStatus string

const (
	BusinessExpenseStatusPaid    BusinessExpenseStatus = "paga"
	BusinessExpenseStatusPending BusinessExpenseStatus = "pendente"
	BusinessExpenseStatusOverdue BusinessExpenseStatus = "vencida"
)

func ParseBusinessExpenseStatus(tag string) (BusinessExpenseStatus, bool) {
	switch s := BusinessExpenseStatus(tag); s {
	case BusinessExpenseStatusPaid, BusinessExpenseStatusPending, BusinessExpenseStatusOverdue:
		return s, true
	}
	return "", false
}

// BusinessExpense é uma despesa geral da loja (aluguel, salários, manutenção),
// sem vínculo com uma venda
type BusinessExpense struct {
	ID          string                  `json:"id"`
	Description string                  `json:"description"`
	Category    BusinessExpenseCategory `json:"category"`
	Amount      decimal.Decimal         `json:"amount"`
	DueDate     time.Time               `json:"due_date"`
	Status      BusinessExpenseStatus   `json:"status"`
	Notes       string                  `json:"notes"`
	CreatedAt   time.Time               `json:"created_at"`
}

// BusinessExpenseSummary totaliza as despesas gerais por status
type BusinessExpenseSummary struct {
	Total        decimal.Decimal `json:"total"`
	Paid         decimal.Decimal `json:"paid"`
	Pending      decimal.Decimal `json:"pending"`
	Overdue      decimal.Decimal `json:"overdue"`
	Count        int             `json:"count"`
	PaidCount    int             `json:"paid_count"`
	PendingCount int             `json:"pending_count"`
	OverdueCount int             `json:"overdue_count"`
}

// SummarizeBusinessExpenses soma os valores de cada status
func SummarizeBusinessExpenses(expenses []BusinessExpense) BusinessExpenseSummary {
	summary := BusinessExpenseSummary{
		Total:   decimal.Zero,
		Paid:    decimal.Zero,
		Pending: decimal.Zero,
		Overdue: decimal.Zero,
	}

	for _, e := range expenses {
		summary.Count++
		summary.Total = summary.Total.Add(e.Amount)

		switch e.Status {
		case BusinessExpenseStatusPaid:
			summary.PaidCount++
			summary.Paid = summary.Paid.Add(e.Amount)
		case BusinessExpenseStatusPending:
			summary.PendingCount++
			summary.Pending = summary.Pending.Add(e.Amount)
		case BusinessExpenseStatusOverdue:
			summary.OverdueCount++
			summary.Overdue = summary.Overdue.Add(e.Amount)
		}
	}

	return summary
}

// SaveBusinessExpenseRequest cria ou altera uma despesa. DueDate vem no formato
// YYYY-MM-DD e status vazio vira pendente.
type SaveBusinessExpenseRequest struct {
	ID          string          `json:"-"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
}

type ChangeBusinessExpenseStatusRequest struct {
	Status string `json:"status"`
}
