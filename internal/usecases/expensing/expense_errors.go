package expensing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDescription = errors.New("descrição da despesa obrigatória")
	ErrInvalidCategory    = errors.New("categoria de despesa inválida")
	ErrInvalidAmount      = errors.New("valor da despesa deve ser positivo")
	ErrInvalidStatus      = errors.New("status de despesa inválido")
	ErrInvalidDueDate     = errors.New("data da despesa inválida")
	ErrExpenseNotFound    = errors.New("despesa não encontrada")
	ErrPersistExpense     = errors.New("erro ao salvar despesa")
)

// ExpenseError é um erro de despesa geral com o código da API
type ExpenseError struct {
	Err       error
	Code      string
	ExpenseID string
	Details   string
}

func (e *ExpenseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExpenseError) Unwrap() error {
	return e.Err
}

func (e *ExpenseError) ErrorCode() string {
	return e.Code
}

func (e *ExpenseError) ErrorDetails() any {
	if e.ExpenseID == "" {
		return nil
	}
	return map[string]string{"expense_id": e.ExpenseID}
}

func NewExpenseError(baseErr error, code string, expenseID string, details string) *ExpenseError {
	return &ExpenseError{
		Err:       baseErr,
		Code:      code,
		ExpenseID: expenseID,
		Details:   details,
	}
}
