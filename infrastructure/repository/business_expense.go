package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

//go:generate mockgen -source=business_expense.go -destination=mocks/business_expense.go -package=mocks

const businessExpensesTable = "business_expenses"

type BusinessExpenseRepository interface {
	ListBusinessExpenses(ctx context.Context, ownerID int) ([]domain.BusinessExpense, error)
	CreateBusinessExpense(ctx context.Context, ownerID int, expense domain.BusinessExpense) error
	UpdateBusinessExpense(ctx context.Context, ownerID int, expense domain.BusinessExpense) error
	DeleteBusinessExpense(ctx context.Context, ownerID int, expenseID string) error
}

type businessExpenseRepository struct {
	conn *postgres.Connection
}

func NewBusinessExpenseRepository(conn *postgres.Connection) BusinessExpenseRepository {
	return &businessExpenseRepository{
		conn: conn,
	}
}

func (r *businessExpenseRepository) ListBusinessExpenses(ctx context.Context, ownerID int) ([]domain.BusinessExpense, error) {
	query, args, err := squirrel.
		Select("id", "description", "category", "amount", "due_date", "status", "notes", "created_at").
		From(businessExpensesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("due_date ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	expenses := make([]domain.BusinessExpense, 0)
	for rows.Next() {
		var (
			e                domain.BusinessExpense
			category, status string
		)
		if err := rows.Scan(&e.ID, &e.Description, &category, &e.Amount, &e.DueDate, &status, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler despesa: %w", err)
		}
		e.Category = domain.BusinessExpenseCategory(category)
		e.Status = domain.BusinessExpenseStatus(status)
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return expenses, nil
}

func (r *businessExpenseRepository) CreateBusinessExpense(ctx context.Context, ownerID int, expense domain.BusinessExpense) error {
	query, args, err := squirrel.
		Insert(businessExpensesTable).
		Columns("id", "owner_id", "description", "category", "amount", "due_date", "status", "notes", "created_at").
		Values(expense.ID, ownerID, expense.Description, string(expense.Category), expense.Amount,
			expense.DueDate, string(expense.Status), expense.Notes, expense.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *businessExpenseRepository) UpdateBusinessExpense(ctx context.Context, ownerID int, expense domain.BusinessExpense) error {
	query, args, err := squirrel.
		Update(businessExpensesTable).
		Set("description", expense.Description).
		Set("category", string(expense.Category)).
		Set("amount", expense.Amount).
		Set("due_date", expense.DueDate).
		Set("status", string(expense.Status)).
		Set("notes", expense.Notes).
		Where(squirrel.Eq{"id": expense.ID, "owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	return expectAffected(result)
}

func (r *businessExpenseRepository) DeleteBusinessExpense(ctx context.Context, ownerID int, expenseID string) error {
	query, args, err := squirrel.
		Delete(businessExpensesTable).
		Where(squirrel.Eq{"id": expenseID, "owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	return expectAffected(result)
}
