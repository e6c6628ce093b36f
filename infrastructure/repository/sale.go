package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

const (
	salesTable        = "sales"
	saleItemsTable    = "sale_items"
	saleExpensesTable = "sale_expenses"
)

type SaleRepository interface {
	ListSales(ctx context.Context, ownerID int) ([]domain.Sale, error)
	ListExpenses(ctx context.Context, ownerID int) ([]domain.SaleExpense, error)
	CreateSale(ctx context.Context, ownerID int, sale domain.Sale, expenses []domain.SaleExpense) error
	CancelSale(ctx context.Context, ownerID int, saleID string, cancelledAt time.Time) error
	CreateExpense(ctx context.Context, ownerID int, expense domain.SaleExpense) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListSales(ctx context.Context, ownerID int) ([]domain.Sale, error) {
	query, args, err := squirrel.
		Select(
			"id", "channel_id", "channel_name", "channel_fee_percent", "channel_icon",
			"shipping_fee", "fee_on_shipping", "subtotal", "channel_fee", "total", "profit",
			"status", "notes", "created_at", "cancelled_at",
		).
		From(salesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
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

	sales := make([]domain.Sale, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			s      domain.Sale
			icon   string
			status string
		)
		if err := rows.Scan(
			&s.ID,
			&s.ChannelID,
			&s.Channel.Name,
			&s.Channel.FeePercent,
			&icon,
			&s.ShippingFee,
			&s.FeeOnShipping,
			&s.Subtotal,
			&s.ChannelFee,
			&s.Total,
			&s.Profit,
			&status,
			&s.Notes,
			&s.CreatedAt,
			&s.CancelledAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		s.Channel.ID = s.ChannelID
		s.Channel.Icon = domain.ParseChannelIcon(icon)
		s.Status = domain.SaleStatus(status)
		index[s.ID] = len(sales)
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	if err := r.attachItems(ctx, ownerID, sales, index); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *saleRepository) attachItems(ctx context.Context, ownerID int, sales []domain.Sale, index map[string]int) error {
	query, args, err := squirrel.
		Select(
			"si.sale_id", "si.product_id", "si.product_name", "si.quantity",
			"si.unit_price", "si.unit_cost", "si.subtotal", "si.profit",
		).
		From(saleItemsTable + " si").
		Join(salesTable + " s ON s.id = si.sale_id").
		Where(squirrel.Eq{"s.owner_id": ownerID}).
		OrderBy("si.sale_id ASC", "si.line_no ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			saleID string
			item   domain.SaleLineItem
		)
		if err := rows.Scan(
			&saleID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.UnitCost,
			&item.Subtotal,
			&item.Profit,
		); err != nil {
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}

		if i, ok := index[saleID]; ok {
			sales[i].Items = append(sales[i].Items, item)
		}
	}

	return rows.Err()
}

func (r *saleRepository) ListExpenses(ctx context.Context, ownerID int) ([]domain.SaleExpense, error) {
	query, args, err := squirrel.
		Select("id", "sale_id", "kind", "description", "amount", "created_at").
		From(saleExpensesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
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

	expenses := make([]domain.SaleExpense, 0)
	for rows.Next() {
		var (
			e    domain.SaleExpense
			kind string
		)
		if err := rows.Scan(&e.ID, &e.SaleID, &kind, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler despesa: %w", err)
		}
		e.Kind = domain.ExpenseKind(kind)
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return expenses, nil
}

// CreateSale grava a venda, os itens e as despesas automáticas na mesma transação
func (r *saleRepository) CreateSale(ctx context.Context, ownerID int, sale domain.Sale, expenses []domain.SaleExpense) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(salesTable).
			Columns(
				"id", "owner_id", "channel_id", "channel_name", "channel_fee_percent", "channel_icon",
				"shipping_fee", "fee_on_shipping", "subtotal", "channel_fee", "total", "profit",
				"status", "notes", "created_at",
			).
			Values(
				sale.ID, ownerID, sale.ChannelID, sale.Channel.Name, sale.Channel.FeePercent, string(sale.Channel.Icon),
				sale.ShippingFee, sale.FeeOnShipping, sale.Subtotal, sale.ChannelFee, sale.Total, sale.Profit,
				string(sale.Status), sale.Notes, sale.CreatedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return wrapExecError(err)
		}

		itemsBuilder := squirrel.
			Insert(saleItemsTable).
			Columns("sale_id", "line_no", "product_id", "product_name", "quantity", "unit_price", "unit_cost", "subtotal", "profit")
		for i, item := range sale.Items {
			itemsBuilder = itemsBuilder.Values(
				sale.ID, i+1, item.ProductID, item.ProductName, item.Quantity,
				item.UnitPrice, item.UnitCost, item.Subtotal, item.Profit,
			)
		}

		query, args, err = itemsBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return wrapExecError(err)
		}

		for _, expense := range expenses {
			if err := insertExpense(ctx, tx, ownerID, expense); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *saleRepository) CancelSale(ctx context.Context, ownerID int, saleID string, cancelledAt time.Time) error {
	query, args, err := squirrel.
		Update(salesTable).
		Set("status", string(domain.SaleStatusCancelled)).
		Set("cancelled_at", cancelledAt).
		Where(squirrel.Eq{"id": saleID, "owner_id": ownerID, "status": string(domain.SaleStatusActive)}).
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

func (r *saleRepository) CreateExpense(ctx context.Context, ownerID int, expense domain.SaleExpense) error {
	return insertExpense(ctx, r.conn, ownerID, expense)
}

func insertExpense(ctx context.Context, q postgres.Queryer, ownerID int, expense domain.SaleExpense) error {
	query, args, err := squirrel.
		Insert(saleExpensesTable).
		Columns("id", "owner_id", "sale_id", "kind", "description", "amount", "created_at").
		Values(expense.ID, ownerID, expense.SaleID, string(expense.Kind), expense.Description, expense.Amount, expense.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}
