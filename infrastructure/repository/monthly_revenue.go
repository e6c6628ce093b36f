package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

//go:generate mockgen -source=monthly_revenue.go -destination=mocks/monthly_revenue.go -package=mocks

const monthlyRevenueTable = "monthly_revenue"

type MonthlyRevenueRepository interface {
	ListMonthlyRevenue(ctx context.Context, ownerID int) ([]domain.MonthlyRevenueRecord, error)
	MergeMonthlyRevenue(ctx context.Context, ownerID int, record domain.MonthlyRevenueRecord) (*domain.MonthlyRevenueRecord, error)
}

type monthlyRevenueRepository struct {
	conn *postgres.Connection
}

func NewMonthlyRevenueRepository(conn *postgres.Connection) MonthlyRevenueRepository {
	return &monthlyRevenueRepository{
		conn: conn,
	}
}

func (r *monthlyRevenueRepository) ListMonthlyRevenue(ctx context.Context, ownerID int) ([]domain.MonthlyRevenueRecord, error) {
	query, args, err := squirrel.
		Select("id", "month", "year", "revenue", "profit_distributed", "personal_transfer", "closed_at").
		From(monthlyRevenueTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("year ASC", "month ASC").
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

	records := make([]domain.MonthlyRevenueRecord, 0)
	for rows.Next() {
		var rec domain.MonthlyRevenueRecord
		if err := rows.Scan(&rec.ID, &rec.Month, &rec.Year, &rec.Revenue, &rec.ProfitDistributed, &rec.PersonalTransfer, &rec.ClosedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler faturamento mensal: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return records, nil
}

// MergeMonthlyRevenue soma os valores ao registro existente do mesmo mês e ano e
// retorna o registro resultante
func (r *monthlyRevenueRepository) MergeMonthlyRevenue(ctx context.Context, ownerID int, record domain.MonthlyRevenueRecord) (*domain.MonthlyRevenueRecord, error) {
	query, args, err := squirrel.
		Insert(monthlyRevenueTable).
		Columns("id", "owner_id", "month", "year", "revenue", "profit_distributed", "personal_transfer", "closed_at").
		Values(record.ID, ownerID, record.Month, record.Year, record.Revenue, record.ProfitDistributed, record.PersonalTransfer, record.ClosedAt).
		Suffix(`
			ON CONFLICT (owner_id, month, year) DO UPDATE SET
				revenue = monthly_revenue.revenue + EXCLUDED.revenue,
				profit_distributed = monthly_revenue.profit_distributed + EXCLUDED.profit_distributed,
				personal_transfer = monthly_revenue.personal_transfer + EXCLUDED.personal_transfer,
				closed_at = EXCLUDED.closed_at
			RETURNING id, month, year, revenue, profit_distributed, personal_transfer, closed_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var merged domain.MonthlyRevenueRecord
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&merged.ID,
		&merged.Month,
		&merged.Year,
		&merged.Revenue,
		&merged.ProfitDistributed,
		&merged.PersonalTransfer,
		&merged.ClosedAt,
	)
	if err != nil {
		return nil, wrapExecError(err)
	}

	return &merged, nil
}
