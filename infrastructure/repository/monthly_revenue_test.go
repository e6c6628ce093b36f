package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

var monthlyRevenueColumns = []string{"id", "month", "year", "revenue", "profit_distributed", "personal_transfer", "closed_at"}

// o regexp do sqlmock compara a query com os espaços colapsados
const mergeMonthlyRevenueSQL = `INSERT INTO monthly_revenue \(id,owner_id,month,year,revenue,profit_distributed,personal_transfer,closed_at\) ` +
	`VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\) ` +
	`ON CONFLICT \(owner_id, month, year\) DO UPDATE SET ` +
	`revenue = monthly_revenue\.revenue \+ EXCLUDED\.revenue, ` +
	`profit_distributed = monthly_revenue\.profit_distributed \+ EXCLUDED\.profit_distributed, ` +
	`personal_transfer = monthly_revenue\.personal_transfer \+ EXCLUDED\.personal_transfer, ` +
	`closed_at = EXCLUDED\.closed_at ` +
	`RETURNING id, month, year, revenue, profit_distributed, personal_transfer, closed_at`

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestMonthlyRevenueRepository_MergeMonthlyRevenue(t *testing.T) {
	closedAt := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	record := domain.MonthlyRevenueRecord{
		ID:                "rec-1",
		Month:             3,
		Year:              2024,
		Revenue:           decimal.NewFromInt(500),
		ProfitDistributed: decimal.Zero,
		PersonalTransfer:  decimal.RequireFromString("120.5"),
		ClosedAt:          closedAt,
	}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, merged *domain.MonthlyRevenueRecord, err error)
	}{
		{
			name: "Primeiro lançamento do mês",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(mergeMonthlyRevenueSQL).
					WithArgs("rec-1", 1, 3, 2024, "500", "0", "120.5", closedAt).
					WillReturnRows(sqlmock.NewRows(monthlyRevenueColumns).
						AddRow("rec-1", 3, 2024, "500", "0", "120.5", closedAt))
			},
			validate: func(t *testing.T, merged *domain.MonthlyRevenueRecord, err error) {
				require.NoError(t, err)
				assert.Equal(t, "rec-1", merged.ID)
				assert.True(t, merged.Revenue.Equal(decimal.NewFromInt(500)))
			},
		},
		{
			name: "Segundo lançamento soma ao registro existente",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(mergeMonthlyRevenueSQL).
					WithArgs("rec-1", 1, 3, 2024, "500", "0", "120.5", closedAt).
					WillReturnRows(sqlmock.NewRows(monthlyRevenueColumns).
						AddRow("rec-antigo", 3, 2024, "1000", "0", "241", closedAt))
			},
			validate: func(t *testing.T, merged *domain.MonthlyRevenueRecord, err error) {
				require.NoError(t, err)
				assert.Equal(t, "rec-antigo", merged.ID)
				assert.True(t, merged.Revenue.Equal(decimal.NewFromInt(1000)))
				assert.True(t, merged.PersonalTransfer.Equal(decimal.NewFromInt(241)))
				assert.Equal(t, 3, merged.Month)
				assert.Equal(t, 2024, merged.Year)
			},
		},
		{
			name: "Erro do banco é repassado com o código",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(mergeMonthlyRevenueSQL).
					WillReturnError(&pq.Error{Code: "23514", Message: "violação de check"})
			},
			validate: func(t *testing.T, merged *domain.MonthlyRevenueRecord, err error) {
				require.Error(t, err)
				assert.Nil(t, merged)
				assert.Contains(t, err.Error(), "23514")

				var pqErr *pq.Error
				assert.True(t, errors.As(err, &pqErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewMonthlyRevenueRepository(conn)
			merged, err := repo.MergeMonthlyRevenue(context.Background(), 1, record)

			tt.validate(t, merged, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMonthlyRevenueRepository_ListMonthlyRevenue(t *testing.T) {
	closedAt := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

	conn, mock := newMockConnection(t)
	mock.ExpectQuery(`SELECT id, month, year, revenue, profit_distributed, personal_transfer, closed_at FROM monthly_revenue WHERE owner_id = \$1 ORDER BY year ASC, month ASC`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(monthlyRevenueColumns).
			AddRow("a", 12, 2023, "800", "0", "0", closedAt).
			AddRow("b", 3, 2024, "1000", "50", "0", closedAt))

	records, err := NewMonthlyRevenueRepository(conn).ListMonthlyRevenue(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2023, records[0].Year)
	assert.True(t, records[1].ProfitDistributed.Equal(decimal.NewFromInt(50)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
