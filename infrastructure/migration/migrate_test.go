package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, migrationsDir)
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs, "toda migração precisa de up e down")
}

func TestInitialSchemaTables(t *testing.T) {
	up, err := fs.ReadFile(migrationsFS, migrationsDir+"/000001_init.up.sql")
	require.NoError(t, err)
	down, err := fs.ReadFile(migrationsFS, migrationsDir+"/000001_init.down.sql")
	require.NoError(t, err)

	tables := []string{
		"owners", "products", "product_cost_items", "sales_channels", "sales",
		"sale_items", "sale_expenses", "monthly_revenue", "store_settings", "tax_settings",
	}

	for _, table := range tables {
		assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
		assert.Contains(t, string(down), "DROP TABLE IF EXISTS "+table+";", table)
	}

	assert.Contains(t, string(up), "UNIQUE (owner_id, month, year)")
}

func TestBusinessExpensesMigration(t *testing.T) {
	up, err := fs.ReadFile(migrationsFS, migrationsDir+"/000002_business_expenses.up.sql")
	require.NoError(t, err)
	down, err := fs.ReadFile(migrationsFS, migrationsDir+"/000002_business_expenses.down.sql")
	require.NoError(t, err)

	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS business_expenses (")
	assert.Contains(t, string(up), "CHECK (amount > 0)")
	assert.Contains(t, string(down), "DROP TABLE IF EXISTS business_expenses;")
}
