package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

//go:generate mockgen -source=settings.go -destination=mocks/settings.go -package=mocks

const (
	storeSettingsTable = "store_settings"
	taxSettingsTable   = "tax_settings"
)

// SettingsRepository guarda as configurações da loja e do limite do MEI.
// Os métodos Get retornam nil quando o dono ainda não salvou nada.
type SettingsRepository interface {
	GetStoreConfig(ctx context.Context, ownerID int) (*domain.StoreConfig, error)
	SaveStoreConfig(ctx context.Context, ownerID int, cfg domain.StoreConfig) error
	GetTaxConfig(ctx context.Context, ownerID int) (*domain.TaxThresholdConfig, error)
	SaveTaxConfig(ctx context.Context, ownerID int, cfg domain.TaxThresholdConfig) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

func (r *settingsRepository) GetStoreConfig(ctx context.Context, ownerID int) (*domain.StoreConfig, error) {
	query, args, err := squirrel.
		Select("store_name", "logo_url", "theme", "updated_at").
		From(storeSettingsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		cfg   domain.StoreConfig
		theme string
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&cfg.StoreName, &cfg.LogoURL, &theme, &cfg.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapExecError(err)
	}

	cfg.Theme = domain.Theme(theme)
	if !cfg.Theme.Valid() {
		cfg.Theme = domain.ThemeLight
	}

	return &cfg, nil
}

func (r *settingsRepository) SaveStoreConfig(ctx context.Context, ownerID int, cfg domain.StoreConfig) error {
	query, args, err := squirrel.
		Insert(storeSettingsTable).
		Columns("owner_id", "store_name", "logo_url", "theme", "updated_at").
		Values(ownerID, cfg.StoreName, cfg.LogoURL, string(cfg.Theme), cfg.UpdatedAt).
		Suffix(`
			ON CONFLICT (owner_id) DO UPDATE SET
				store_name = EXCLUDED.store_name,
				logo_url = EXCLUDED.logo_url,
				theme = EXCLUDED.theme,
				updated_at = EXCLUDED.updated_at
		`).
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

func (r *settingsRepository) GetTaxConfig(ctx context.Context, ownerID int) (*domain.TaxThresholdConfig, error) {
	query, args, err := squirrel.
		Select("annual_limit", "reference_year", "updated_at").
		From(taxSettingsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var cfg domain.TaxThresholdConfig
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&cfg.AnnualLimit, &cfg.ReferenceYear, &cfg.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapExecError(err)
	}

	return &cfg, nil
}

func (r *settingsRepository) SaveTaxConfig(ctx context.Context, ownerID int, cfg domain.TaxThresholdConfig) error {
	query, args, err := squirrel.
		Insert(taxSettingsTable).
		Columns("owner_id", "annual_limit", "reference_year", "updated_at").
		Values(ownerID, cfg.AnnualLimit, cfg.ReferenceYear, cfg.UpdatedAt).
		Suffix(`
			ON CONFLICT (owner_id) DO UPDATE SET
				annual_limit = EXCLUDED.annual_limit,
				reference_year = EXCLUDED.reference_year,
				updated_at = EXCLUDED.updated_at
		`).
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
