package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

const (
	productsTable         = "products"
	productCostItemsTable = "product_cost_items"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, ownerID int) ([]domain.Product, error)
	SaveProduct(ctx context.Context, ownerID int, product domain.Product) error
	AddCostItem(ctx context.Context, ownerID int, item domain.ProductCostItem, unitCost decimal.Decimal) error
	RemoveCostItem(ctx context.Context, ownerID int, productID, itemID string, unitCost decimal.Decimal) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts(ctx context.Context, ownerID int) ([]domain.Product, error) {
	query, args, err := squirrel.
		Select("id", "name", "unit_cost", "sale_price", "image_url", "created_at", "updated_at").
		From(productsTable).
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

	products := make([]domain.Product, 0)
	index := make(map[string]int)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitCost, &p.SalePrice, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		p.CostItems = []domain.ProductCostItem{}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	items, err := r.listCostItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			products[i].CostItems = append(products[i].CostItems, item)
		}
	}

	return products, nil
}

func (r *productRepository) listCostItems(ctx context.Context, ownerID int) ([]domain.ProductCostItem, error) {
	query, args, err := squirrel.
		Select("id", "product_id", "name", "total_value", "quantity", "unit_cost", "created_at").
		From(productCostItemsTable).
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

	var items []domain.ProductCostItem
	for rows.Next() {
		var item domain.ProductCostItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.TotalValue, &item.Quantity, &item.UnitCost, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler insumo: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *productRepository) SaveProduct(ctx context.Context, ownerID int, product domain.Product) error {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "owner_id", "name", "unit_cost", "sale_price", "image_url", "created_at", "updated_at").
		Values(product.ID, ownerID, product.Name, product.UnitCost, product.SalePrice, product.ImageURL, product.CreatedAt, product.UpdatedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				unit_cost = EXCLUDED.unit_cost,
				sale_price = EXCLUDED.sale_price,
				image_url = EXCLUDED.image_url,
				updated_at = EXCLUDED.updated_at
			WHERE products.owner_id = EXCLUDED.owner_id
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

func (r *productRepository) AddCostItem(ctx context.Context, ownerID int, item domain.ProductCostItem, unitCost decimal.Decimal) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(productCostItemsTable).
			Columns("id", "product_id", "owner_id", "name", "total_value", "quantity", "unit_cost", "created_at").
			Values(item.ID, item.ProductID, ownerID, item.Name, item.TotalValue, item.Quantity, item.UnitCost, item.CreatedAt).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return wrapExecError(err)
		}

		return updateUnitCost(ctx, tx, ownerID, item.ProductID, unitCost)
	})
}

func (r *productRepository) RemoveCostItem(ctx context.Context, ownerID int, productID, itemID string, unitCost decimal.Decimal) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Delete(productCostItemsTable).
			Where(squirrel.Eq{"id": itemID, "product_id": productID, "owner_id": ownerID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return wrapExecError(err)
		}
		if err := expectAffected(result); err != nil {
			return err
		}

		return updateUnitCost(ctx, tx, ownerID, productID, unitCost)
	})
}

func updateUnitCost(ctx context.Context, q postgres.Queryer, ownerID int, productID string, unitCost decimal.Decimal) error {
	query, args, err := squirrel.
		Update(productsTable).
		Set("unit_cost", unitCost).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": productID, "owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	return expectAffected(result)
}
