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

//go:generate mockgen -source=owner.go -destination=mocks/owner.go -package=mocks

const ownersTable = "owners"

type OwnerRepository interface {
	CreateOwner(ctx context.Context, owner *domain.Owner) (*domain.Owner, error)
	GetOwnerByEmail(ctx context.Context, email string) (*domain.Owner, error)
	GetOwnerByID(ctx context.Context, ownerID int) (*domain.Owner, error)
	UpdatePassword(ctx context.Context, ownerID int, passwordHash string) error
}

type ownerRepository struct {
	conn *postgres.Connection
}

func NewOwnerRepository(conn *postgres.Connection) OwnerRepository {
	return &ownerRepository{
		conn: conn,
	}
}

func (r *ownerRepository) CreateOwner(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	query, args, err := squirrel.
		Insert(ownersTable).
		Columns("name", "email", "password_hash").
		Values(owner.Name, owner.Email, owner.PasswordHash).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&owner.ID, &owner.CreatedAt, &owner.UpdatedAt)
	if err != nil {
		return nil, wrapExecError(err)
	}

	return owner, nil
}

func (r *ownerRepository) GetOwnerByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	return r.getOwner(ctx, squirrel.Eq{"email": email})
}

func (r *ownerRepository) GetOwnerByID(ctx context.Context, ownerID int) (*domain.Owner, error) {
	return r.getOwner(ctx, squirrel.Eq{"id": ownerID})
}

// getOwner retorna nil sem erro quando o dono não existe
func (r *ownerRepository) getOwner(ctx context.Context, where squirrel.Eq) (*domain.Owner, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password_hash", "created_at", "updated_at").
		From(ownersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var owner domain.Owner
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&owner.ID,
		&owner.Name,
		&owner.Email,
		&owner.PasswordHash,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapExecError(err)
	}

	return &owner, nil
}

func (r *ownerRepository) UpdatePassword(ctx context.Context, ownerID int, passwordHash string) error {
	query, args, err := squirrel.
		Update(ownersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ownerID}).
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
