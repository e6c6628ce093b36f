package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

//go:generate mockgen -source=channel.go -destination=mocks/channel.go -package=mocks

const channelsTable = "sales_channels"

type ChannelRepository interface {
	ListChannels(ctx context.Context, ownerID int) ([]domain.SalesChannel, error)
	CreateChannel(ctx context.Context, ownerID int, channel domain.SalesChannel) error
	UpdateChannel(ctx context.Context, ownerID int, channel domain.SalesChannel) error
	DeleteChannel(ctx context.Context, ownerID int, channelID string) error
}

type channelRepository struct {
	conn *postgres.Connection
}

func NewChannelRepository(conn *postgres.Connection) ChannelRepository {
	return &channelRepository{
		conn: conn,
	}
}

func (r *channelRepository) ListChannels(ctx context.Context, ownerID int) ([]domain.SalesChannel, error) {
	query, args, err := squirrel.
		Select("id", "name", "fee_percent", "icon", "created_at").
		From(channelsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("position ASC").
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

	channels := make([]domain.SalesChannel, 0)
	for rows.Next() {
		var (
			ch   domain.SalesChannel
			icon string
		)
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.FeePercent, &icon, &ch.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler canal: %w", err)
		}
		ch.Icon = domain.ParseChannelIcon(icon)
		channels = append(channels, ch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return channels, nil
}

func (r *channelRepository) CreateChannel(ctx context.Context, ownerID int, channel domain.SalesChannel) error {
	query, args, err := squirrel.
		Insert(channelsTable).
		Columns("id", "owner_id", "name", "fee_percent", "icon", "created_at").
		Values(channel.ID, ownerID, channel.Name, channel.FeePercent, string(channel.Icon), channel.CreatedAt).
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

func (r *channelRepository) UpdateChannel(ctx context.Context, ownerID int, channel domain.SalesChannel) error {
	query, args, err := squirrel.
		Update(channelsTable).
		Set("name", channel.Name).
		Set("fee_percent", channel.FeePercent).
		Set("icon", string(channel.Icon)).
		Where(squirrel.Eq{"id": channel.ID, "owner_id": ownerID}).
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

// DeleteChannel remove apenas o canal, vendas antigas mantêm o snapshot do canal
func (r *channelRepository) DeleteChannel(ctx context.Context, ownerID int, channelID string) error {
	query, args, err := squirrel.
		Delete(channelsTable).
		Where(squirrel.Eq{"id": channelID, "owner_id": ownerID}).
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
