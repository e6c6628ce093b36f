package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChannelIcon identifica o ícone exibido para o canal de venda
type ChannelIcon string

const (
	ChannelIconInstagram ChannelIcon = "Instagram"
	ChannelIconTruck     ChannelIcon = "Truck"
	ChannelIconPhone     ChannelIcon = "Phone"
	ChannelIconStore     ChannelIcon = "Store"
)

// ParseChannelIcon converte a tag recebida, qualquer valor desconhecido vira Store
func ParseChannelIcon(tag string) ChannelIcon {
	switch ChannelIcon(tag) {
	case ChannelIconInstagram, ChannelIconTruck, ChannelIconPhone, ChannelIconStore:
		return ChannelIcon(tag)
	default:
		return ChannelIconStore
	}
}

// SalesChannel é um canal por onde a loja vende (delivery, rede social, balcão)
type SalesChannel struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	FeePercent decimal.Decimal `json:"fee_percent"`
	Icon       ChannelIcon     `json:"icon"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ChannelSnapshot guarda os dados do canal no momento da venda
type ChannelSnapshot struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	FeePercent decimal.Decimal `json:"fee_percent"`
	Icon       ChannelIcon     `json:"icon"`
}

func (c SalesChannel) Snapshot() ChannelSnapshot {
	return ChannelSnapshot{
		ID:         c.ID,
		Name:       c.Name,
		FeePercent: c.FeePercent,
		Icon:       c.Icon,
	}
}

type SaveChannelRequest struct {
	ID         string           `json:"-"`
	Name       string           `json:"name"`
	FeePercent *decimal.Decimal `json:"fee_percent"`
	Icon       string           `json:"icon"`
}
