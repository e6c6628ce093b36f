package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "ativa"
	SaleStatusCancelled SaleStatus = "cancelada"
)

// SaleLineItem guarda o produto vendido com preço e custo congelados na data da venda
type SaleLineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Profit      decimal.Decimal `json:"profit"`
}

type Sale struct {
	ID            string          `json:"id"`
	Items         []SaleLineItem  `json:"items"`
	ChannelID     string          `json:"channel_id"`
	Channel       ChannelSnapshot `json:"channel"`
	ShippingFee   decimal.Decimal `json:"shipping_fee"`
	FeeOnShipping bool            `json:"fee_on_shipping"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ChannelFee    decimal.Decimal `json:"channel_fee"`
	Total         decimal.Decimal `json:"total"`
	Profit        decimal.Decimal `json:"profit"`
	Status        SaleStatus      `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
}

func (s Sale) IsActive() bool {
	return s.Status == SaleStatusActive
}

// GrossAmount é o valor bruto da venda antes da taxa do canal
func (s Sale) GrossAmount() decimal.Decimal {
	return s.Subtotal.Add(s.ShippingFee)
}

type SaleItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	ChannelID     string            `json:"channel_id"`
	ShippingFee   decimal.Decimal   `json:"shipping_fee"`
	FeeOnShipping bool              `json:"fee_on_shipping"`
	Notes         *string           `json:"notes"`
}

type SaleFilter struct {
	Status *SaleStatus
	From   *time.Time
}
