package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Product é um item do catálogo vendido pela loja
type Product struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	UnitCost  decimal.Decimal   `json:"unit_cost"`
	SalePrice decimal.Decimal   `json:"sale_price"`
	ImageURL  *string           `json:"image_url,omitempty"`
	CostItems []ProductCostItem `json:"cost_items"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ProductCostItem é um insumo comprado de fornecedor que compõe o custo do produto
type ProductCostItem struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	TotalValue decimal.Decimal `json:"total_value"`
	Quantity   int             `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	CreatedAt  time.Time       `json:"created_at"`
}

// UnitProfit retorna preço de venda menos custo unitário
func (p Product) UnitProfit() decimal.Decimal {
	return p.SalePrice.Sub(p.UnitCost)
}

// ProfitMargin retorna a margem percentual sobre o preço de venda, 0 quando o preço é zero
func (p Product) ProfitMargin() decimal.Decimal {
	if p.SalePrice.IsZero() {
		return decimal.Zero
	}

	return p.UnitProfit().Mul(hundred).Div(p.SalePrice)
}

// CostFromItems soma o custo unitário de cada insumo
func (p Product) CostFromItems() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.CostItems {
		total = total.Add(item.UnitCost)
	}
	return total
}

// CostItemUnitCost divide o valor pago pela quantidade comprada
func CostItemUnitCost(totalValue decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return totalValue.Div(decimal.NewFromInt(int64(quantity)))
}

type ProductResponse struct {
	Product
	UnitProfit   decimal.Decimal `json:"unit_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		Product:      p,
		UnitProfit:   p.UnitProfit(),
		ProfitMargin: p.ProfitMargin(),
	}
}

type SaveProductRequest struct {
	ID        string           `json:"-"`
	Name      string           `json:"name"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	SalePrice decimal.Decimal  `json:"sale_price"`
	ImageURL  *string          `json:"image_url"`
}

type AddProductCostRequest struct {
	Name       string          `json:"name"`
	TotalValue decimal.Decimal `json:"total_value"`
	Quantity   int             `json:"quantity"`
}
