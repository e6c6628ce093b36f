package selling

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Totals são os valores derivados de uma venda
type Totals struct {
	Subtotal   decimal.Decimal
	ChannelFee decimal.Decimal
	Total      decimal.Decimal
	Profit     decimal.Decimal
}

// LineItem calcula subtotal e lucro da linha com preço e custo congelados
func LineItem(product domain.Product, quantity int, unitPrice decimal.Decimal) domain.SaleLineItem {
	qty := decimal.NewFromInt(int64(quantity))

	return domain.SaleLineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		UnitCost:    product.UnitCost,
		Subtotal:    unitPrice.Mul(qty),
		Profit:      unitPrice.Sub(product.UnitCost).Mul(qty),
	}
}

// ComputeTotals aplica a taxa do canal sobre o subtotal, ou sobre subtotal mais
// frete quando feeOnShipping está ligado. A taxa não é arredondada.
//
//	total = subtotal + frete - taxa
//	lucro = lucro das linhas + frete - taxa
func ComputeTotals(items []domain.SaleLineItem, shipping, feePercent decimal.Decimal, feeOnShipping bool) Totals {
	subtotal := decimal.Zero
	itemsProfit := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
		itemsProfit = itemsProfit.Add(item.Profit)
	}

	base := subtotal
	if feeOnShipping {
		base = base.Add(shipping)
	}

	fee := feePercent.Mul(base).Div(hundred)

	return Totals{
		Subtotal:   subtotal,
		ChannelFee: fee,
		Total:      subtotal.Add(shipping).Sub(fee),
		Profit:     itemsProfit.Add(shipping).Sub(fee),
	}
}

// ProductCost soma quantidade vezes custo unitário de cada linha
func ProductCost(items []domain.SaleLineItem) decimal.Decimal {
	cost := decimal.Zero
	for _, item := range items {
		cost = cost.Add(item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return cost
}
