package state

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-manager-api/internal/domain"
)

// Action descreve uma mudança no estado da loja. Cada ação é persistida pela
// Store antes de ser aplicada por Reduce.
type Action interface {
	actionName() string
}

type SaleRegistered struct {
	Sale     domain.Sale
	Expenses []domain.SaleExpense
}

type SaleCancelled struct {
	SaleID      string
	CancelledAt time.Time
}

type ExpenseRecorded struct {
	Expense domain.SaleExpense
}

type ChannelCreated struct {
	Channel domain.SalesChannel
}

type ChannelUpdated struct {
	Channel domain.SalesChannel
}

type ChannelDeleted struct {
	ChannelID string
}

type ProductSaved struct {
	Product domain.Product
}

type ProductCostAdded struct {
	Item     domain.ProductCostItem
	UnitCost decimal.Decimal
}

type ProductCostRemoved struct {
	ProductID string
	ItemID    string
	UnitCost  decimal.Decimal
}

// MonthlyRevenueMerged carrega o registro já somado pelo banco
type MonthlyRevenueMerged struct {
	Record domain.MonthlyRevenueRecord
}

type BusinessExpenseCreated struct {
	Expense domain.BusinessExpense
}

type BusinessExpenseUpdated struct {
	Expense domain.BusinessExpense
}

type BusinessExpenseDeleted struct {
	ExpenseID string
}

type TaxConfigUpdated struct {
	Config domain.TaxThresholdConfig
}

type StoreConfigUpdated struct {
	Config domain.StoreConfig
}

// Reloaded substitui o estado inteiro, não passa pela persistência
type Reloaded struct {
	Snapshot Snapshot
}

func (SaleRegistered) actionName() string         { return "venda_registrada" }
func (SaleCancelled) actionName() string          { return "venda_cancelada" }
func (ExpenseRecorded) actionName() string        { return "despesa_registrada" }
func (ChannelCreated) actionName() string         { return "canal_criado" }
func (ChannelUpdated) actionName() string         { return "canal_atualizado" }
func (ChannelDeleted) actionName() string         { return "canal_removido" }
func (ProductSaved) actionName() string           { return "produto_salvo" }
func (ProductCostAdded) actionName() string       { return "insumo_adicionado" }
func (ProductCostRemoved) actionName() string     { return "insumo_removido" }
func (MonthlyRevenueMerged) actionName() string   { return "faturamento_mensal" }
func (BusinessExpenseCreated) actionName() string { return "despesa_geral_criada" }
func (BusinessExpenseUpdated) actionName() string { return "despesa_geral_atualizada" }
func (BusinessExpenseDeleted) actionName() string { return "despesa_geral_removida" }
func (TaxConfigUpdated) actionName() string       { return "config_mei_atualizada" }
func (StoreConfigUpdated) actionName() string     { return "config_loja_atualizada" }
func (Reloaded) actionName() string               { return "estado_recarregado" }
