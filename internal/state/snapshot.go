package state

import (
	"time"

	"github.com/vfg2006/store-manager-api/internal/domain"
)

// Snapshot é uma visão imutável de todas as coleções da loja. Nenhuma redução
// altera um Snapshot já entregue, novas fatias são alocadas a cada mudança.
type Snapshot struct {
	Products         []domain.Product
	Channels         []domain.SalesChannel
	Sales            []domain.Sale
	Expenses         []domain.SaleExpense
	MonthlyRevenue   []domain.MonthlyRevenueRecord
	BusinessExpenses []domain.BusinessExpense
	TaxConfig        domain.TaxThresholdConfig
	StoreConfig      domain.StoreConfig
	LoadedAt         time.Time
}

func (s Snapshot) ProductByID(id string) (domain.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s Snapshot) ChannelByID(id string) (domain.SalesChannel, bool) {
	for _, ch := range s.Channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return domain.SalesChannel{}, false
}

func (s Snapshot) SaleByID(id string) (domain.Sale, bool) {
	for _, sale := range s.Sales {
		if sale.ID == id {
			return sale, true
		}
	}
	return domain.Sale{}, false
}

func (s Snapshot) BusinessExpenseByID(id string) (domain.BusinessExpense, bool) {
	for _, e := range s.BusinessExpenses {
		if e.ID == id {
			return e, true
		}
	}
	return domain.BusinessExpense{}, false
}

func (s Snapshot) MonthlyRevenueFor(month, year int) (domain.MonthlyRevenueRecord, bool) {
	for _, rec := range s.MonthlyRevenue {
		if rec.SameKey(month, year) {
			return rec, true
		}
	}
	return domain.MonthlyRevenueRecord{}, false
}
