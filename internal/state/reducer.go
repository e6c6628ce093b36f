package state

import (
	"github.com/vfg2006/store-manager-api/internal/domain"
)

// Reduce aplica a ação sobre uma cópia do snapshot. As fatias do snapshot
// recebido nunca são alteradas.
func Reduce(s Snapshot, action Action) Snapshot {
	switch a := action.(type) {
	case SaleRegistered:
		s.Sales = appendCopy(s.Sales, a.Sale)
		s.Expenses = appendCopy(s.Expenses, a.Expenses...)

	case SaleCancelled:
		s.Sales = mapCopy(s.Sales, func(sale domain.Sale) domain.Sale {
			if sale.ID == a.SaleID && sale.IsActive() {
				cancelledAt := a.CancelledAt
				sale.Status = domain.SaleStatusCancelled
				sale.CancelledAt = &cancelledAt
			}
			return sale
		})

	case ExpenseRecorded:
		s.Expenses = appendCopy(s.Expenses, a.Expense)

	case ChannelCreated:
		s.Channels = appendCopy(s.Channels, a.Channel)

	case ChannelUpdated:
		s.Channels = mapCopy(s.Channels, func(ch domain.SalesChannel) domain.SalesChannel {
			if ch.ID == a.Channel.ID {
				return a.Channel
			}
			return ch
		})

	case ChannelDeleted:
		s.Channels = filterCopy(s.Channels, func(ch domain.SalesChannel) bool {
			return ch.ID != a.ChannelID
		})

	case ProductSaved:
		if _, exists := s.ProductByID(a.Product.ID); exists {
			s.Products = mapCopy(s.Products, func(p domain.Product) domain.Product {
				if p.ID == a.Product.ID {
					saved := a.Product
					saved.CostItems = p.CostItems
					return saved
				}
				return p
			})
		} else {
			s.Products = appendCopy(s.Products, a.Product)
		}

	case ProductCostAdded:
		s.Products = mapCopy(s.Products, func(p domain.Product) domain.Product {
			if p.ID == a.Item.ProductID {
				p.CostItems = appendCopy(p.CostItems, a.Item)
				p.UnitCost = a.UnitCost
			}
			return p
		})

	case ProductCostRemoved:
		s.Products = mapCopy(s.Products, func(p domain.Product) domain.Product {
			if p.ID == a.ProductID {
				p.CostItems = filterCopy(p.CostItems, func(item domain.ProductCostItem) bool {
					return item.ID != a.ItemID
				})
				p.UnitCost = a.UnitCost
			}
			return p
		})

	case MonthlyRevenueMerged:
		if _, exists := s.MonthlyRevenueFor(a.Record.Month, a.Record.Year); exists {
			s.MonthlyRevenue = mapCopy(s.MonthlyRevenue, func(rec domain.MonthlyRevenueRecord) domain.MonthlyRevenueRecord {
				if rec.SameKey(a.Record.Month, a.Record.Year) {
					return a.Record
				}
				return rec
			})
		} else {
			s.MonthlyRevenue = appendCopy(s.MonthlyRevenue, a.Record)
		}

	case BusinessExpenseCreated:
		s.BusinessExpenses = appendCopy(s.BusinessExpenses, a.Expense)

	case BusinessExpenseUpdated:
		s.BusinessExpenses = mapCopy(s.BusinessExpenses, func(e domain.BusinessExpense) domain.BusinessExpense {
			if e.ID == a.Expense.ID {
				return a.Expense
			}
			return e
		})

	case BusinessExpenseDeleted:
		s.BusinessExpenses = filterCopy(s.BusinessExpenses, func(e domain.BusinessExpense) bool {
			return e.ID != a.ExpenseID
		})

	case TaxConfigUpdated:
		s.TaxConfig = a.Config

	case StoreConfigUpdated:
		s.StoreConfig = a.Config

	case Reloaded:
		return a.Snapshot
	}

	return s
}

func appendCopy[T any](src []T, values ...T) []T {
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src...)
	return append(out, values...)
}

func mapCopy[T any](src []T, fn func(T) T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = fn(v)
	}
	return out
}

func filterCopy[T any](src []T, keep func(T) bool) []T {
	out := make([]T, 0, len(src))
	for _, v := range src {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
