package selling

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

const productCostDescription = "Custo dos produtos"

type Seller interface {
	CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error)
	CancelSale(ctx context.Context, saleID string) (*domain.Sale, error)
	RecordExpense(ctx context.Context, saleID string, req domain.RecordExpenseRequest) (*domain.SaleExpense, error)
	ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)
}

type Service struct {
	store state.Dispatcher
	now   func() time.Time
}

func NewService(store state.Dispatcher) Seller {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// CreateSale valida todos os itens antes de qualquer mutação, congela preço,
// custo e canal na venda e lança o custo dos produtos como despesa
func (s *Service) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error) {
	snap := s.store.Snapshot()

	if len(req.Items) == 0 {
		return nil, validationError(ErrEmptyItems, "informe ao menos um item")
	}

	if req.ShippingFee.IsNegative() {
		return nil, validationError(ErrNegativeShipping, "o frete não pode ser negativo")
	}

	channel, ok := snap.ChannelByID(req.ChannelID)
	if !ok {
		return nil, validationError(ErrUnknownChannel, req.ChannelID)
	}

	items := make([]domain.SaleLineItem, 0, len(req.Items))
	for i, reqItem := range req.Items {
		product, ok := snap.ProductByID(reqItem.ProductID)
		if !ok {
			return nil, validationError(ErrUnknownProduct, fmt.Sprintf("item %d: %s", i+1, reqItem.ProductID))
		}

		if reqItem.Quantity <= 0 {
			return nil, validationError(ErrInvalidQuantity, fmt.Sprintf("item %d: a quantidade deve ser maior que zero", i+1))
		}

		unitPrice := product.SalePrice
		if reqItem.UnitPrice != nil {
			unitPrice = *reqItem.UnitPrice
		}

		if !unitPrice.IsPositive() {
			return nil, validationError(ErrInvalidUnitPrice, fmt.Sprintf("item %d: o preço deve ser maior que zero", i+1))
		}

		items = append(items, LineItem(product, reqItem.Quantity, unitPrice))
	}

	totals := ComputeTotals(items, req.ShippingFee, channel.FeePercent, req.FeeOnShipping)
	now := s.now()

	sale := domain.Sale{
		ID:            uuid.NewString(),
		Items:         items,
		ChannelID:     channel.ID,
		Channel:       channel.Snapshot(),
		ShippingFee:   req.ShippingFee,
		FeeOnShipping: req.FeeOnShipping,
		Subtotal:      totals.Subtotal,
		ChannelFee:    totals.ChannelFee,
		Total:         totals.Total,
		Profit:        totals.Profit,
		Status:        domain.SaleStatusActive,
		Notes:         trimNotes(req.Notes),
		CreatedAt:     now,
	}

	expenses := make([]domain.SaleExpense, 0, 1)
	if cost := ProductCost(items); cost.IsPositive() {
		expenses = append(expenses, domain.SaleExpense{
			ID:          uuid.NewString(),
			SaleID:      sale.ID,
			Kind:        domain.ExpenseKindProductCost,
			Description: productCostDescription,
			Amount:      cost,
			CreatedAt:   now,
		})
	}

	if err := s.store.Dispatch(ctx, state.SaleRegistered{Sale: sale, Expenses: expenses}); err != nil {
		logrus.WithError(err).WithField("channel_id", channel.ID).Error("Erro ao registrar venda")
		return nil, NewSaleErrorWithID(ErrPersistSale, apiErrors.ErrDatabaseOperation, sale.ID, "")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id": sale.ID,
		"channel": channel.Name,
		"total":   sale.Total.String(),
	}).Info("Venda registrada")

	return &sale, nil
}

// CancelSale é irreversível, o registro continua existindo com status cancelada
func (s *Service) CancelSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	if strings.TrimSpace(saleID) == "" {
		return nil, validationError(ErrMissingIdentifier, "")
	}

	sale, ok := s.store.Snapshot().SaleByID(saleID)
	if !ok {
		return nil, NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, saleID, "")
	}

	if !sale.IsActive() {
		return nil, NewSaleErrorWithID(ErrAlreadyCancelled, apiErrors.ErrBusinessRule, saleID, "")
	}

	if err := s.store.Dispatch(ctx, state.SaleCancelled{SaleID: saleID, CancelledAt: s.now()}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewSaleErrorWithID(ErrAlreadyCancelled, apiErrors.ErrBusinessRule, saleID, "")
		}
		logrus.WithError(err).WithField("sale_id", saleID).Error("Erro ao cancelar venda")
		return nil, NewSaleErrorWithID(ErrPersistSale, apiErrors.ErrDatabaseOperation, saleID, "")
	}

	cancelled, _ := s.store.Snapshot().SaleByID(saleID)
	return &cancelled, nil
}

// RecordExpense lança um custo extra em uma venda ativa
func (s *Service) RecordExpense(ctx context.Context, saleID string, req domain.RecordExpenseRequest) (*domain.SaleExpense, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, validationError(ErrInvalidExpense, "a descrição é obrigatória")
	}

	if !req.Amount.IsPositive() {
		return nil, validationError(ErrInvalidExpense, "o valor deve ser maior que zero")
	}

	sale, ok := s.store.Snapshot().SaleByID(saleID)
	if !ok {
		return nil, NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, saleID, "")
	}

	if !sale.IsActive() {
		return nil, NewSaleErrorWithID(ErrCancelledSale, apiErrors.ErrBusinessRule, saleID, "não é possível lançar despesa")
	}

	expense := domain.SaleExpense{
		ID:          uuid.NewString(),
		SaleID:      saleID,
		Kind:        domain.ExpenseKindExtra,
		Description: description,
		Amount:      req.Amount,
		CreatedAt:   s.now(),
	}

	if err := s.store.Dispatch(ctx, state.ExpenseRecorded{Expense: expense}); err != nil {
		logrus.WithError(err).WithField("sale_id", saleID).Error("Erro ao lançar despesa")
		return nil, NewSaleErrorWithID(ErrPersistSale, apiErrors.ErrDatabaseOperation, saleID, "")
	}

	return &expense, nil
}

// ListSales retorna as vendas da mais recente para a mais antiga
func (s *Service) ListSales(_ context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	all := s.store.Snapshot().Sales

	sales := make([]domain.Sale, 0, len(all))
	for _, sale := range all {
		if filter.Status != nil && sale.Status != *filter.Status {
			continue
		}
		if filter.From != nil && sale.CreatedAt.Before(*filter.From) {
			continue
		}
		sales = append(sales, sale)
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})

	return sales, nil
}

func trimNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
