package cataloging

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
	"github.com/vfg2006/store-manager-api/pkg/utils"
)

type Cataloger interface {
	ListProducts(ctx context.Context) ([]domain.ProductResponse, error)
	CreateProduct(ctx context.Context, req domain.SaveProductRequest) (*domain.ProductResponse, error)
	UpdateProduct(ctx context.Context, req domain.SaveProductRequest) (*domain.ProductResponse, error)
	AddCostItem(ctx context.Context, productID string, req domain.AddProductCostRequest) (*domain.ProductResponse, error)
	RemoveCostItem(ctx context.Context, productID, itemID string) (*domain.ProductResponse, error)
}

type Service struct {
	store state.Dispatcher
	now   func() time.Time
}

func NewService(store state.Dispatcher) Cataloger {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) ListProducts(_ context.Context) ([]domain.ProductResponse, error) {
	products := s.store.Snapshot().Products

	out := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, domain.NewProductResponse(p))
	}
	return out, nil
}

func (s *Service) CreateProduct(ctx context.Context, req domain.SaveProductRequest) (*domain.ProductResponse, error) {
	name, unitCost, err := validateProduct(req, decimal.Zero)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewProductError(err, apiErrors.ErrInternalServer, "", "erro ao gerar identificador")
	}

	now := s.now()
	product := domain.Product{
		ID:        id,
		Name:      name,
		UnitCost:  unitCost,
		SalePrice: req.SalePrice,
		ImageURL:  trimURL(req.ImageURL),
		CostItems: []domain.ProductCostItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Dispatch(ctx, state.ProductSaved{Product: product}); err != nil {
		return nil, s.persistError(err, id)
	}

	return s.response(id)
}

// UpdateProduct mantém o custo atual quando unit_cost não é enviado
func (s *Service) UpdateProduct(ctx context.Context, req domain.SaveProductRequest) (*domain.ProductResponse, error) {
	current, ok := s.store.Snapshot().ProductByID(req.ID)
	if !ok {
		return nil, NewProductError(ErrProductNotFound, apiErrors.ErrProductNotFound, req.ID, "")
	}

	name, unitCost, err := validateProduct(req, current.UnitCost)
	if err != nil {
		return nil, err
	}

	product := current
	product.Name = name
	product.UnitCost = unitCost
	product.SalePrice = req.SalePrice
	product.ImageURL = trimURL(req.ImageURL)
	product.UpdatedAt = s.now()

	if err := s.store.Dispatch(ctx, state.ProductSaved{Product: product}); err != nil {
		return nil, s.persistError(err, req.ID)
	}

	return s.response(req.ID)
}

// AddCostItem registra um insumo e recalcula o custo unitário do produto pela
// soma dos insumos
func (s *Service) AddCostItem(ctx context.Context, productID string, req domain.AddProductCostRequest) (*domain.ProductResponse, error) {
	product, ok := s.store.Snapshot().ProductByID(productID)
	if !ok {
		return nil, NewProductError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewProductError(ErrMissingName, apiErrors.ErrMissingRequiredData, productID, "o nome do insumo é obrigatório")
	}

	if !req.TotalValue.IsPositive() {
		return nil, NewProductError(ErrInvalidCost, apiErrors.ErrInvalidRequest, productID, "o valor pago deve ser maior que zero")
	}

	if req.Quantity <= 0 {
		return nil, NewProductError(ErrInvalidQuantity, apiErrors.ErrInvalidRequest, productID, "a quantidade deve ser maior que zero")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewProductError(err, apiErrors.ErrInternalServer, productID, "erro ao gerar identificador")
	}

	item := domain.ProductCostItem{
		ID:         id,
		ProductID:  productID,
		Name:       name,
		TotalValue: req.TotalValue,
		Quantity:   req.Quantity,
		UnitCost:   domain.CostItemUnitCost(req.TotalValue, req.Quantity),
		CreatedAt:  s.now(),
	}

	product.CostItems = append(append([]domain.ProductCostItem{}, product.CostItems...), item)
	unitCost := product.CostFromItems()

	if err := s.store.Dispatch(ctx, state.ProductCostAdded{Item: item, UnitCost: unitCost}); err != nil {
		return nil, s.persistError(err, productID)
	}

	return s.response(productID)
}

func (s *Service) RemoveCostItem(ctx context.Context, productID, itemID string) (*domain.ProductResponse, error) {
	product, ok := s.store.Snapshot().ProductByID(productID)
	if !ok {
		return nil, NewProductError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
	}

	remaining := make([]domain.ProductCostItem, 0, len(product.CostItems))
	found := false
	for _, item := range product.CostItems {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}

	if !found {
		return nil, NewProductError(ErrCostItemNotFound, apiErrors.ErrCostItemNotFound, productID, itemID)
	}

	product.CostItems = remaining
	unitCost := product.CostFromItems()

	if err := s.store.Dispatch(ctx, state.ProductCostRemoved{ProductID: productID, ItemID: itemID, UnitCost: unitCost}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewProductError(ErrCostItemNotFound, apiErrors.ErrCostItemNotFound, productID, itemID)
		}
		return nil, s.persistError(err, productID)
	}

	return s.response(productID)
}

func (s *Service) response(productID string) (*domain.ProductResponse, error) {
	product, ok := s.store.Snapshot().ProductByID(productID)
	if !ok {
		return nil, NewProductError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
	}

	resp := domain.NewProductResponse(product)
	return &resp, nil
}

func (s *Service) persistError(err error, productID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewProductError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
	}

	logrus.WithError(err).WithField("product_id", productID).Error("Erro ao salvar produto")
	return NewProductError(ErrPersistProduct, apiErrors.ErrDatabaseOperation, productID, "")
}

func validateProduct(req domain.SaveProductRequest, currentCost decimal.Decimal) (string, decimal.Decimal, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", decimal.Zero, NewProductError(ErrMissingName, apiErrors.ErrMissingRequiredData, req.ID, "o nome do produto é obrigatório")
	}

	unitCost := currentCost
	if req.UnitCost != nil {
		unitCost = *req.UnitCost
	}

	if unitCost.IsNegative() {
		return "", decimal.Zero, NewProductError(ErrInvalidCost, apiErrors.ErrInvalidRequest, req.ID, "o custo não pode ser negativo")
	}

	if req.SalePrice.IsNegative() {
		return "", decimal.Zero, NewProductError(ErrInvalidPrice, apiErrors.ErrInvalidRequest, req.ID, "o preço não pode ser negativo")
	}

	return name, unitCost, nil
}

func trimURL(url *string) *string {
	if url == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*url)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
