package cataloging

import (
	"errors"
	"fmt"
)

var (
	ErrMissingName      = errors.New("nome obrigatório")
	ErrInvalidCost      = errors.New("custo inválido")
	ErrInvalidPrice     = errors.New("preço de venda inválido")
	ErrInvalidQuantity  = errors.New("quantidade inválida")
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrCostItemNotFound = errors.New("insumo não encontrado")
	ErrPersistProduct   = errors.New("erro ao salvar produto")
)

// ProductError é um erro de catálogo com o código da API
type ProductError struct {
	Err       error
	Code      string
	ProductID string
	Details   string
}

func (e *ProductError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

func (e *ProductError) ErrorCode() string {
	return e.Code
}

func (e *ProductError) ErrorDetails() any {
	if e.ProductID == "" {
		return nil
	}
	return map[string]string{"product_id": e.ProductID}
}

func NewProductError(baseErr error, code string, productID string, details string) *ProductError {
	return &ProductError{
		Err:       baseErr,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
