package selling

import (
	"errors"
	"fmt"

	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

var (
	// Erros de validação da venda
	ErrEmptyItems        = errors.New("venda sem itens")
	ErrInvalidQuantity   = errors.New("quantidade inválida")
	ErrInvalidUnitPrice  = errors.New("preço unitário inválido")
	ErrUnknownProduct    = errors.New("produto inexistente")
	ErrUnknownChannel    = errors.New("canal de venda inexistente")
	ErrNegativeShipping  = errors.New("frete negativo")
	ErrInvalidExpense    = errors.New("despesa inválida")
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrAlreadyCancelled  = errors.New("venda já cancelada")
	ErrCancelledSale     = errors.New("venda cancelada")
	ErrPersistSale       = errors.New("erro ao salvar venda")
	ErrMissingIdentifier = errors.New("identificador da venda ausente")
)

// SaleError é um erro de venda com o código da API
type SaleError struct {
	Err     error
	Code    string
	SaleID  string
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func (e *SaleError) ErrorCode() string {
	return e.Code
}

func (e *SaleError) ErrorDetails() any {
	if e.SaleID == "" {
		return nil
	}
	return map[string]string{"sale_id": e.SaleID}
}

func NewSaleError(baseErr error, code string, details string) *SaleError {
	return &SaleError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithID(baseErr error, code string, saleID string, details string) *SaleError {
	return &SaleError{
		Err:     baseErr,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}

func validationError(baseErr error, details string) *SaleError {
	return NewSaleError(baseErr, apiErrors.ErrInvalidRequest, details)
}
