package taxing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

var (
	ErrInvalidMonth  = errors.New("mês inválido")
	ErrInvalidYear   = errors.New("ano inválido")
	ErrInvalidAmount = errors.New("valor inválido")
	ErrEmptyRecord   = errors.New("nenhum valor informado")
	ErrPersistRecord = errors.New("erro ao salvar faturamento mensal")
)

// TaxError é um erro de faturamento com o código da API
type TaxError struct {
	Err     error
	Code    string
	Details string
}

func (e *TaxError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TaxError) Unwrap() error {
	return e.Err
}

func (e *TaxError) ErrorCode() string {
	return e.Code
}

func (e *TaxError) ErrorDetails() any {
	if e.Details == "" {
		return nil
	}
	return e.Details
}

func NewTaxError(baseErr error, code string, details string) *TaxError {
	return &TaxError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func validationError(baseErr error, details string) *TaxError {
	return NewTaxError(baseErr, apiErrors.ErrInvalidRequest, details)
}
