package configuring

import (
	"errors"
	"fmt"
)

var (
	ErrMissingStoreName = errors.New("nome da loja obrigatório")
	ErrInvalidTheme     = errors.New("tema inválido")
	ErrInvalidLimit     = errors.New("limite anual inválido")
	ErrInvalidYear      = errors.New("ano de referência inválido")
	ErrPersistSettings  = errors.New("erro ao salvar configuração")
)

// SettingsError é um erro de configuração com o código da API
type SettingsError struct {
	Err     error
	Code    string
	Field   string
	Details string
}

func (e *SettingsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

func (e *SettingsError) ErrorCode() string {
	return e.Code
}

func (e *SettingsError) ErrorDetails() any {
	if e.Field == "" {
		return nil
	}
	return map[string]string{"field": e.Field}
}

func NewSettingsError(baseErr error, code string, field string, details string) *SettingsError {
	return &SettingsError{
		Err:     baseErr,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
