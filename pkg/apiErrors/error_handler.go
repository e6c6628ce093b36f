package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserNotFound          = "AUTH_003" // Dono não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrWeakPassword          = "AUTH_011" // Senha fora da política
	ErrPasswordMismatch      = "AUTH_012" // Confirmação diferente da nova senha

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrBusinessRule        = "VAL_004" // Regra de negócio violada
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado pela rota

	// Recursos não encontrados
	ErrRouteNotFound    = "RES_000"
	ErrSaleNotFound     = "RES_001"
	ErrChannelNotFound  = "RES_002"
	ErrProductNotFound  = "RES_003"
	ErrCostItemNotFound = "RES_004"
	ErrExpenseNotFound  = "RES_005"

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrWeakPassword:          http.StatusBadRequest,
	ErrPasswordMismatch:      http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrBusinessRule:          http.StatusUnprocessableEntity,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrSaleNotFound:          http.StatusNotFound,
	ErrChannelNotFound:       http.StatusNotFound,
	ErrProductNotFound:       http.StatusNotFound,
	ErrCostItemNotFound:      http.StatusNotFound,
	ErrExpenseNotFound:       http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Coded é implementada pelos erros dos casos de uso que já carregam o código da API
type Coded interface {
	error
	ErrorCode() string
	ErrorDetails() any
}

// StatusFor retorna o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteServiceError usa o código do erro do caso de uso, ou fallbackMessage com
// SRV_001 quando o erro não tem código
func WriteServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var coded Coded
	if errors.As(err, &coded) {
		WriteError(w, coded.ErrorCode(), coded.Error(), coded.ErrorDetails())
		return
	}

	WriteError(w, ErrInternalServer, fallbackMessage, nil)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
