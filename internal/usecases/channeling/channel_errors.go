package channeling

import (
	"errors"
	"fmt"
)

var (
	ErrMissingName       = errors.New("nome do canal obrigatório")
	ErrInvalidFeePercent = errors.New("taxa do canal inválida")
	ErrChannelNotFound   = errors.New("canal não encontrado")
	ErrPersistChannel    = errors.New("erro ao salvar canal")
)

// ChannelError é um erro de canal de venda com o código da API
type ChannelError struct {
	Err       error
	Code      string
	ChannelID string
	Details   string
}

func (e *ChannelError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

func (e *ChannelError) ErrorCode() string {
	return e.Code
}

func (e *ChannelError) ErrorDetails() any {
	if e.ChannelID == "" {
		return nil
	}
	return map[string]string{"channel_id": e.ChannelID}
}

func NewChannelError(baseErr error, code string, channelID string, details string) *ChannelError {
	return &ChannelError{
		Err:       baseErr,
		Code:      code,
		ChannelID: channelID,
		Details:   details,
	}
}
