package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound indica que nenhuma linha foi afetada pela operação
var ErrNotFound = errors.New("registro não encontrado")

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

func expectAffected(result interface{ RowsAffected() (int64, error) }) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
