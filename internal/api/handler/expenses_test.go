package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/expensing"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

type stubExpenser struct {
	gotStatus *domain.BusinessExpenseStatus
	gotReq    domain.SaveBusinessExpenseRequest
	changedID string
	changedTo string
	deleted   string
	err       error
}

func (s *stubExpenser) ListExpenses(_ context.Context, status *domain.BusinessExpenseStatus) ([]domain.BusinessExpense, error) {
	s.gotStatus = status
	return []domain.BusinessExpense{}, s.err
}

func (s *stubExpenser) GetSummary(context.Context) (*domain.BusinessExpenseSummary, error) {
	return &domain.BusinessExpenseSummary{Total: decimal.NewFromInt(3150), Count: 2}, s.err
}

func (s *stubExpenser) CreateExpense(_ context.Context, req domain.SaveBusinessExpenseRequest) (*domain.BusinessExpense, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &domain.BusinessExpense{ID: "d1", Description: req.Description}, nil
}

func (s *stubExpenser) UpdateExpense(_ context.Context, req domain.SaveBusinessExpenseRequest) (*domain.BusinessExpense, error) {
	s.gotReq = req
	return &domain.BusinessExpense{ID: req.ID}, s.err
}

func (s *stubExpenser) ChangeStatus(_ context.Context, expenseID string, status string) (*domain.BusinessExpense, error) {
	s.changedID = expenseID
	s.changedTo = status
	return &domain.BusinessExpense{ID: expenseID, Status: domain.BusinessExpenseStatus(status)}, s.err
}

func (s *stubExpenser) DeleteExpense(_ context.Context, expenseID string) error {
	s.deleted = expenseID
	return s.err
}

func TestExpenseHandlers(t *testing.T) {
	t.Run("Filtro de status repassado ao serviço", func(t *testing.T) {
		expenser := &stubExpenser{}

		rec := serve(BusinessExpenses(expenser, passthrough), http.MethodGet, "/v1/expenses?status=vencida", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, expenser.gotStatus)
		assert.Equal(t, domain.BusinessExpenseStatusOverdue, *expenser.gotStatus)
	})

	t.Run("Status desconhecido no filtro retorna 400", func(t *testing.T) {
		rec := serve(BusinessExpenses(&stubExpenser{}, passthrough), http.MethodGet, "/v1/expenses?status=atrasada", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Resumo por status", func(t *testing.T) {
		rec := serve(BusinessExpenses(&stubExpenser{}, passthrough), http.MethodGet, "/v1/expenses/summary", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var summary domain.BusinessExpenseSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, 2, summary.Count)
	})

	t.Run("Criação retorna 201", func(t *testing.T) {
		expenser := &stubExpenser{}
		body := `{"description":"Aluguel","category":"aluguel","amount":2800,"due_date":"2024-03-10"}`

		rec := serve(BusinessExpenses(expenser, passthrough), http.MethodPost, "/v1/expenses", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "aluguel", expenser.gotReq.Category)
		assert.Equal(t, "2024-03-10", expenser.gotReq.DueDate)
		assert.True(t, decimal.NewFromInt(2800).Equal(expenser.gotReq.Amount))
	})

	t.Run("Edição usa o id da rota", func(t *testing.T) {
		expenser := &stubExpenser{}

		rec := serve(BusinessExpenses(expenser, passthrough), http.MethodPut, "/v1/expenses/d7", `{"id":"outro","description":"Gás"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "d7", expenser.gotReq.ID)
	})

	t.Run("Troca de status", func(t *testing.T) {
		expenser := &stubExpenser{}

		rec := serve(BusinessExpenses(expenser, passthrough), http.MethodPatch, "/v1/expenses/d7/status", `{"status":"paga"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "d7", expenser.changedID)
		assert.Equal(t, "paga", expenser.changedTo)
	})

	t.Run("Remoção retorna 204", func(t *testing.T) {
		expenser := &stubExpenser{}

		rec := serve(BusinessExpenses(expenser, passthrough), http.MethodDelete, "/v1/expenses/d7", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "d7", expenser.deleted)
	})

	t.Run("Despesa inexistente retorna 404", func(t *testing.T) {
		expenser := &stubExpenser{err: expensing.NewExpenseError(expensing.ErrExpenseNotFound, apiErrors.ErrExpenseNotFound, "d9", "")}

		rec := serve(BusinessExpenses(expenser, passthrough), http.MethodDelete, "/v1/expenses/d9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrExpenseNotFound, decodeError(t, rec).Code)
	})
}
