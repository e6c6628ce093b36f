package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/expensing"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

// ListExpenses lista as despesas gerais, com filtro opcional por status
func ListExpenses(service expensing.Expenser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *domain.BusinessExpenseStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed, ok := domain.ParseBusinessExpenseStatus(raw)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status inválido, use paga, pendente ou vencida", nil)
				return
			}
			status = &parsed
		}

		expenses, err := service.ListExpenses(r.Context(), status)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao listar despesas")
			return
		}

		writeJSON(w, http.StatusOK, expenses)
	}
}

func GetExpenseSummary(service expensing.Expenser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao totalizar despesas")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func CreateExpense(service expensing.Expenser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveBusinessExpenseRequest
		if !decodeBody(w, r, &req) {
			return
		}

		expense, err := service.CreateExpense(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao registrar despesa")
			return
		}

		writeJSON(w, http.StatusCreated, expense)
	}
}

func UpdateExpense(service expensing.Expenser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveBusinessExpenseRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		expense, err := service.UpdateExpense(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao atualizar despesa")
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}

func ChangeExpenseStatus(service expensing.Expenser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ChangeBusinessExpenseStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		expense, err := service.ChangeStatus(r.Context(), id, req.Status)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao alterar status da despesa")
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}

func DeleteExpense(service expensing.Expenser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteExpense(r.Context(), id); err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao remover despesa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
