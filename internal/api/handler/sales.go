package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/selling"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
	"github.com/vfg2006/store-manager-api/pkg/log"
	"github.com/vfg2006/store-manager-api/pkg/utils"
)

// ListSales aceita os filtros status (ativa, cancelada) e from (2006-01-02)
func ListSales(service selling.Seller, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		var filter domain.SaleFilter

		if status := query.Get("status"); status != "" {
			s := domain.SaleStatus(status)
			if s != domain.SaleStatusActive && s != domain.SaleStatusCancelled {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status inválido. Valores aceitos: ativa, cancelada", nil)
				return
			}
			filter.Status = &s
		}

		from, err := utils.ParseDate(query.Get("from"), loc)
		if err != nil {
			log.ForContext(r.Context()).WithField("from", query.Get("from")).Warn("sales: parâmetro from inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", nil)
			return
		}
		filter.From = from

		sales, err := service.ListSales(r.Context(), filter)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

func CreateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateSaleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sale, err := service.CreateSale(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

func CancelSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.CancelSale(r.Context(), id)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao cancelar venda")
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

func RecordSaleExpense(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.RecordExpenseRequest
		if !decodeBody(w, r, &req) {
			return
		}

		expense, err := service.RecordExpense(r.Context(), id, req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao lançar despesa")
			return
		}

		writeJSON(w, http.StatusCreated, expense)
	}
}
