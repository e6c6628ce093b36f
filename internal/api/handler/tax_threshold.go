package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/taxing"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

func GetTaxThreshold(service taxing.Taxer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.GetThreshold(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao calcular limite do MEI")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

func ListMonthlyRevenue(service taxing.Taxer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var year *int
		if raw := r.URL.Query().Get("year"); raw != "" {
			y, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = &y
		}

		records, err := service.ListMonthlyRevenue(r.Context(), year)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao listar faturamento mensal")
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func RecordMonthlyRevenue(service taxing.Taxer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MonthlyRevenueRequest
		if !decodeBody(w, r, &req) {
			return
		}

		record, err := service.RecordMonthlyRevenue(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao salvar faturamento mensal")
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}
