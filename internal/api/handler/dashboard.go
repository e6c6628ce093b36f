package handler

import (
	"net/http"

	"github.com/vfg2006/store-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

func GetDashboard(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.GetDashboard(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao calcular métricas")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}
