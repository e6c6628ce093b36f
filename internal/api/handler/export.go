package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/store-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

// ExportData devolve o relatório completo como anexo JSON
func ExportData(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.Export(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao exportar dados")
			return
		}

		filename := fmt.Sprintf("relatorio-%s.json", snapshot.ExportedAt.Format(time.DateOnly))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		writeJSON(w, http.StatusOK, snapshot)
	}
}
