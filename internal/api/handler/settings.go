package handler

import (
	"net/http"

	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/configuring"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

func GetStoreSettings(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := service.GetStoreConfig(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao obter configuração da loja")
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func UpdateStoreSettings(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateStoreConfigRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cfg, err := service.UpdateStoreConfig(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao salvar configuração da loja")
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func GetTaxSettings(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := service.GetTaxConfig(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao obter configuração do MEI")
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func UpdateTaxSettings(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateTaxConfigRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cfg, err := service.UpdateTaxConfig(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao salvar configuração do MEI")
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}
