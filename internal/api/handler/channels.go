package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/channeling"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

func ListChannels(service channeling.Channeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channels, err := service.ListChannels(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao listar canais")
			return
		}

		writeJSON(w, http.StatusOK, channels)
	}
}

func CreateChannel(service channeling.Channeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveChannelRequest
		if !decodeBody(w, r, &req) {
			return
		}

		channel, err := service.CreateChannel(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao criar canal")
			return
		}

		writeJSON(w, http.StatusCreated, channel)
	}
}

func UpdateChannel(service channeling.Channeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveChannelRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		channel, err := service.UpdateChannel(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao atualizar canal")
			return
		}

		writeJSON(w, http.StatusOK, channel)
	}
}

func DeleteChannel(service channeling.Channeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteChannel(r.Context(), id); err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao remover canal")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
