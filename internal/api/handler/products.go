package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

func ListProducts(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func CreateProduct(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveProductRequest
		if !decodeBody(w, r, &req) {
			return
		}

		product, err := service.CreateProduct(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao criar produto")
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}

func UpdateProduct(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveProductRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.UpdateProduct(r.Context(), req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao atualizar produto")
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

func AddProductCost(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AddProductCostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		product, err := service.AddCostItem(r.Context(), productID, req)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao adicionar insumo")
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}

func RemoveProductCost(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		product, err := service.RemoveCostItem(r.Context(), params.ByName("id"), params.ByName("cost_id"))
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao remover insumo")
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}
