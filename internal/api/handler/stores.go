package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/registry"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
)

func ListStores(service registry.StoreRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stores, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar lojas")
			return
		}

		writeJSON(w, http.StatusOK, stores)
	}
}

func GetStore(service registry.StoreRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		store, err := service.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar loja")
			return
		}

		writeJSON(w, http.StatusOK, store)
	}
}

func CreateStore(service registry.StoreRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateStore")

		var req domain.CreateStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		store, err := service.Register(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Erro ao cadastrar loja")
			return
		}

		writeJSON(w, http.StatusCreated, store)
	}
}

func DeleteStore(service registry.StoreRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteStore")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover loja")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
