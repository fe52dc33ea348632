package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/estimating"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
)

type AnalyzeStoreRequest struct {
	StoreURL  string `json:"storeUrl"`
	StoreName string `json:"storeName"`
}

// AnalyzeRegisteredStore estima as vendas de uma loja cadastrada
func AnalyzeRegisteredStore(service estimating.SalesEstimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		logrus.WithField("store_id", id).Info("INIT - AnalyzeRegisteredStore")

		aggregate, err := service.AnalyzeStoreByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao analisar loja")
			return
		}

		writeJSON(w, http.StatusOK, aggregate)
	}
}

// AnalyzeStore estima as vendas de qualquer URL de loja
func AnalyzeStore(service estimating.SalesEstimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.StoreURL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "storeUrl é obrigatório", nil)
			return
		}

		logrus.WithField("store_url", req.StoreURL).Info("INIT - AnalyzeStore")

		aggregate, err := service.AnalyzeStore(r.Context(), req.StoreURL, req.StoreName)
		if err != nil {
			writeServiceError(w, err, "Erro ao analisar loja")
			return
		}

		writeJSON(w, http.StatusOK, aggregate)
	}
}

// AnalyzeProduct estima as vendas de um único produto a partir da query string
func AnalyzeProduct(service estimating.SalesEstimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		product := domain.ProductInput{
			ProductID: query.Get("productId"),
			Name:      query.Get("productName"),
		}

		if product.ProductID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "productId é obrigatório", nil)
			return
		}

		var err error
		if product.StockQuantity, err = optionalInt(query.Get("stockQuantity")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "stockQuantity deve ser um número inteiro", nil)
			return
		}

		if product.Price, err = optionalInt(query.Get("price")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "price deve ser um número inteiro", nil)
			return
		}

		result, err := service.AnalyzeProduct(r.Context(), product)
		if err != nil {
			writeServiceError(w, err, "Erro ao analisar produto")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
