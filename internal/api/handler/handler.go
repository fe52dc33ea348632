package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/estimating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/registry"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros tipados dos usecases para a resposta da API.
// Erros 5xx não expõem detalhes internos ao cliente.
func writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var (
		code    string
		message string
		details any
	)

	var salesErr *estimating.SalesError
	var storeErr *registry.StoreError
	var authErr *authenticating.AuthError

	switch {
	case errors.As(err, &salesErr):
		code, message = salesErr.Code, salesErr.Error()
	case errors.As(err, &storeErr):
		code, message = storeErr.Code, storeErr.Error()
		if storeErr.StoreID != "" {
			details = map[string]any{"store_id": storeErr.StoreID}
		}
	case errors.As(err, &authErr):
		code, message = authErr.Code, authErr.Error()
	default:
		code = apiErrors.ErrInternalServer
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logrus.WithError(err).Error(fallbackMessage)
		message, details = fallbackMessage, nil
	}

	apiErrors.WriteError(w, code, message, details)
}
