package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Autenticação
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrUserAlreadyExists     = "AUTH_009"

	// Validação
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrInvalidStoreURL     = "VAL_004"
	ErrWeakPassword        = "VAL_005"

	// Lojas
	ErrStoreNotFound      = "STORE_001"
	ErrStoreAlreadyExists = "STORE_002"

	// Requisição
	ErrTooManyRequests  = "REQ_001"
	ErrRouteNotFound    = "REQ_002"
	ErrMethodNotAllowed = "REQ_003"

	// Servidor e serviços externos
	ErrInternalServer         = "SRV_001"
	ErrDatabaseOperation      = "SRV_002"
	ErrExternalService        = "SRV_003"
	ErrCommunication          = "SRV_004"
	ErrProductListUnavailable = "SRV_005"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrUserNotFound:           http.StatusNotFound,
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrExpiredToken:           http.StatusUnauthorized,
	ErrInsufficientPrivilege:  http.StatusForbidden,
	ErrUserAlreadyExists:      http.StatusConflict,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrInvalidStoreURL:        http.StatusBadRequest,
	ErrWeakPassword:           http.StatusBadRequest,
	ErrStoreNotFound:          http.StatusNotFound,
	ErrStoreAlreadyExists:     http.StatusConflict,
	ErrTooManyRequests:        http.StatusTooManyRequests,
	ErrRouteNotFound:          http.StatusNotFound,
	ErrMethodNotAllowed:       http.StatusMethodNotAllowed,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
	ErrExternalService:        http.StatusBadGateway,
	ErrCommunication:          http.StatusServiceUnavailable,
	ErrProductListUnavailable: http.StatusBadGateway,
}

// APIError é o corpo padrão de erro das respostas
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
