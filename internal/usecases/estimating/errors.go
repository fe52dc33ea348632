package estimating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStoreURL        = errors.New("invalid store URL")
	ErrInvalidProduct         = errors.New("invalid product")
	ErrStoreNotFound          = errors.New("store not found")
	ErrProductListUnavailable = errors.New("product list unavailable")
	ErrDatabaseOperation      = errors.New("database operation error")
)

// SalesError carrega o código usado pela API para escolher o status HTTP
type SalesError struct {
	Err     error
	Code    string
	Details string
}

func (e *SalesError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SalesError) Unwrap() error {
	return e.Err
}

func NewSalesError(err error, code string, details string) *SalesError {
	return &SalesError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
