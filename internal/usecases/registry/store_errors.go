package registry

import (
	"errors"
	"fmt"
)

var (
	ErrStoreNameRequired  = errors.New("nome da loja é obrigatório")
	ErrInvalidStoreURL    = errors.New("URL de loja inválida")
	ErrStoreNotFound      = errors.New("loja não encontrada")
	ErrStoreAlreadyExists = errors.New("loja já cadastrada")
	ErrGenerateID         = errors.New("erro ao gerar ID da loja")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// StoreError é um erro com contexto adicional para o cadastro de lojas
type StoreError struct {
	Err     error
	Code    string
	StoreID string
	Details string
}

func (e *StoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(err error, code string, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewStoreErrorWithID(err error, code string, storeID string, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}
