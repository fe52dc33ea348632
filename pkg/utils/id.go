package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// IDs de loja aparecem em /v1/stores/:id, então ficam só com minúsculas e dígitos
const (
	storeIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	storeIDLength   = 10
)

func GenerateStoreID() (string, error) {
	return gonanoid.Generate(storeIDAlphabet, storeIDLength)
}
