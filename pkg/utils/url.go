package utils

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrInvalidStoreURL = errors.New("URL de loja inválida")
	ErrForeignStoreURL = errors.New("URL de loja fora do domínio da SmartStore")
)

// NormalizeStoreURL reduz qualquer link da loja (produto, categoria, com query) para scheme://host/{loja}.
// Só aceita links cujo host é allowedHost.
func NormalizeStoreURL(raw, allowedHost string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidStoreURL
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", ErrInvalidStoreURL
	}

	if allowedHost == "" || !strings.EqualFold(parsed.Host, allowedHost) {
		return "", ErrForeignStoreURL
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "", ErrInvalidStoreURL
	}

	return parsed.Scheme + "://" + parsed.Host + "/" + segments[0], nil
}

// StoreHost devolve o host (com porta, se houver) da URL base da SmartStore
func StoreHost(baseURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return ""
	}
	return parsed.Host
}
