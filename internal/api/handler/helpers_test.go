package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartstore-sales-api/internal/api/handler/router"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
	"github.com/vfg2006/smartstore-sales-api/pkg/middleware"
)

var (
	adminClaims = &domain.Claims{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	userClaims  = &domain.Claims{UserID: 2, Username: "ana", Role: domain.RoleUser}
)

func serve(routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equalf(t, want, rec.Code, "body: %s", rec.Body.String())
}
