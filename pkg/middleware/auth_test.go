package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if ok {
			w.Header().Set("X-User", claims.Username)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setupMock  func(m *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
		wantUser   string
	}{
		{
			name:       "rota pública dispensa token",
			path:       "/healthcheck",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem header Authorization",
			path:       "/v1/stores",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "header sem Bearer",
			path:       "/v1/stores",
			header:     "Token abc",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "token expirado",
			path:   "/v1/stores",
			header: "Bearer velho",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("velho").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "token válido",
			path:   "/v1/stores",
			header: "Bearer bom",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("bom").
					Return(&domain.Claims{UserID: 1, Username: "ana", Role: domain.RoleUser}, nil)
			},
			wantStatus: http.StatusNoContent,
			wantUser:   "ana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authenticator := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(authenticator)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authenticator)(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))

			if tt.wantCode != "" {
				var body apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}
