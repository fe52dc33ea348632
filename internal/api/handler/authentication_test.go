package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
		wantToken  string
	}{
		{
			name:       "corpo inválido",
			body:       "{",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "senha incorreta",
			body: `{"username":"ana","password":"errada123"}`,
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "ana", "errada123").
					Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 2, "senha incorreta"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "falha no banco não vaza detalhes",
			body: `{"username":"ana","password":"segredo123"}`,
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "ana", "segredo123").
					Return("", authenticating.NewAuthError(authenticating.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
		{
			name: "sucesso",
			body: `{"username":"ana","password":"segredo123"}`,
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "ana", "segredo123").Return("jwt-token", nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "jwt-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(service)

			rec := serve(Authentication(service), nil, http.MethodPost, "/v1/login", tt.body)

			assertStatus(t, rec, tt.wantStatus)

			if tt.wantCode != "" {
				body := decodeAPIError(t, rec)
				assert.Equal(t, tt.wantCode, body.Code)
				assert.NotContains(t, body.Message, "pq:")
				return
			}

			var response map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.wantToken, response["token"])
		})
	}
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAuthenticator(ctrl)

	t.Run("usuário criado", func(t *testing.T) {
		service.EXPECT().Register(gomock.Any(), "novo", "segredo123").
			Return(&domain.User{ID: 7, Username: "novo", Role: domain.RoleUser}, nil)

		rec := serve(Authentication(service), nil, http.MethodPost, "/v1/register", `{"username":"novo","password":"segredo123"}`)

		assertStatus(t, rec, http.StatusCreated)

		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("usuário duplicado", func(t *testing.T) {
		service.EXPECT().Register(gomock.Any(), "novo", "segredo123").
			Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "usuário já cadastrado"))

		rec := serve(Authentication(service), nil, http.MethodPost, "/v1/register", `{"username":"novo","password":"segredo123"}`)

		assertStatus(t, rec, http.StatusConflict)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, decodeAPIError(t, rec).Code)
	})
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAuthenticator(ctrl)

	t.Run("sem autenticação", func(t *testing.T) {
		rec := serve(Authentication(service), nil, http.MethodGet, "/v1/me", "")

		assertStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("perfil do usuário logado", func(t *testing.T) {
		service.EXPECT().GetUserProfile(gomock.Any(), userClaims.UserID).
			Return(&domain.User{ID: userClaims.UserID, Username: "ana", Role: domain.RoleUser}, nil)

		rec := serve(Authentication(service), userClaims, http.MethodGet, "/v1/me", "")

		assertStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), `"username":"ana"`)
	})
}
