package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockStoreRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStoreRepository(ctrl)

	return &Service{
		storeRepository: repo,
		storeHost:       "smartstore.naver.com",
		generateID:      func() (string, error) { return "ab12cd34ef", nil },
	}, repo
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.CreateStoreRequest
		setup    func(repo *mocks.MockStoreRepository)
		wantErr  error
		wantCode string
	}{
		{
			name: "cadastra loja com URL normalizada",
			req:  domain.CreateStoreRequest{Name: " 꿀달달 ", URL: "https://smartstore.naver.com/honey_mk/"},
			setup: func(repo *mocks.MockStoreRepository) {
				repo.EXPECT().GetByURL(gomock.Any(), "https://smartstore.naver.com/honey_mk").Return(nil, nil)
				repo.EXPECT().
					Add(gomock.Any(), &domain.Store{ID: "ab12cd34ef", Name: "꿀달달", URL: "https://smartstore.naver.com/honey_mk"}).
					DoAndReturn(func(_ context.Context, store *domain.Store) (*domain.Store, error) {
						return store, nil
					})
			},
		},
		{
			name:     "nome ausente",
			req:      domain.CreateStoreRequest{URL: "https://smartstore.naver.com/honey_mk"},
			setup:    func(repo *mocks.MockStoreRepository) {},
			wantErr:  ErrStoreNameRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "URL inválida",
			req:      domain.CreateStoreRequest{Name: "x", URL: "honey_mk"},
			setup:    func(repo *mocks.MockStoreRepository) {},
			wantErr:  ErrInvalidStoreURL,
			wantCode: apiErrors.ErrInvalidStoreURL,
		},
		{
			name:     "host fora da SmartStore",
			req:      domain.CreateStoreRequest{Name: "x", URL: "http://attacker.example/x"},
			setup:    func(repo *mocks.MockStoreRepository) {},
			wantErr:  ErrInvalidStoreURL,
			wantCode: apiErrors.ErrInvalidStoreURL,
		},
		{
			name: "loja duplicada",
			req:  domain.CreateStoreRequest{Name: "꿀달달", URL: "https://smartstore.naver.com/honey_mk"},
			setup: func(repo *mocks.MockStoreRepository) {
				repo.EXPECT().GetByURL(gomock.Any(), "https://smartstore.naver.com/honey_mk").
					Return(&domain.Store{ID: "old"}, nil)
			},
			wantErr:  ErrStoreAlreadyExists,
			wantCode: apiErrors.ErrStoreAlreadyExists,
		},
		{
			name: "falha ao salvar",
			req:  domain.CreateStoreRequest{Name: "꿀달달", URL: "https://smartstore.naver.com/honey_mk"},
			setup: func(repo *mocks.MockStoreRepository) {
				repo.EXPECT().GetByURL(gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			store, err := service.Register(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.Nil(t, store)
				assert.ErrorIs(t, err, tt.wantErr)

				var storeErr *StoreError
				require.ErrorAs(t, err, &storeErr)
				assert.Equal(t, tt.wantCode, storeErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ab12cd34ef", store.ID)
			assert.Equal(t, "꿀달달", store.Name)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().GetByID(gomock.Any(), "a1").Return(&domain.Store{ID: "a1"}, nil)
	repo.EXPECT().GetByID(gomock.Any(), "zz").Return(nil, nil)

	store, err := service.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", store.ID)

	_, err = service.GetByID(context.Background(), "zz")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestService_List(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().List(gomock.Any()).Return([]*domain.Store{{ID: "a1"}, {ID: "b2"}}, nil)

	stores, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, stores, 2)
}

func TestService_Delete(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().Delete(gomock.Any(), "a1").Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), "zz").Return(false, nil)
	repo.EXPECT().Delete(gomock.Any(), "err").Return(false, errors.New("timeout"))

	assert.NoError(t, service.Delete(context.Background(), "a1"))
	assert.ErrorIs(t, service.Delete(context.Background(), "zz"), ErrStoreNotFound)
	assert.ErrorIs(t, service.Delete(context.Background(), "err"), ErrDatabaseOperation)
}
