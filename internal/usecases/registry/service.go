package registry

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/repository"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
	"github.com/vfg2006/smartstore-sales-api/pkg/utils"
)

// StoreRegistry substitui a antiga lista fixa de lojas por um cadastro persistido
type StoreRegistry interface {
	Register(ctx context.Context, req domain.CreateStoreRequest) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	storeRepository repository.StoreRepository
	storeHost       string
	generateID      func() (string, error)
}

// NewService recebe a URL base da SmartStore; só lojas nesse host podem ser cadastradas
func NewService(storeRepository repository.StoreRepository, smartStoreBaseURL string) StoreRegistry {
	return &Service{
		storeRepository: storeRepository,
		storeHost:       utils.StoreHost(smartStoreBaseURL),
		generateID:      utils.GenerateStoreID,
	}
}

func (s *Service) Register(ctx context.Context, req domain.CreateStoreRequest) (*domain.Store, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewStoreError(ErrStoreNameRequired, apiErrors.ErrMissingRequiredData, "informe o nome da loja")
	}

	url, err := utils.NormalizeStoreURL(req.URL, s.storeHost)
	if err != nil {
		return nil, NewStoreError(ErrInvalidStoreURL, apiErrors.ErrInvalidStoreURL, err.Error())
	}

	existing, err := s.storeRepository.GetByURL(ctx, url)
	if err != nil {
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if existing != nil {
		return nil, NewStoreErrorWithID(ErrStoreAlreadyExists, apiErrors.ErrStoreAlreadyExists, existing.ID, url)
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewStoreError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	store, err := s.storeRepository.Add(ctx, &domain.Store{
		ID:   id,
		Name: name,
		URL:  url,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_url": url,
			"error":     err.Error(),
		}).Error("registro: erro ao salvar loja")
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"store_id":  store.ID,
		"store_url": store.URL,
	}).Info("registro: loja cadastrada")

	return store, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Store, error) {
	stores, err := s.storeRepository.List(ctx)
	if err != nil {
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return stores, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	store, err := s.storeRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if store == nil {
		return nil, NewStoreErrorWithID(ErrStoreNotFound, apiErrors.ErrStoreNotFound, id, "")
	}

	return store, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.storeRepository.Delete(ctx, id)
	if err != nil {
		return NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if !deleted {
		return NewStoreErrorWithID(ErrStoreNotFound, apiErrors.ErrStoreNotFound, id, "")
	}

	logrus.WithField("store_id", id).Info("registro: loja removida")

	return nil
}
