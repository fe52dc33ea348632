package estimating

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/repository"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
	"github.com/vfg2006/smartstore-sales-api/pkg/utils"
)

var _ SalesEstimator = (*Service)(nil)

type Service struct {
	cfg             *config.Config
	estimator       *Estimator
	processor       *BatchProcessor
	lister          smartstore.ProductLister
	storeRepository repository.StoreRepository
	now             func() time.Time
}

func NewService(
	cfg *config.Config,
	prober Prober,
	lister smartstore.ProductLister,
	storeRepository repository.StoreRepository,
) *Service {
	estimator := NewEstimator(prober)

	return &Service{
		cfg:             cfg,
		estimator:       estimator,
		processor:       NewBatchProcessor(estimator, cfg.Estimation.BatchSize, cfg.Estimation.BatchDelay, nil),
		lister:          lister,
		storeRepository: storeRepository,
		now:             time.Now,
	}
}

// WithSleeper troca a pausa entre lotes, usado nos testes para não esperar de verdade
func (s *Service) WithSleeper(sleep Sleeper) *Service {
	s.processor.sleep = sleep
	return s
}

func (s *Service) AnalyzeStore(ctx context.Context, storeURL, storeName string) (*domain.StoreAggregate, error) {
	normalized, err := utils.NormalizeStoreURL(storeURL, utils.StoreHost(s.cfg.SmartStore.BaseURL))
	if err != nil {
		return nil, NewSalesError(ErrInvalidStoreURL, apiErrors.ErrInvalidStoreURL, err.Error())
	}

	storeName = strings.TrimSpace(storeName)
	if storeName == "" {
		storeName = domain.UnknownStoreName
	}

	logger := logrus.WithFields(logrus.Fields{
		"store_url":  normalized,
		"store_name": storeName,
	})

	products, err := s.lister.ListProducts(ctx, normalized)
	if err != nil {
		logger.WithError(err).Error("estimativa: não foi possível obter a lista de produtos")
		return nil, NewSalesError(ErrProductListUnavailable, apiErrors.ErrProductListUnavailable, err.Error())
	}

	started := s.now()
	logger.WithField("products", len(products)).Info("estimativa: análise da loja iniciada")

	results := s.processor.ProcessStore(ctx, products)

	aggregate := Aggregate(normalized, storeName, results)
	aggregate.AnalyzedAt = s.now()

	logger.WithFields(logrus.Fields{
		"products":        len(results),
		"today_sales":     aggregate.TodaySales,
		"week_sales":      aggregate.WeekSales,
		"half_year_sales": aggregate.HalfYearSales,
		"elapsed":         aggregate.AnalyzedAt.Sub(started).String(),
	}).Info("estimativa: análise da loja concluída")

	return &aggregate, nil
}

func (s *Service) AnalyzeStoreByID(ctx context.Context, storeID string) (*domain.StoreAggregate, error) {
	store, err := s.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": storeID,
			"error":    err.Error(),
		}).Error("estimativa: erro ao buscar loja")
		return nil, NewSalesError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if store == nil {
		return nil, NewSalesError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, storeID)
	}

	return s.AnalyzeStore(ctx, store.URL, store.Name)
}

func (s *Service) AnalyzeProduct(ctx context.Context, product domain.ProductInput) (*domain.ProductSalesResult, error) {
	product.ProductID = strings.TrimSpace(product.ProductID)
	if product.ProductID == "" {
		return nil, NewSalesError(ErrInvalidProduct, apiErrors.ErrInvalidRequest, "productId é obrigatório")
	}

	if product.StockQuantity < 0 || product.Price < 0 {
		return nil, NewSalesError(ErrInvalidProduct, apiErrors.ErrInvalidRequest, "estoque e preço não podem ser negativos")
	}

	result := s.estimator.EstimateProduct(ctx, product)

	return &result, nil
}
