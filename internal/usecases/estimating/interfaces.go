package estimating

import (
	"context"

	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

// Prober executa uma sondagem de vendas e nunca falha: erros viram {Count: 0}
type Prober interface {
	Probe(ctx context.Context, productID string, basis int) domain.ProbeResult
}

// SalesEstimator expõe a análise de vendas para a camada HTTP
type SalesEstimator interface {
	// AnalyzeStore lista os produtos da vitrine e estima as vendas de cada um
	AnalyzeStore(ctx context.Context, storeURL, storeName string) (*domain.StoreAggregate, error)

	// AnalyzeStoreByID analisa uma loja cadastrada
	AnalyzeStoreByID(ctx context.Context, storeID string) (*domain.StoreAggregate, error)

	// AnalyzeProduct estima as vendas de um único produto
	AnalyzeProduct(ctx context.Context, product domain.ProductInput) (*domain.ProductSalesResult, error)
}
