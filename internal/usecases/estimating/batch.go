package estimating

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize  = 5
	defaultBatchDelay = 2 * time.Second
)

// Sleeper espera d ou até o contexto ser cancelado
type Sleeper func(ctx context.Context, d time.Duration) error

// BatchProcessor limita a pressão sobre a SmartStore: lotes concorrentes com pausa entre eles
type BatchProcessor struct {
	estimator *Estimator
	batchSize int
	delay     time.Duration
	sleep     Sleeper
}

func NewBatchProcessor(estimator *Estimator, batchSize int, delay time.Duration, sleep Sleeper) *BatchProcessor {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if delay < 0 {
		delay = defaultBatchDelay
	}
	if sleep == nil {
		sleep = contextSleep
	}

	return &BatchProcessor{
		estimator: estimator,
		batchSize: batchSize,
		delay:     delay,
		sleep:     sleep,
	}
}

// ProcessStore devolve os resultados na mesma ordem da entrada.
// Se o contexto for cancelado, os produtos ainda não processados ficam de fora.
func (b *BatchProcessor) ProcessStore(ctx context.Context, products []domain.ProductInput) []domain.ProductSalesResult {
	results := make([]domain.ProductSalesResult, len(products))
	processed := 0

	for start := 0; start < len(products); start += b.batchSize {
		if start > 0 {
			if err := b.sleep(ctx, b.delay); err != nil {
				logrus.WithField("processed", processed).Warn("estimativa: análise interrompida entre lotes")
				break
			}
		}

		if ctx.Err() != nil {
			break
		}

		end := min(start+b.batchSize, len(products))

		logrus.WithFields(logrus.Fields{
			"from":  start,
			"to":    end,
			"total": len(products),
		}).Info("estimativa: processando lote")

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				results[i] = b.estimator.EstimateProduct(ctx, products[i])
				return nil
			})
		}
		_ = g.Wait()

		processed = end
	}

	return results[:processed]
}

func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
