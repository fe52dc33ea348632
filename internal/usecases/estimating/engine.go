package estimating

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

const (
	todayBasis   = 0
	initialBasis = 1
)

// Estimator infere {today, week, halfYear} de um produto com 1 a 3 sondagens.
// O endpoint só informa "N명 구매" para um basis; cada resposta define o próximo basis.
type Estimator struct {
	prober Prober
}

func NewEstimator(prober Prober) *Estimator {
	return &Estimator{
		prober: prober,
	}
}

// Estimate nunca falha. Um pânico no meio das sondagens devolve o que já foi apurado, validado.
func (e *Estimator) Estimate(ctx context.Context, productID string) (snapshot domain.SalesSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": productID,
				"panic":      fmt.Sprint(r),
				"partial":    snapshot,
			}).Error("estimativa: pânico durante a inferência, usando resultado parcial")
		}
		snapshot = Validate(snapshot)
	}()

	e.infer(ctx, productID, &snapshot)

	return snapshot
}

func (e *Estimator) infer(ctx context.Context, productID string, s *domain.SalesSnapshot) {
	s.Today = e.prober.Probe(ctx, productID, todayBasis).Count

	if s.Today == 0 {
		first := e.prober.Probe(ctx, productID, initialBasis).Count
		if first == 0 {
			return
		}

		second := e.prober.Probe(ctx, productID, first+1).Count
		if second > first {
			s.Week = first
			s.HalfYear = second
		} else {
			s.Week = 0
			s.HalfYear = first
		}
		return
	}

	week := e.prober.Probe(ctx, productID, s.Today+1).Count
	if week > s.Today {
		s.Week = week

		halfYear := e.prober.Probe(ctx, productID, week+1).Count
		if halfYear != 0 {
			s.HalfYear = halfYear
		} else {
			s.HalfYear = week
		}
		return
	}

	s.Week = s.Today
	if week != 0 {
		s.HalfYear = week
	} else {
		s.HalfYear = s.Today
	}
}

// EstimateProduct monta o resultado imutável do produto, preservando o preço de entrada
func (e *Estimator) EstimateProduct(ctx context.Context, product domain.ProductInput) domain.ProductSalesResult {
	logrus.WithFields(logrus.Fields{
		"product_id": product.ProductID,
		"name":       product.Name,
	}).Debug("estimativa: iniciando produto")

	sales := e.Estimate(ctx, product.ProductID)

	logrus.WithFields(logrus.Fields{
		"product_id": product.ProductID,
		"today":      sales.Today,
		"week":       sales.Week,
		"half_year":  sales.HalfYear,
	}).Debug("estimativa: produto concluído")

	return domain.ProductSalesResult{
		ProductID:     product.ProductID,
		Name:          product.Name,
		StockQuantity: product.StockQuantity,
		Price:         product.Price,
		Sales:         sales,
	}
}
