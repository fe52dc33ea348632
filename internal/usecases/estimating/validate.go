package estimating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

// Validate garante HalfYear >= Week >= Today
func Validate(s domain.SalesSnapshot) domain.SalesSnapshot {
	if s.Week < s.Today {
		s.Week = s.Today
	}
	if s.HalfYear < s.Week {
		s.HalfYear = s.Week
	}
	return s
}

// Aggregate soma as janelas de todos os produtos; a ordem não altera o resultado
func Aggregate(storeURL, storeName string, results []domain.ProductSalesResult) domain.StoreAggregate {
	agg := domain.StoreAggregate{
		StoreURL:  storeURL,
		StoreName: storeName,
		Products:  results,
		Revenue: domain.RevenueEstimate{
			Today:    decimal.Zero,
			Week:     decimal.Zero,
			HalfYear: decimal.Zero,
		},
	}

	if agg.Products == nil {
		agg.Products = []domain.ProductSalesResult{}
	}

	for _, r := range results {
		agg.TodaySales += r.Sales.Today
		agg.WeekSales += r.Sales.Week
		agg.HalfYearSales += r.Sales.HalfYear

		price := decimal.NewFromInt(int64(r.Price))
		agg.Revenue.Today = agg.Revenue.Today.Add(price.Mul(decimal.NewFromInt(int64(r.Sales.Today))))
		agg.Revenue.Week = agg.Revenue.Week.Add(price.Mul(decimal.NewFromInt(int64(r.Sales.Week))))
		agg.Revenue.HalfYear = agg.Revenue.HalfYear.Add(price.Mul(decimal.NewFromInt(int64(r.Sales.HalfYear))))
	}

	return agg
}
