package estimating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   domain.SalesSnapshot
		want domain.SalesSnapshot
	}{
		{name: "já monotônico", in: domain.SalesSnapshot{Today: 1, Week: 2, HalfYear: 3}, want: domain.SalesSnapshot{Today: 1, Week: 2, HalfYear: 3}},
		{name: "semana abaixo do dia", in: domain.SalesSnapshot{Today: 5, Week: 2, HalfYear: 9}, want: domain.SalesSnapshot{Today: 5, Week: 5, HalfYear: 9}},
		{name: "semestre abaixo da semana", in: domain.SalesSnapshot{Today: 0, Week: 5, HalfYear: 3}, want: domain.SalesSnapshot{Today: 0, Week: 5, HalfYear: 5}},
		{name: "cascata", in: domain.SalesSnapshot{Today: 7}, want: domain.SalesSnapshot{Today: 7, Week: 7, HalfYear: 7}},
		{name: "zeros", in: domain.SalesSnapshot{}, want: domain.SalesSnapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.in)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Week, got.Today)
			assert.GreaterOrEqual(t, got.HalfYear, got.Week)
			assert.Equal(t, got, Validate(got))
		})
	}
}

func TestAggregate(t *testing.T) {
	results := []domain.ProductSalesResult{
		{ProductID: "a", Price: 1000, Sales: domain.SalesSnapshot{Today: 1, Week: 3, HalfYear: 10}},
		{ProductID: "b", Price: 2500, Sales: domain.SalesSnapshot{Today: 0, Week: 2, HalfYear: 4}},
		{ProductID: "c", Price: 0, Sales: domain.SalesSnapshot{Today: 2, Week: 2, HalfYear: 2}},
	}

	agg := Aggregate("https://smartstore.naver.com/honey_mk", "꿀달달", results)

	assert.Equal(t, "https://smartstore.naver.com/honey_mk", agg.StoreURL)
	assert.Equal(t, "꿀달달", agg.StoreName)
	assert.Equal(t, 3, agg.TodaySales)
	assert.Equal(t, 7, agg.WeekSales)
	assert.Equal(t, 16, agg.HalfYearSales)
	assert.True(t, decimal.NewFromInt(1000).Equal(agg.Revenue.Today))
	assert.True(t, decimal.NewFromInt(8000).Equal(agg.Revenue.Week))
	assert.True(t, decimal.NewFromInt(20000).Equal(agg.Revenue.HalfYear))
	assert.Len(t, agg.Products, 3)

	reversed := []domain.ProductSalesResult{results[2], results[1], results[0]}
	other := Aggregate("u", "n", reversed)

	assert.Equal(t, agg.TodaySales, other.TodaySales)
	assert.Equal(t, agg.WeekSales, other.WeekSales)
	assert.Equal(t, agg.HalfYearSales, other.HalfYearSales)
	assert.True(t, agg.Revenue.HalfYear.Equal(other.Revenue.HalfYear))
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate("u", "n", nil)

	assert.Equal(t, 0, agg.TodaySales)
	assert.NotNil(t, agg.Products)
	assert.Empty(t, agg.Products)
	assert.True(t, agg.Revenue.Today.IsZero())
}
